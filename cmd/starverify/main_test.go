package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/starverify/instance"
)

func TestParseNonNegInt(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"-1", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range cases {
		got, err := parseNonNegInt(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseNonNegInt(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseNonNegInt(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("parseNonNegInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestGenCommandProducesLoadableInstance(t *testing.T) {
	cmd := newGenCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--shape=clique", "--n=3", "--k=3", "--p=3"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "n=3") {
		t.Errorf("expected generated fixture to contain n=3, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "G=") {
		t.Errorf("expected generated fixture to contain a G= line, got:\n%s", out.String())
	}
	if _, err := instance.Load(strings.NewReader(out.String())); err != nil {
		t.Errorf("generated fixture does not load: %v\n%s", err, out.String())
	}
}

func TestRootRejectsWrongArgCount(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"only-one-arg"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for wrong argument count")
	}
}
