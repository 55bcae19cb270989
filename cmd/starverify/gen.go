package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/starverify/graphbuild"
	"github.com/katalvlaran/starverify/instance"
)

func newGenCmd() *cobra.Command {
	var shape string
	var n, k, p int

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a named fixture instance (for testing the verifier itself)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opt graphbuild.Option
			switch shape {
			case "clique":
				opt = graphbuild.WithClique()
			case "path":
				opt = graphbuild.WithPath()
			case "cycle":
				opt = graphbuild.WithCycle()
			default:
				return fmt.Errorf("unknown shape %q (want clique, path, or cycle)", shape)
			}

			b, err := graphbuild.New(n, opt)
			if err != nil {
				return err
			}
			adj, err := b.Finish()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "n=%d\n", n)
			fmt.Fprintf(out, "num_colors=%d\n", k)
			fmt.Fprintf(out, "num_precolored_verts=%d\n", p)
			fmt.Fprintf(out, "G=%s\n", instance.EncodeGraph(n, adj))
			return nil
		},
	}

	cmd.Flags().StringVar(&shape, "shape", "clique", "graph shape: clique, path, or cycle")
	cmd.Flags().IntVar(&n, "n", 3, "number of vertices")
	cmd.Flags().IntVar(&k, "k", 3, "palette size")
	cmd.Flags().IntVar(&p, "p", 3, "number of precolored vertices")
	return cmd
}
