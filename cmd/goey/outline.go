package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/goey/pkg/geometry"
	"github.com/vango-dev/goey/pkg/preview"
	"github.com/vango-dev/goey/pkg/render"
)

func outlineCmd(g *globals) *cobra.Command {
	var (
		pill, body, height, t float64
		anchor                string
		pathOnly              bool
		stroke                string
	)

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the toast outline at a morph progress",
		Long: `Print the outline for a pill width, body size and morph progress t
(0 = pill, 1 = blob) as a standalone SVG document.

Examples:
  goey outline
  goey outline --t 0.5 --anchor right
  goey outline --path`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			tc, err := cfg.ToasterConfig()
			if err != nil {
				return err
			}
			a := tc.Position.Anchor()
			if anchor != "" {
				if a, err = geometry.ParseAnchor(anchor); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if pathOnly {
				fmt.Fprintln(w, geometry.Morph(pill, body, height, t, a).String())
				return nil
			}
			node := preview.OutlineSVG(pill, body, height, t, a, tc.Fill(), stroke)
			r := render.NewRenderer(render.RendererConfig{Pretty: true})
			if err := r.RenderToWriter(w, node); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return nil
		},
	}

	cmd.Flags().Float64Var(&pill, "pill", 120, "Pill width")
	cmd.Flags().Float64Var(&body, "body", 300, "Body width")
	cmd.Flags().Float64Var(&height, "height", 96, "Body height")
	cmd.Flags().Float64Var(&t, "t", 1, "Morph progress")
	cmd.Flags().StringVar(&anchor, "anchor", "", "left, center or right (default from position)")
	cmd.Flags().StringVar(&stroke, "stroke", "", "Border color")
	cmd.Flags().BoolVar(&pathOnly, "path", false, "Print only the path data")

	return cmd
}
