package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/goey/pkg/morph"
	"github.com/vango-dev/goey/pkg/shell"
	"github.com/vango-dev/goey/pkg/timeline"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		title, description string
		phase, action      string
		at                 time.Duration
		reduced            bool
		check              bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a toast's markup at a point in its lifecycle",
		Long: `Show a toast on a simulated clock and print its markup as it
stands after --at.

With --check, print the class names the markup can use instead, one per
line, for stylesheet coverage checks.

Examples:
  goey render --title "Saved" --at 1s
  goey render --phase error --title "Upload failed" --description "Disk full"
  goey render --check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if check {
				for _, c := range shell.RequiredClasses() {
					fmt.Fprintln(w, c)
				}
				return nil
			}

			cfg, err := g.load()
			if err != nil {
				return err
			}
			tc, err := cfg.ToasterConfig()
			if err != nil {
				return err
			}
			script := timeline.Script{
				Phase:       phase,
				Title:       title,
				Description: description,
				ActionLabel: action,
				Limit:       timeline.Duration(at),
				Reduced:     reduced,
			}
			frames, err := timeline.Run(script, timeline.Config{
				Toaster: tc,
				HTML:    true,
				Logger:  g.logger(cmd.ErrOrStderr()),
			})
			if err != nil {
				return err
			}
			last := frames[len(frames)-1]
			fmt.Fprintln(w, last.HTML)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "Changes saved", "Toast title")
	cmd.Flags().StringVar(&description, "description", "", "Toast description (makes the toast expandable)")
	cmd.Flags().StringVar(&phase, "phase", string(morph.PhaseSuccess), "default, success, error, warning, info or loading")
	cmd.Flags().StringVar(&action, "action", "", "Action button label")
	cmd.Flags().DurationVar(&at, "at", 1500*time.Millisecond, "Simulated time to render at")
	cmd.Flags().BoolVar(&reduced, "reduced-motion", false, "Render with reduced motion")
	cmd.Flags().BoolVar(&check, "check", false, "Print the class names the markup can use")

	return cmd
}
