package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/timeline"
)

func simulateCmd(g *globals) *cobra.Command {
	var (
		scriptPath string
		asJSON     bool
		reduced    bool
		every      int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a toast script and print its frames",
		Long: `Run a toast script on a simulated clock and print one row per
animation frame: state, phase, morph progress, sizes and transforms.

A script is JSON:

  {
    "phase": "loading",
    "title": "Uploading...",
    "steps": [
      {"at": "1s", "action": "update", "phase": "success", "title": "Uploaded"},
      {"at": "2s", "action": "hover"}
    ]
  }

Without --script the built-in demo is run.

Examples:
  goey simulate
  goey simulate --script upload.json --json
  goey simulate --every 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			tc, err := cfg.ToasterConfig()
			if err != nil {
				return err
			}
			script, err := readScript(scriptPath)
			if err != nil {
				return err
			}
			if reduced {
				script.Reduced = true
			}

			frames, err := timeline.Run(script, timeline.Config{
				Toaster: tc,
				Logger:  g.logger(cmd.ErrOrStderr()),
			})
			if err != nil {
				return err
			}
			if every > 1 {
				frames = everyNth(frames, every)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(frames)
			}
			return printFrames(w, frames)
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "f", "", "Script file (JSON)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print frames as JSON")
	cmd.Flags().BoolVar(&reduced, "reduced-motion", false, "Run with reduced motion")
	cmd.Flags().IntVar(&every, "every", 1, "Print every Nth frame (the last frame is always printed)")

	return cmd
}

// readScript loads a script file, or the demo script when path is empty.
func readScript(path string) (timeline.Script, error) {
	if path == "" {
		return timeline.DefaultScript(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return timeline.Script{}, errors.New("G010").WithDetail("script " + path).Wrap(err)
	}
	var s timeline.Script
	if err := json.Unmarshal(data, &s); err != nil {
		return timeline.Script{}, errors.FromJSON("G010", path, data, err).
			WithSuggestion("Check that the script is valid JSON")
	}
	return s, s.Validate()
}

func everyNth(frames []timeline.Frame, n int) []timeline.Frame {
	var out []timeline.Frame
	for i, f := range frames {
		if i%n == 0 || i == len(frames)-1 {
			out = append(out, f)
		}
	}
	return out
}

func printFrames(w io.Writer, frames []timeline.Frame) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAME\tMS\tSTATE\tPHASE\tT\tPILL\tBODY\tHEIGHT\tWRAPPER")
	for _, f := range frames {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%.3f\t%.1f\t%.1f\t%.1f\t%s\n",
			f.Index, f.At, f.State, f.Phase, f.Progress, f.Pill, f.Body, f.Height, f.WrapperTransform)
	}
	return tw.Flush()
}
