package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/goey/pkg/export"
	"github.com/vango-dev/goey/pkg/timeline"
)

func exportCmd(g *globals) *cobra.Command {
	var (
		scriptPath  string
		dir         string
		bucket      string
		prefix      string
		region      string
		fps         int
		concurrency int
		stroke      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a script's frames to SVG files",
		Long: `Run a toast script and write one SVG per sampled frame plus a
manifest.json, to a directory or to S3.

S3 credentials come from the usual AWS environment and shared config.

Examples:
  goey export --dir frames
  goey export --script upload.json --fps 30
  goey export --bucket my-bucket --prefix toasts/ --region eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			switch {
			case bucket != "":
				cfg.Export.Store = "s3"
				cfg.Export.Bucket = bucket
			case dir != "":
				abs, err := filepath.Abs(dir)
				if err != nil {
					return err
				}
				cfg.Export.Store = "disk"
				cfg.Export.Dir = abs
			}
			if prefix != "" {
				cfg.Export.Prefix = prefix
			}
			if region != "" {
				cfg.Export.Region = region
			}
			if fps > 0 {
				cfg.Export.FPS = fps
			}
			if concurrency > 0 {
				cfg.Export.Concurrency = concurrency
			}
			if err := cfg.Validate(); err != nil {
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
			logger := g.logger(cmd.ErrOrStderr())
			frames, err := timeline.Run(script, timeline.Config{Toaster: tc, Logger: logger})
			if err != nil {
				return err
			}
			frames = timeline.Sample(frames, cfg.FrameInterval())

			sc, err := cfg.StoreConfig()
			if err != nil {
				return err
			}
			store, err := export.OpenStore(cmd.Context(), sc)
			if err != nil {
				return err
			}

			ex := export.New(store)
			ex.Concurrency = cfg.Export.Concurrency
			ex.Fill = tc.Fill()
			ex.Border = stroke
			ex.Logger = logger
			m, err := ex.Export(cmd.Context(), script, frames)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			success(w, "Exported %d frames", len(m.Frames))
			if sc.Kind == "s3" {
				info(w, "s3://%s/%s", sc.Bucket, sc.Prefix)
			} else {
				info(w, "%s", sc.Dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "f", "", "Script file (JSON, default: built-in demo)")
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default from goey.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Write to this S3 bucket instead of disk")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")
	cmd.Flags().IntVar(&fps, "fps", 0, "Frames per second to keep (default from goey.json)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Parallel writes (default from goey.json)")
	cmd.Flags().StringVar(&stroke, "stroke", "", "Border color")

	return cmd
}
