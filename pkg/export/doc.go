// Package export renders a toast timeline to SVG frames and writes them,
// plus a manifest, to a Store: a local directory or an S3 bucket.
//
//	frames, _ := timeline.Run(timeline.DefaultScript(), timeline.Config{})
//	store, _ := export.NewDiskStore("out")
//	m, err := export.New(store).Export(ctx, script, frames)
//
// Frames are written concurrently; the first failure cancels the rest.
package export
