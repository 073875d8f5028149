// Package headless is an in-memory stand-in for the browser pieces a
// toast touches: styled elements with a natural size, resize
// notification, and a host list whose style writes are observable.
//
// Sizes come from simple text metrics (a fixed advance per character
// and a fixed line height), which is enough for the morph to have real
// dimensions to animate between in the CLI, the preview server, frame
// export and tests.
package headless
