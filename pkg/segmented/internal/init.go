// Package internal contains the core of the segmented control: geometry,
// the label layout engine, the highlight animator, the gesture tracker,
// appearance handling, theming and logging.
// Types and functions in this package are not part of the public API.
package internal
