// Package graph is the plotting engine: it classifies expression text into a
// plot form, samples each form under the current viewport transform, and emits
// screen-space primitives through a Canvas.
//
// Per frame: each registry entry is classified, compiled (graph/eval),
// sampled or scanned, and drawn as Canvas primitives.
//
// The engine is single-threaded and frame-driven. All state it mutates (the
// expression registry, the viewport) is owned by the caller and passed in by
// reference; nothing here is process-global. A compile failure in one
// expression suppresses its drawing for the frame and nothing else.
package graph
