// Package planner holds the pure decision logic of the pipeline: the bitrate
// budget calculation, the compress-vs-clips decision, and highlight segment
// placement. Nothing in this package performs I/O; every function is a
// deterministic mapping from probe data and configuration to a plan value.
package planner
