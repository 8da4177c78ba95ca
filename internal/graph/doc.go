// Package graph implements the sliding-window time series behind a live
// multi-series line graph.
//
// # Model
//
//	Series  - insertion-ordered (time, value) buffer for one entity
//	Axis    - fixed-width x window, watermark y range, elapsed time
//	Entity  - name + color + series, fed by a SampleSource
//	Set     - owns the Axis and entities, runs the per-tick update
//
// # Tick
//
// Each tick the scheduler calls Set.Step (or Update with an explicit time).
// Every entity is sampled first; only when all samples are in are they
// appended and the y range widened. If the new time is past the end of the x
// window, the oldest point of every series is evicted and the window slides
// by the spacing between the first entity's evicted point and its new head.
//
// Rendering reads through the Renderable interface, which hands out copies.
// The package has no notion of terminals, sensors, or clocks.
package graph
