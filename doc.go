/*
Package sigflow provides typed, unit-tagged building blocks for real-time
control algorithms.

A control algorithm is expressed as blocks reading values from input
ports, computing, and writing values to output ports, wired into a signal
flow graph that an external scheduler executes once per control cycle.
Every port carries a physical unit (the seven SI base unit exponents plus
a radian flag), and both the unit and the value type of connected ports
are verified before any data flows, so that a power signal can never be
wired into a voltage input.

The package owns per-block port storage and typing only. Scheduling, graph
persistence and hardware drivers are external collaborators.

*/
package sigflow
