// Package sim provides the core discrete-event simulation engine for an
// M/M/1 queue with strategic customer behavior (balking).
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (pending → waiting → in service → completed, or balked)
//   - event.go: Event types that drive the simulation (Arrival, Completion)
//   - simulator.go: The event heap and the time-advance loop
//
// # Architecture
//
// The simulation is a next-event loop over a priority queue of timestamped
// events. At equal timestamps, service completions are applied before
// arrivals, so a completing customer frees the server before an arriving
// customer's join decision is evaluated.
//
// Supporting pieces:
//   - rng.go: seeded, per-subsystem random streams and exponential sampling
//   - policy.go: join/balk decision logic (basic, selfish, optimal)
//   - naor.go: Naor's socially-optimal balking threshold
//   - timeseries.go: per-event occupancy samples
//   - stats.go: post-run aggregation into a Summary
//   - replication.go: independent Monte Carlo replications
//
// Everything is single-threaded within one run. Replications in RunBatch run
// concurrently but share no state: each owns its RNG, queue, server, and
// clock.
package sim
