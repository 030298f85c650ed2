// Package livefeed broadcasts simulator.Observation snapshots to
// connected websocket clients, the way niceyeti-tabular's server package
// pushes training-view updates: one upgrade endpoint, one outbound JSON
// message per published snapshot. It is strictly observational — nothing
// here drives simulated time; Broadcaster.Publish is called by the CLI's
// own training loop once per finished episode, never by livefeed itself (spec.md §5's "no asynchrony drives simulation time").
package livefeed
