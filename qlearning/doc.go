// Package qlearning implements tabular ε-greedy Q-learning over an
// env.Adapter, per spec.md §4.4: standard off-policy TD(0) control with
// the update rule
//
//	Q[s,a] <- (1-α)Q[s,a] + α(cost + γ·min_a' Q[s',a'])
//
// minimizing cost rather than maximizing reward, since env.Adapter reports
// delay as a non-negative cost signal. The table is pluggable (Table):
// DenseTable backs it with a gonum mat.Dense when the observation space is
// known and small enough to enumerate up front; MapTable grows on demand
// for open-ended or very large state spaces, per Design Note "Growable
// Q-table".
package qlearning
