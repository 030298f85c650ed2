package qlearning

import (
	"math"
	"math/rand"

	"github.com/kaienlin/tcgsim/env"
)

// Agent drives an env.Adapter with tabular ε-greedy Q-learning, per
// spec.md §4.4: Q[s,a] <- (1-α)Q[s,a] + α(cost + γ·min_a' Q[s',a']),
// minimizing cost instead of maximizing reward.
type Agent struct {
	Table Table

	Alpha   float64 // learning rate, spec.md default 0.1
	Gamma   float64 // discount factor, spec.md default 0.9 or 1.0
	Epsilon float64 // exploration rate, spec.md default in [0.2, 0.5]

	rng *rand.Rand
}

// NewAgent constructs an Agent over table, with the given hyperparameters
// and source of randomness (an explicit *rand.Rand rather than the
// package-level generator, so training runs are reproducible given the
// same seed — spec.md §5's determinism guarantee extends to the agent
// loop, not just the simulator core).
func NewAgent(table Table, alpha, gamma, epsilon float64, rng *rand.Rand) *Agent {
	return &Agent{
		Table:   table,
		Alpha:   alpha,
		Gamma:   gamma,
		Epsilon: epsilon,
		rng:     rng,
	}
}

// effectiveActions returns every action id that is not a silent no-op in
// state s, per env.Adapter.IsEffectiveActionOfState. The no-op action (0)
// is always included as a fallback so a state with no ready vehicle still
// has something to select.
func effectiveActions(adapter *env.Adapter, s int64) []int {
	out := make([]int, 0, adapter.ActionSpaceSize())
	for a := 0; a < adapter.ActionSpaceSize(); a++ {
		if adapter.IsEffectiveActionOfState(a, s) {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		out = append(out, 0)
	}
	return out
}

// SelectAction picks, among effective, uniformly at random with
// probability Epsilon, else the argmin-Q action (ties broken by the
// order effective was built in, i.e. ascending action id).
func (ag *Agent) SelectAction(effective []int, state int64) int {
	if ag.rng.Float64() < ag.Epsilon {
		return effective[ag.rng.Intn(len(effective))]
	}
	return ag.argmin(state, effective)
}

func (ag *Agent) argmin(state int64, actions []int) int {
	best := actions[0]
	bestVal := ag.Table.Get(state, best)
	for _, a := range actions[1:] {
		if v := ag.Table.Get(state, a); v < bestVal {
			bestVal = v
			best = a
		}
	}
	return best
}

// Update applies one TD(0) step. cur and minNext are read as 0 instead of
// +Inf when the corresponding cell was never visited, so a cold-start
// action's first update is grounded at a neutral baseline rather than
// propagating an unbounded value into the table.
func (ag *Agent) Update(state int64, action int, cost float64, nextState int64, nextEffective []int) {
	minNext := math.Inf(1)
	for _, a := range nextEffective {
		if v := ag.Table.Get(nextState, a); v < minNext {
			minNext = v
		}
	}
	if math.IsInf(minNext, 1) {
		minNext = 0
	}

	cur := ag.Table.Get(state, action)
	if math.IsInf(cur, 1) {
		cur = 0
	}

	updated := (1-ag.Alpha)*cur + ag.Alpha*(cost+ag.Gamma*minNext)
	ag.Table.Set(state, action, updated)
}

// EpisodeResult summarizes one RunEpisode call.
type EpisodeResult struct {
	TotalCost float64
	Steps     int
	Status    string // final simulator.Status.String(), from the last StepResult's Info
}

// RunEpisode resets adapter, then repeatedly selects and applies actions
// until the environment reports Done or maxSteps decisions have elapsed
// (a safety bound against a miscomposed environment that never
// terminates; a correctly built TCG+Simulator always reaches TERMINATED
// or DEADLOCK in bounded time per spec.md §5).
func (ag *Agent) RunEpisode(adapter *env.Adapter, maxSteps int) (EpisodeResult, error) {
	state, err := adapter.Reset()
	if err != nil {
		return EpisodeResult{}, err
	}

	var result EpisodeResult
	for step := 0; step < maxSteps; step++ {
		effective := effectiveActions(adapter, state)
		action := ag.SelectAction(effective, state)

		res, err := adapter.Step(action)
		if err != nil {
			return result, err
		}

		nextEffective := effectiveActions(adapter, res.NextState)
		ag.Update(state, action, float64(res.Cost), res.NextState, nextEffective)

		result.TotalCost += float64(res.Cost)
		result.Steps++
		state = res.NextState

		if res.Done {
			result.Status, _ = res.Info["status"].(string)
			break
		}
	}

	return result, nil
}
