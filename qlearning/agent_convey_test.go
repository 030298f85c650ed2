package qlearning_test

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/kaienlin/tcgsim/qlearning"
)

func TestAgentConvey(t *testing.T) {
	Convey("Given a fresh MapTable-backed agent", t, func() {
		adapter := headOnAdapter(t)
		table := qlearning.NewMapTable(adapter.ActionSpaceSize())
		agent := qlearning.NewAgent(table, 0.1, 0.9, 0.4, rand.New(rand.NewSource(99)))

		Convey("When a single episode is run", func() {
			result, err := agent.RunEpisode(adapter, 10_000)

			Convey("It should complete without error", func() {
				So(err, ShouldBeNil)
			})

			Convey("It should take at least one step", func() {
				So(result.Steps, ShouldBeGreaterThan, 0)
			})

			Convey("It should terminate cleanly, never deadlocking on a simple head-on conflict", func() {
				So(result.Status, ShouldEqual, "TERMINATED")
			})
		})

		Convey("When many episodes are run back to back", func() {
			var lastCost float64
			for i := 0; i < 20; i++ {
				result, err := agent.RunEpisode(adapter, 10_000)
				So(err, ShouldBeNil)
				lastCost = result.TotalCost
			}

			Convey("The final episode's cost should be a finite, non-negative number", func() {
				So(lastCost, ShouldBeGreaterThanOrEqualTo, 0)
			})
		})
	})
}
