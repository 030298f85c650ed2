// Command tcgsim trains a tabular Q-learning agent against the
// intersection-scheduling environment: load an intersection and a traffic
// description, run episodes, and optionally serve a live observation feed.
// This is the ambient CLI surface spec.md §6 leaves "informational"; none
// of its flag parsing, logging, or checkpoint orchestration is part of the
// core scheduling algorithm.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kaienlin/tcgsim/config"
	"github.com/kaienlin/tcgsim/env"
	"github.com/kaienlin/tcgsim/livefeed"
	"github.com/kaienlin/tcgsim/qlearning"
	"github.com/kaienlin/tcgsim/simulator"
	"github.com/kaienlin/tcgsim/traffic"
)

type runFlags struct {
	intersectionPath string
	trafficGenerator string
	trafficPath      string
	seed             int64
	epochs           int
	epochPerCheckpoint int
	qTablePath       string
	serve            bool
	serveAddr        string
	alpha            float64
	gamma            float64
	epsilon          float64
	maxStepsPerEpisode int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("tcgsim: fatal error")
	}
}

func newRootCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "tcgsim",
		Short: "Train a tabular Q-learning agent over an intersection-scheduling environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.intersectionPath, "intersection", "", "path to the intersection JSON description (required)")
	cmd.Flags().StringVar(&flags.trafficGenerator, "traffic-generator", "file", "registered traffic generator name")
	cmd.Flags().StringVar(&flags.trafficPath, "traffic", "", "path to the traffic JSON description (required by the \"file\" generator)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed handed to the traffic generator")
	cmd.Flags().IntVar(&flags.epochs, "epoch-per-traffic", 1000, "number of training episodes to run over the generated traffic")
	cmd.Flags().IntVar(&flags.epochPerCheckpoint, "epoch-per-checkpoint", 100, "save the Q-table every N episodes")
	cmd.Flags().StringVar(&flags.qTablePath, "q-table-path", "", "checkpoint file path; loaded if present, saved periodically if set")
	cmd.Flags().BoolVar(&flags.serve, "serve", false, "serve a live observation feed over websocket while training")
	cmd.Flags().StringVar(&flags.serveAddr, "serve-addr", ":8089", "address for --serve's websocket endpoint")
	cmd.Flags().Float64Var(&flags.alpha, "alpha", 0.1, "Q-learning learning rate")
	cmd.Flags().Float64Var(&flags.gamma, "gamma", 0.9, "Q-learning discount factor")
	cmd.Flags().Float64Var(&flags.epsilon, "epsilon", 0.3, "Q-learning exploration rate")
	cmd.Flags().IntVar(&flags.maxStepsPerEpisode, "max-steps", 100_000, "safety bound on decisions per episode")

	_ = cmd.MarkFlagRequired("intersection")

	return cmd
}

func run(ctx context.Context, flags *runFlags) error {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	it, err := config.LoadIntersection(flags.intersectionPath)
	if err != nil {
		return fmt.Errorf("tcgsim: load intersection: %w", err)
	}

	kwargs := map[string]string{"path": flags.trafficPath}
	gen, err := traffic.New(flags.trafficGenerator, kwargs)
	if err != nil {
		return fmt.Errorf("tcgsim: resolve traffic generator: %w", err)
	}

	specs, err := gen.Generate(flags.seed)
	if err != nil {
		return fmt.Errorf("tcgsim: generate traffic: %w", err)
	}

	sim := simulator.New(it)
	if err := config.ApplyTraffic(sim, specs); err != nil {
		return fmt.Errorf("tcgsim: apply traffic: %w", err)
	}
	sim.Start()

	log.Info().Int("vehicles", len(specs)).Str("intersection", flags.intersectionPath).Msg("tcgsim: simulator ready")

	adapter := env.New(sim)

	var table qlearning.PersistentTable
	if size := adapter.StateSpaceSize(); size > 0 && size <= 1<<22 {
		table = qlearning.NewDenseTable(int(size), adapter.ActionSpaceSize())
	} else {
		table = qlearning.NewMapTable(adapter.ActionSpaceSize())
	}

	checkpointer := qlearning.JSONCheckpointer{}
	if flags.qTablePath != "" {
		if _, err := os.Stat(flags.qTablePath); err == nil {
			if err := checkpointer.Load(flags.qTablePath, table); err != nil {
				return fmt.Errorf("tcgsim: load checkpoint: %w", err)
			}
			log.Info().Str("path", flags.qTablePath).Msg("tcgsim: resumed from checkpoint")
		}
	}

	agent := qlearning.NewAgent(table, flags.alpha, flags.gamma, flags.epsilon, rand.New(rand.NewSource(flags.seed)))

	var broadcaster *livefeed.Broadcaster
	if flags.serve {
		broadcaster = livefeed.NewBroadcaster()
		serveCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer cancel()
		go func() {
			if err := broadcaster.ListenAndServe(serveCtx, flags.serveAddr); err != nil {
				log.Error().Err(err).Msg("tcgsim: livefeed server exited")
			}
		}()
		log.Info().Str("addr", flags.serveAddr).Msg("tcgsim: serving live feed")
	}

	for epoch := 1; epoch <= flags.epochs; epoch++ {
		result, err := agent.RunEpisode(adapter, flags.maxStepsPerEpisode)
		if err != nil {
			return fmt.Errorf("tcgsim: episode %d: %w", epoch, err)
		}

		if broadcaster != nil {
			broadcaster.Publish(sim.Observe())
		}

		log.Debug().
			Int("epoch", epoch).
			Float64("total_cost", result.TotalCost).
			Int("steps", result.Steps).
			Str("status", result.Status).
			Msg("tcgsim: episode complete")

		if flags.qTablePath != "" && epoch%flags.epochPerCheckpoint == 0 {
			if err := checkpointer.Save(flags.qTablePath, table); err != nil {
				return fmt.Errorf("tcgsim: save checkpoint at epoch %d: %w", epoch, err)
			}
			log.Info().Int("epoch", epoch).Str("path", flags.qTablePath).Msg("tcgsim: checkpoint saved")
		}
	}

	if flags.qTablePath != "" {
		if err := checkpointer.Save(flags.qTablePath, table); err != nil {
			return fmt.Errorf("tcgsim: final checkpoint: %w", err)
		}
	}

	log.Info().Int("epochs", flags.epochs).Msg("tcgsim: training complete")
	return nil
}
