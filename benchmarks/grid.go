package benchmarks

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"grid-dqn/grid"
	"grid-dqn/monitor"
	"grid-dqn/policies"
	"grid-dqn/types"
)

func GridDQN(episodes, horizon int, saveFile string, height, width, bufferSize int, runs int, monitorAddr string, ctx context.Context) {
	doors := []grid.Door{
		{From: grid.Position{I: 0, J: width - 1}, To: grid.Position{I: height / 2, J: width / 2}},
	}
	goal := grid.Position{I: height - 1, J: width - 1}

	var server *monitor.Server
	if monitorAddr != "" {
		server = monitor.NewServer(ctx, monitorAddr)
		server.Start()
	}
	publishTo := func(name string) func(episode int, trace *types.Trace, seen int, ready bool) {
		if server == nil {
			return nil
		}
		return func(episode int, trace *types.Trace, seen int, ready bool) {
			server.Publish(monitor.Stats{
				Experiment:  name,
				Episode:     episode + 1,
				Episodes:    episodes,
				BufferSeen:  seen,
				BufferReady: ready,
				LastReturn:  trace.Return(),
			})
		}
	}

	// exploration and learning rate anneal over the first half of training
	nsteps := episodes * horizon / 2

	c := types.NewComparison(&types.ComparisonConfig{
		Runs:       runs,
		RecordPath: saveFile,
	})
	c.AddAnalysis("Returns", types.SmoothedReturns(50), types.ReturnPlotter(saveFile))
	c.AddAnalysis("Visits", grid.VisitAnalyzer(height, width), grid.VisitComparator(saveFile))

	c.AddExperiment(types.NewExperiment(
		"Random",
		&types.AgentConfig{
			Episodes:         episodes,
			Horizon:          horizon,
			BufferSize:       bufferSize,
			BatchSize:        32,
			LearningStart:    200,
			LearningFreq:     4,
			TargetUpdateFreq: 500,
			Policy:           policies.NewRandom(),
			Environment:      grid.NewGridEnvironment(height, width, goal, doors...),
			OnEpisode:        publishTo("Random"),
		},
	))
	c.AddExperiment(types.NewExperiment(
		"LinearQ",
		&types.AgentConfig{
			Episodes:         episodes,
			Horizon:          horizon,
			BufferSize:       bufferSize,
			BatchSize:        32,
			LearningStart:    200,
			LearningFreq:     4,
			TargetUpdateFreq: 500,
			Policy: policies.NewLinearQ(
				2, grid.NumActions, 0.99, 10,
				policies.NewLinearSchedule(1, 0.01, nsteps),
				policies.NewLinearSchedule(0.005, 0.001, nsteps),
			),
			Environment: grid.NewGridEnvironment(height, width, goal, doors...),
			OnEpisode:   publishTo("LinearQ"),
		},
	))

	if err := c.Run(); err != nil {
		fmt.Println(err)
	}
}

func GridCommand() *cobra.Command {
	var height int
	var width int
	var bufferSize int

	cmd := &cobra.Command{
		Use: "grid",
		Run: func(cmd *cobra.Command, args []string) {
			GridDQN(episodes, horizon, saveFile, height, width, bufferSize, runs, monitorAddr, context.Background())
		},
	}
	cmd.PersistentFlags().IntVar(&height, "height", 10, "Height of the grid")
	cmd.PersistentFlags().IntVar(&width, "width", 10, "Width of the grid")
	cmd.PersistentFlags().IntVar(&bufferSize, "buffer", 1000, "Capacity of the replay buffer")
	return cmd
}
