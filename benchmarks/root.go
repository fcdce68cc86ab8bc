package benchmarks

import "github.com/spf13/cobra"

var (
	episodes    int
	horizon     int
	saveFile    string
	runs        int
	monitorAddr string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 2000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 100, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().StringVar(&monitorAddr, "monitor", "", "Address to serve training stats on (disabled when empty)")
	// adding the subcommands here
	rootCommand.AddCommand(GridCommand())
	return rootCommand
}
