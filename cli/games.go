package cli

import (
	"fmt"

	"credence/games"

	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the games that can be played",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range games.Names() {
			g, err := games.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-28s %d agents, %d initial states\n", name, g.NumAgents(), len(g.InitialStates()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gamesCmd)
}
