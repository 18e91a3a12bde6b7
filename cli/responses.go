package cli

import (
	"credence/experiments"
	"credence/games/investigation"

	"github.com/spf13/cobra"
)

var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "Print the detective's best guesses for every pair of suspects' claims",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		responses, err := experiments.InvestigationResponses(cfg.Seed, cfg.SolverOptions()...)
		if err != nil {
			return err
		}
		return experiments.WriteResponses(cmd.OutOrStdout(), investigation.New(), responses)
	},
}

func init() {
	rootCmd.AddCommand(responsesCmd)
}
