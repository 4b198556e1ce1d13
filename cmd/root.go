package cmd

import (
	"fmt"
	"os"

	"medicare/config"
	"medicare/utils"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "medicare",
	Short: "MediCare diagnostic test booking API.",
	Long: `MediCare serves the diagnostic test catalog, appointment booking,
report delivery, banners and payments for the MediCare clinic.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		utils.InitializeLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		utils.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newWorkerCommand())
	rootCmd.AddCommand(newIndexesCommand())
	rootCmd.AddCommand(newSeedCommand())
}
