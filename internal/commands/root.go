package commands

import (
	"log/slog"

	"github.com/ppiankov/dataspectre/internal/config"
	"github.com/ppiankov/dataspectre/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dataspectre",
	Short: "Dataspectre - repository dataset licence auditor",
	Long: `Dataspectre scans a code repository for dataset references (Hugging Face
loader calls, CSV-reading calls, data-file literals, hosted dataset URLs),
classifies each with a best-guess licence and risk flag, and writes a
dataset passport report.

Part of the Spectre family of infrastructure audit tools.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}
