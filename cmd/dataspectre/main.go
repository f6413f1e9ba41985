package main

import (
	"log/slog"
	"os"

	"github.com/ppiankov/dataspectre/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		slog.Warn("Command failed", "error", err)
		os.Exit(1)
	}
}
