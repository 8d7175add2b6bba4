package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/jon4hz/aitoolbox/internal/config"
	"github.com/jon4hz/aitoolbox/internal/database"
	"github.com/spf13/cobra"
)

var resetCmdFlags struct {
	Yes bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all tools from the catalog",
	Long:  `This command removes every tool from the catalog. Users, admins and categories are left untouched.`,
	Run:   reset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetCmdFlags.Yes, "yes", false, "Skip the confirmation and reset immediately")

	rootCmd.AddCommand(resetCmd)
}

func reset(cmd *cobra.Command, _ []string) {
	if !resetCmdFlags.Yes {
		log.Fatal("refusing to reset the catalog without --yes")
	}

	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	if err := db.ResetTools(cmd.Context()); err != nil {
		log.Fatalf("failed to reset catalog: %v", err)
	}

	log.Info("Successfully removed all tools from the catalog!")
}
