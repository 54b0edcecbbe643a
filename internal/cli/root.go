package cli

import (
	"fmt"
	"os"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/logging"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Gallery CMS backend",
	Long: `Backend for the gallery website: artists, artworks, exhibitions and
events behind a public read API and a session-protected admin API.`,
}

func init() {
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newAdminCmd())
}

// Execute is called by main.main().
func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, sets up logging and opens a migrated database.
func bootstrap() (*config.Config, *gorm.DB, error) {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}
	return cfg, db, nil
}
