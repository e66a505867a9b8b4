package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/SebastianBuritica/interviewprep/internal/config"
	"github.com/SebastianBuritica/interviewprep/internal/content"
	"github.com/SebastianBuritica/interviewprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "interviewprep",
	Short: "Terminal trainer for front-end interviews",
	Long: "InterviewPrep is a terminal app for drilling front-end interview topics:\n" +
		"study guides, timed practice drills with spaced review, and take-home\n" +
		"style coding challenges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database (overrides INTERVIEWPREP_DB and config)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (overrides INTERVIEWPREP_CONFIG)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(guidesCmd)
	rootCmd.AddCommand(challengesCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads configuration honoring the --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// resolveDBPath returns the database path: --db flag, then the
// INTERVIEWPREP_DB environment variable, then the config file, then
// the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("INTERVIEWPREP_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the store for a subcommand. The
// caller closes the store.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open database: %w", err)
	}
	return st, cfg, nil
}

// contentFS returns the content tree, honoring the on-disk override
// from config.
func contentFS(cfg config.Config) (fs.FS, error) {
	if cfg.Content.Dir != "" {
		return content.DirFS(cfg.Content.Dir)
	}
	return content.FS(), nil
}
