package cmd

import (
	"log/slog"
	"os"

	"github.com/similar-manga/mdserial/internal/config"
	"github.com/spf13/cobra"
)

// Config is loaded before any subcommand runs.
var Config *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mdserial",
	Short: "Decode and inspect MangaDex API payloads",
	Long: `
 Typed decoding of MangaDex JSON payloads (feeds, manga, authors, at-home servers)
 into entities, and encoding them back.

 Examples
  ./mdserial entities decode --kind feed feed.json
  ./mdserial entities pages --server at_home.json chapter.json
  ./mdserial entities store data/manga/*.json

 Settings come from SIMILAR_DB_PATH, SIMILAR_OUTPUT_FORMAT and SIMILAR_DEBUG,
 flags take precedence.
`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	slog.Debug("configuration loaded", slog.String("db", cfg.DatabasePath), slog.String("format", cfg.OutputFormat))

	Config = cfg
	return nil
}
