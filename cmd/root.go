// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"embedplayer/internal/config"
	"embedplayer/internal/player"
	"embedplayer/internal/prefs"
	"embedplayer/internal/provider"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagPlugin   string
	flagProvider string
	flagPrefsDB  string
	flagColor    string
	flagDebug    bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

// logger receives rendering warnings on stderr.
var logger = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "embedplayer",
	Short: "Render embedded media players from play references",
	Long: `embedplayer turns media URLs or bare IDs into embeddable player markup
for YouTube, Vimeo, Dailymotion, Bandcamp, SoundCloud, Mixcloud, Twitch,
the Internet Archive and providers declared in the config file.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPlugin, "plugin", "", "Tag and preference prefix (default: embed_player)")
	rootCmd.PersistentFlags().StringVarP(&flagProvider, "provider", "p", "", "Provider to render with (default: detected from the URL, then config)")
	rootCmd.PersistentFlags().StringVar(&flagPrefsDB, "prefs-db", "", "SQLite preference database")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color output: auto | always | never")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagPlugin != "" {
		cfg.Plugin = flagPlugin
	}
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagPrefsDB != "" {
		cfg.PrefsDB = flagPrefsDB
	}
	if flagColor != "" {
		cfg.Color = flagColor
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.SetOutput(os.Stderr)
	level := slog.LevelWarn
	if cfg.Debug {
		log.SetPrefix("[embedplayer] ")
		level = slog.LevelDebug
	} else {
		log.SetFlags(0)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}

// openStore returns the preference store: the SQLite database when it
// exists, overridden by the [prefs] tables of the config file.
func openStore() (prefs.Store, func(), error) {
	stack := prefs.Stack{}
	closer := func() {}

	path, err := cfg.PrefsPath()
	if err != nil {
		return nil, nil, err
	}
	if _, err := os.Stat(path); err == nil {
		db, err := prefs.Open(path)
		if err != nil {
			return nil, nil, err
		}
		debugf("preferences: %s", path)
		stack = append(stack, db)
		closer = func() { db.Close() }
	}

	stack = append(stack, cfg.PrefsStore())
	return stack, closer, nil
}

// newRenderer builds a renderer over the configured providers and preferences.
// The returned function releases the preference store.
func newRenderer() (*player.Renderer, *provider.Registry, func(), error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, nil, nil, err
	}

	store, closer, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}

	r := player.New(reg, prefs.NewCache(store, cfg.Plugin, reg), player.Options{
		Plugin:          cfg.Plugin,
		DefaultProvider: cfg.Provider,
		Logger:          logger,
	})
	return r, reg, closer, nil
}
