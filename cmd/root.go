package cmd

import (
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dochub/internal/api"
	"dochub/internal/app"
	"dochub/internal/auth"
	"dochub/internal/clipboard"
	"dochub/internal/config"
	"dochub/internal/logger"
	"dochub/internal/store"
)

var (
	debugMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "dochub",
	Short: "TUI for browsing document spaces and chatting with their contents",
	Long: `Doc Hub is a terminal client for a document hub server. It browses the
documents of a space in a tabbed, splittable workspace and runs an AI chat
scoped to the whole space or to a selection of documents.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func initLogging() {
	// A .env in the working directory may carry DOCHUB_SERVER / DOCHUB_TOKEN.
	_ = godotenv.Load()

	if err := logger.Init(logger.DefaultLogPath); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("dochub %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("dochub %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if !cfg.IsLoggedIn() {
		return fmt.Errorf("not logged in, run 'dochub login' first")
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("error locating config dir: %w", err)
	}
	st, err := store.Open(filepath.Join(dir, "store.json"))
	if err != nil {
		return fmt.Errorf("error opening layout store: %w", err)
	}

	defer logger.Close()

	// Clipboard init can fail on headless terminals; copy just degrades.
	if err := clipboard.Init(); err != nil {
		logger.Warn("Main: clipboard unavailable: %v", err)
	}

	m := app.New(cfg, st, api.New(cfg), version)
	if id, ok := auth.IdentityFromToken(cfg.GetToken()); ok {
		m.SetUserName(id.DisplayName())
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
