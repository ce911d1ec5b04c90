package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aibeing/being-tui/app"
	"github.com/aibeing/being-tui/client"
	"github.com/aibeing/being-tui/config"
	"github.com/aibeing/being-tui/exchange"
	"github.com/aibeing/being-tui/history"
	"github.com/aibeing/being-tui/style"
)

var version = "dev"

var (
	flagBackend string
	flagAPIKey  string
	flagTheme   string
	flagHistory string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:          "being",
	Short:        "Terminal client for the AI Being assistant",
	Long:         "being is a terminal chat client for the AI Being backend.\nIt sends your messages to the assistant, shows each reply with its\nexecution status, and keeps conversation history locally.",
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagBackend, "backend", "", "Backend base URL (default from config, env BEING_URL)")
	f.StringVar(&flagAPIKey, "api-key", "", "API key sent as X-API-Key (default from config, env BEING_API_KEY)")
	f.StringVar(&flagTheme, "theme", "", "Color theme: dark, light, catppuccin")
	f.StringVar(&flagHistory, "history", "", "Path to the conversation history database")
	f.BoolVar(&flagNoColor, "no-color", false, "Disable ANSI colors")
}

func run() error {
	stateDir := config.DefaultStateDir()
	cfg := config.Load(stateDir)
	if !config.Exists(stateDir) {
		// Seed an editable config file on first run. Best effort.
		config.Save(stateDir, cfg) //nolint:errcheck
	}

	// Precedence: flag, then environment, then config file.
	if flagBackend == "" {
		flagBackend = os.Getenv("BEING_URL")
	}
	if flagBackend != "" {
		cfg.BackendURL = flagBackend
	}
	if flagAPIKey == "" {
		flagAPIKey = os.Getenv("BEING_API_KEY")
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagHistory != "" {
		cfg.HistoryPath = flagHistory
	}

	if flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if !style.SetTheme(cfg.Theme) {
		fmt.Fprintf(os.Stderr, "unknown theme %q, using %s\n", cfg.Theme, style.CurrentThemeName)
	}

	var store history.Store
	if s, err := history.NewBoltStore(cfg.HistoryPath); err != nil {
		// History is a convenience; run without persistence rather
		// than refuse to start.
		fmt.Fprintf(os.Stderr, "history disabled: %v\n", err)
	} else {
		store = s
	}
	registry := history.NewRegistry(store)

	c := client.New(cfg.BackendURL)
	c.APIKey = cfg.APIKey

	m := app.New(c, exchange.NewStore(), registry)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
