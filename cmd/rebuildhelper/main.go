// Command rebuildhelper is a terminal assistant for reconstruction projects:
// an AI-style Q&A chat, the AICON usage guide, consultation booking and a
// my-page with past activity.
package main

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/rebuildhelper/internal/chat"
	"github.com/jask/rebuildhelper/internal/config"
	"github.com/jask/rebuildhelper/internal/consult"
	"github.com/jask/rebuildhelper/internal/guide"
	"github.com/jask/rebuildhelper/internal/logging"
	"github.com/jask/rebuildhelper/internal/profile"
	"github.com/jask/rebuildhelper/internal/screen"
	"github.com/jask/rebuildhelper/internal/tui"
)

var version = "dev"

type rootOptions struct {
	configPath string
	screen     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "rebuildhelper",
		Short:         "재건축 도우미 terminal app",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: $REBUILDHELPER_CONFIG or ~/.config/rebuildhelper/config.toml)")
	cmd.Flags().StringVar(&opts.screen, "screen", "", "Start screen: home, chat, aiconGuide, consultation, myPage")

	cmd.AddCommand(newGuideCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rebuildhelper", version)
		},
	})
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFile(opts.configPath)
	}
	return config.Load()
}

func runApp(opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	startName := cfg.UI.StartScreen
	if opts.screen != "" {
		startName = opts.screen
	}
	start, err := screen.Parse(startName)
	if err != nil {
		return err
	}

	base, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = base.Sync() }()
	log := base.With(zap.String("session", uuid.NewString()))

	tz, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using local", zap.String("timezone", cfg.UI.Timezone), zap.Error(err))
		tz = time.Local
	}

	models := tui.Models{
		Chat:  chat.NewConversation(),
		Guide: guide.New(guide.DefaultCatalog(), log.Named("guide")),
		Form:  consult.NewForm(consult.WithLogger(log.Named("consult"))),
		Profile: profile.NewView(
			profile.User{Name: cfg.Profile.Name, Phone: cfg.Profile.Phone},
			profile.DefaultHistory(),
			cfg.Profile.Notifications,
		),
	}
	log.Info("starting", zap.Stringer("screen", start), zap.String("version", version))

	app := tui.New(cfg, log, screen.NewShell(start), models, tz)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return fmt.Errorf("run: %w", err)
	}
	log.Info("stopped")
	return nil
}
