package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/rebuildhelper/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				path = config.Path()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "log.level = %q\n", cfg.Log.Level)
			fmt.Fprintf(out, "log.path = %q\n", cfg.Log.Path)
			fmt.Fprintf(out, "ui.start_screen = %q\n", cfg.UI.StartScreen)
			fmt.Fprintf(out, "ui.timezone = %q\n", cfg.UI.Timezone)
			fmt.Fprintf(out, "ui.width = %d\n", cfg.UI.Width)
			fmt.Fprintf(out, "profile.name = %q\n", cfg.Profile.Name)
			fmt.Fprintf(out, "profile.phone = %q\n", cfg.Profile.Phone)
			fmt.Fprintf(out, "profile.notifications = %t\n", cfg.Profile.Notifications)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
