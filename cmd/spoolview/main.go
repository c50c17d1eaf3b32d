package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spoolview/spoolview/internal/app"
	"github.com/spoolview/spoolview/internal/config"
	"github.com/spoolview/spoolview/internal/logging"
	"github.com/spoolview/spoolview/internal/mbox"
	"github.com/spoolview/spoolview/internal/spool"
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, mbox.ErrNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spoolview [user]",
		Short: "Browse local Unix mailbox files from the terminal",
		Long: "spoolview reads mbox-style mailbox files from the system mail\n" +
			"spool and presents them in an interactive terminal viewer.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("config", config.DefaultPath(), "config file path")
	flags.String("spool-dir", spool.DefaultDir, "mail spool directory")
	flags.StringSlice("exclude", nil, "user names to skip during discovery")
	flags.String("export-dir", "", "directory for saved message copies")
	flags.String("log-file", "", "write structured logs to this file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("list-users", false, "print users with mail and exit")
	flags.Bool("list", false, "print one summary line per message and exit")
	flags.Bool("init-config", false, "write the effective config to the config file and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	initConfig, err := cmd.Flags().GetBool("init-config")
	if err != nil {
		return err
	}
	if initConfig {
		if err := config.Save(cfgPath, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgPath)
		return nil
	}

	logger, cleanup, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = cleanup()
	}()
	slog.SetDefault(logger)

	listUsers, err := cmd.Flags().GetBool("list-users")
	if err != nil {
		return err
	}
	if listUsers {
		return printUsers(cmd, cfg)
	}

	var target *spool.Box
	if len(args) == 1 {
		box, err := spool.Find(cfg.SpoolDir, args[0])
		if err != nil {
			return err
		}
		target = &box
	}

	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if list {
		return printSummary(cmd, cfg, target)
	}

	return runTUI(cfg, target, logger)
}

// loadConfig merges the config file with command-line flags; flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	flags := cmd.Flags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, "", err
	}

	if flags.Changed("spool-dir") {
		cfg.SpoolDir, _ = flags.GetString("spool-dir")
	}
	if flags.Changed("exclude") {
		cfg.Exclude, _ = flags.GetStringSlice("exclude")
	}
	if flags.Changed("export-dir") {
		cfg.ExportDir, _ = flags.GetString("export-dir")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return cfg, cfgPath, nil
}

// printUsers prints the discovered spool users, one per line.
func printUsers(cmd *cobra.Command, cfg *config.Config) error {
	boxes, err := spool.List(cfg.SpoolDir, cfg.Exclude)
	if err != nil {
		return err
	}
	for _, box := range boxes {
		fmt.Fprintln(cmd.OutOrStdout(), box.User)
	}
	return nil
}

// printSummary prints one line per message of the selected mailbox:
// index, date, sender, subject.
func printSummary(cmd *cobra.Command, cfg *config.Config, target *spool.Box) error {
	if target == nil {
		boxes, err := spool.List(cfg.SpoolDir, cfg.Exclude)
		if err != nil {
			return err
		}
		if len(boxes) != 1 {
			return fmt.Errorf("--list needs a user argument when the spool holds %d mailboxes", len(boxes))
		}
		target = &boxes[0]
	}

	box, err := mbox.Load(target.Path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, msg := range box.Messages() {
		date := "-"
		if t := msg.Time(); !t.IsZero() {
			date = t.Format("2006-01-02 15:04")
		}
		sender := msg.Sender()
		if sender == "" {
			sender = "(unknown sender)"
		}
		subject := msg.Subject()
		if subject == "" {
			subject = "(no subject)"
		}
		fmt.Fprintf(out, "%4d  %-16s  %-30s  %s\n",
			i+1, date, truncate(sender, 30), subject)
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// runTUI starts the interactive viewer.
func runTUI(cfg *config.Config, target *spool.Box, logger *slog.Logger) error {
	boxes, err := spool.List(cfg.SpoolDir, cfg.Exclude)
	if err != nil && target == nil {
		return err
	}

	if target == nil {
		switch len(boxes) {
		case 0:
			return fmt.Errorf("%w: no mailboxes under %s", mbox.ErrNotFound, cfg.SpoolDir)
		case 1:
			target = &boxes[0]
		}
	}

	model := app.New(app.Options{
		Target:    target,
		Boxes:     boxes,
		ExportDir: cfg.ExportDir,
		Logger:    logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}

	if m, ok := final.(app.Model); ok && m.Err() != nil {
		return m.Err()
	}

	return nil
}
