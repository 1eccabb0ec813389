package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aussiebroadwan/stacks/internal/library/app"
	"github.com/aussiebroadwan/stacks/internal/library/service"
	"github.com/aussiebroadwan/stacks/pkg/cryptox"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newCreateAdminCmd() *cobra.Command {
	var (
		username string
		generate bool
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first catalog editor on an empty database",
		Long: "Creates an ADMIN user when no users exist yet. The password is read " +
			"from the terminal, or generated and printed with --generate or when " +
			"stdin is not a terminal.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.LoadConfig()
			logger := app.NewLogger(cfg)

			db, err := app.OpenStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			password, generated, err := adminPassword(cmd, generate)
			if err != nil {
				return err
			}

			users := &service.UserService{Store: db}
			admin, err := users.EnsureAdmin(cmd.Context(), username, password)
			if errors.Is(err, service.ErrAlreadyInitialized) {
				return fmt.Errorf("refusing to create admin: %w", err)
			}
			if err != nil {
				return err
			}

			logger.Info("admin created", slog.String("user_id", admin.ID), slog.String("username", admin.Username))
			if generated {
				fmt.Fprintf(cmd.OutOrStdout(), "username: %s\npassword: %s\n", admin.Username, password)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "admin username")
	cmd.Flags().BoolVar(&generate, "generate", false, "generate a random password instead of prompting")
	return cmd
}

// adminPassword prompts twice with echo disabled, or generates a password.
func adminPassword(cmd *cobra.Command, generate bool) (password string, generated bool, err error) {
	fd := int(os.Stdin.Fd())
	if generate || !term.IsTerminal(fd) {
		password, err = cryptox.GeneratePassword()
		return password, true, err
	}

	read := func(prompt string) (string, error) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	first, err := read("Password: ")
	if err != nil {
		return "", false, err
	}
	second, err := read("Confirm password: ")
	if err != nil {
		return "", false, err
	}
	if first != second {
		return "", false, errors.New("passwords do not match")
	}
	return first, false, nil
}
