package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the user directory and report problems",
		Long: `check loads the configured user directory and prints the number of users.
It fails if the source cannot be read or if several users share an email.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			dir, err := loadDirectory(cmd.Context(), cfg.Directory, newLogger(cmd.ErrOrStderr(), cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "users: %d\n", dir.Len())

			duplicates := dir.DuplicateEmails()
			for _, email := range duplicates {
				fmt.Fprintf(out, "duplicate email: %s\n", email)
			}

			if len(duplicates) > 0 {
				return fmt.Errorf("directory has %d duplicate emails", len(duplicates))
			}

			return nil
		},
	}
}
