package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check settings and manifest without serving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := load(opts)
			if err != nil {
				return err
			}
			_ = b.logger.Sync()

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (auth %s)\n", b.manifest.NameForModel, b.manifest.Auth.Type())
			return err
		},
	}
}
