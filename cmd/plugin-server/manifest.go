package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newManifestCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the built manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := load(opts)
			if err != nil {
				return err
			}
			defer func() {
				_ = b.logger.Sync()
			}()

			var data []byte
			switch format {
			case "json":
				data, err = b.manifest.JSON()
			case "yaml":
				data, err = b.manifest.YAML()
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
