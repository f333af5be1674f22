package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"attr-linker/linkfile"
)

func newDumpCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a link file in normalized form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := loadFile(v)
			if err != nil {
				return err
			}

			if v.GetBool("raw") {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				_, err = fmt.Fprint(cmd.OutOrStdout(), cfg.Sdump(f))

				return err
			}

			data, err := linkfile.Marshal(f)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().Bool("raw", false, "print the parsed Go value instead of YAML")

	return cmd
}
