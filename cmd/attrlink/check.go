package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"attr-linker/internal/analyze"
	"attr-linker/linkfile"
)

func newCheckCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a link file against Go packages",
		Long: `Loads the Go packages holding the linked types and reports unknown types,
missing source attributes, duplicate targets and other mistakes in the link file.
Exits with status 1 when errors are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := loadFile(v)
			if err != nil {
				return err
			}

			patterns := v.GetStringSlice("packages")
			if len(patterns) == 0 {
				return errors.New("no packages given, use --packages")
			}

			a := analyze.NewAnalyzer(analyze.WithDir(v.GetString("dir")), analyze.WithLogger(logrus.StandardLogger()))

			graph, err := a.LoadPackages(patterns...)
			if err != nil {
				return err
			}

			res := linkfile.Validate(f, graph)

			out := cmd.OutOrStdout()
			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			fmt.Fprintf(out, "%d links, %d errors, %d warnings\n", len(f.Links), len(res.Errors), len(res.Warnings))

			if res.HasErrors() {
				return fmt.Errorf("%s has %d errors", v.GetString("file"), len(res.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceP("packages", "p", nil, "packages holding the linked types")
	cmd.Flags().String("dir", "", "directory package patterns are resolved from")

	return cmd
}
