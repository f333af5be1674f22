package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"attr-linker/linkfile"
)

const envPrefix = "ATTRLINK"

// newRootCommand builds the command tree around its own viper instance.
func newRootCommand() *cobra.Command {
	v := viper.New()

	var cfgFile string

	root := &cobra.Command{
		Use:           "attrlink",
		Short:         "Check and print attribute link files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			logrus.SetOutput(cmd.ErrOrStderr())
			if v.GetBool("debug") {
				logrus.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml) with flag defaults")
	root.PersistentFlags().Bool("debug", false, "turn on debug logging")
	root.PersistentFlags().StringP("file", "f", "links.yaml", "link file to read")

	root.AddCommand(newCheckCommand(v), newDumpCommand(v))

	return root
}

// initConfig reads the config file, if any, and environment variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}

	v.SetConfigFile(cfgFile)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}

	logrus.WithField("config", v.ConfigFileUsed()).Debug("config loaded")

	return nil
}

func loadFile(v *viper.Viper) (*linkfile.File, error) {
	path := v.GetString("file")
	logrus.WithField("file", path).Debug("loading link file")

	return linkfile.LoadFile(path)
}
