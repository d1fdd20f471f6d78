// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/ircgen/internal/logging"
	cmdutil "gitlab.com/accumulatenetwork/ircgen/internal/util/cmd"
)

func main() {
	cmdutil.Check(newCommand().Execute())
}

func newCommand() *cobra.Command {
	var flags struct {
		Config
		File string
	}

	cmd := &cobra.Command{
		Use:   "gen-code",
		Short: "Generate a Go enumeration from a table of codes",
		Long: `Reads a table of codes, a line with the name of each code followed by a
line with its value, and generates a Go type with a value for every code.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdutil.Stderr = cmd.ErrOrStderr()

			cfg, err := LoadConfig(cmd.Flags(), flags.File)
			if err != nil {
				return err
			}

			logger, err := logging.NewLogger(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}

			return Generate(cfg, cmd.OutOrStdout(), logger)
		},
	}

	flags.SetFlags(cmd.Flags())
	cmd.Flags().StringVar(&flags.File, "config", "", "Configuration file (yaml, toml, or json)")
	return cmd
}
