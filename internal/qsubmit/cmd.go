/**
 * Copyright (c) 2024 The qsubmit Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package qsubmit

import (
	"QsubmitFrontEnd/internal/util"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	FlagConfigFilePath string
	FlagTemplatePath   string
	FlagOutputPath     string
	FlagQsubBin        string
	FlagMarker         string
	FlagArrayName      string
	FlagShellEscape    bool
	FlagDryRun         bool
	FlagDebugLevel     string

	/*
		The scheduler options string is dash-leading ("-p 0 -q gpu"), so
		cobra must not parse it as flags. Like the cwrapper commands that
		forward foreign command lines, the root command disables flag
		parsing and handles its own flags manually: known qsubmit flags
		are consumed from the front of the argument list, and everything
		from the first unrecognized token on is positional.
	*/
	RootCmd = &cobra.Command{
		Use:   "qsubmit [flags] \"qsub-options\" [command [args]...]",
		Short: "Submit a templated job script to the batch queue",
		Long: `Inject a command line into the job script template and submit the
result with qsub. The first positional argument is passed to qsub
verbatim after word-splitting; the remaining arguments are embedded
into the template as a shell array assignment. Use "--" to separate
qsubmit flags from a positional that would otherwise look like one.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.InitDefaultHelpFlag()

			own, positional := SplitCmdLine(cmd, args)
			if err := cmd.ParseFlags(own); err != nil {
				return util.WrapQsubErr(util.ErrorCmdArg, "Invalid arguments", err)
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if len(positional) < 1 {
				return util.NewQsubErr(util.ErrorCmdArg,
					"Invalid number of arguments: expected \"qsub-options\" [command [args]...]")
			}

			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			options := positional[0]
			command := positional[1:]

			if err := AssembleScript(config.TemplatePath, config.OutputPath,
				config.Marker, config.ArrayName, command, FlagShellEscape); err != nil {
				return err
			}

			if FlagDryRun {
				fmt.Println(InvocationLine(config.QsubBin, options, config.OutputPath))
				return nil
			}
			return Submit(config.QsubBin, options, config.OutputPath)
		},
	}
)

// SplitCmdLine separates qsubmit's own flags from the positional
// arguments. Consumption stops at "--" or at the first token that is not
// a registered flag; a single-dash token containing whitespace can only
// be a scheduler options string and is never treated as a flag.
func SplitCmdLine(cmd *cobra.Command, argv []string) (own, positional []string) {
	i := 0
	for i < len(argv) {
		token := argv[i]
		if token == "--" {
			i++
			break
		}

		var flag *pflag.Flag
		if strings.HasPrefix(token, "--") {
			name, _, _ := strings.Cut(token[2:], "=")
			flag = lookupFlag(cmd, name)
		} else if len(token) >= 2 && token[0] == '-' && !strings.ContainsAny(token, " \t") {
			flag = lookupShorthand(cmd, token[1:2])
		}
		if flag == nil {
			break
		}

		own = append(own, token)
		i++

		if flag.Value.Type() == "bool" {
			continue
		}
		// A value token follows unless it is attached to the flag itself
		// ("--output=f", "-Cf").
		attached := strings.Contains(token, "=") ||
			(!strings.HasPrefix(token, "--") && len(token) > 2)
		if !attached && i < len(argv) {
			own = append(own, argv[i])
			i++
		}
	}
	return own, argv[i:]
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.PersistentFlags().Lookup(name)
}

func lookupShorthand(cmd *cobra.Command, shorthand string) *pflag.Flag {
	if flag := cmd.Flags().ShorthandLookup(shorthand); flag != nil {
		return flag
	}
	return cmd.PersistentFlags().ShorthandLookup(shorthand)
}

// loadConfig parses the configuration file and applies command line
// overrides. Flags set by the user take precedence over file values.
func loadConfig(cmd *cobra.Command) (*util.Config, error) {
	config, err := util.ParseConfig(FlagConfigFilePath)
	if err != nil {
		return nil, util.WrapQsubErr(util.ErrorCmdArg, "Failed to load configuration", err)
	}

	if cmd.Flags().Changed("template") {
		config.TemplatePath = util.ExpandHome(FlagTemplatePath)
	}
	if cmd.Flags().Changed("output") {
		config.OutputPath = util.ExpandHome(FlagOutputPath)
	}
	if cmd.Flags().Changed("qsub-bin") {
		config.QsubBin = FlagQsubBin
	}
	if cmd.Flags().Changed("marker") {
		config.Marker = FlagMarker
	}
	if cmd.Flags().Changed("array-name") {
		config.ArrayName = FlagArrayName
	}

	if FlagDebugLevel != "" {
		if err := util.SetLogLevel(FlagDebugLevel); err != nil {
			return nil, util.NewQsubErr(util.ErrorCmdArg,
				"Invalid debug level. Valid levels are: trace, debug, info, warn, error.")
		}
	} else if err := util.SetLogLevel(config.LogLevel); err != nil {
		return nil, util.WrapQsubErr(util.ErrorCmdArg, "Invalid LogLevel in configuration", err)
	}
	if config.LogPath != "" {
		util.AddFileSink(config.LogPath)
	}

	return config, nil
}

func ParseCmdArgs() {
	util.RunAndHandleExit(RootCmd)
}

func init() {
	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return util.WrapQsubErr(util.ErrorCmdArg, "Invalid arguments", err)
	})

	RootCmd.PersistentFlags().StringVarP(&FlagConfigFilePath, "config", "C",
		util.DefaultConfigPath, "Path to configuration file")
	RootCmd.PersistentFlags().StringVar(&FlagTemplatePath, "template", "", "Path to the job script template")
	RootCmd.PersistentFlags().StringVar(&FlagOutputPath, "output", "", "Path of the generated job script")
	RootCmd.PersistentFlags().StringVar(&FlagQsubBin, "qsub-bin", "", "Batch-queue submission program")
	RootCmd.PersistentFlags().StringVar(&FlagMarker, "marker", "", "Marker line replaced by the generated command")
	RootCmd.PersistentFlags().StringVar(&FlagArrayName, "array-name", "", "Name of the generated shell array variable")
	RootCmd.PersistentFlags().StringVar(&FlagDebugLevel, "debug-level", "", "Available debug level: trace, debug, info, warn, error")
	RootCmd.Flags().BoolVar(&FlagShellEscape, "shell-escape", false, "Quote embedded arguments with full shell escaping instead of the plain historical format")
	RootCmd.Flags().BoolVar(&FlagDryRun, "dry-run", false, "Assemble the job script and print the invocation without submitting")

	RootCmd.AddCommand(inspectCmd)
}
