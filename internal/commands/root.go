// Package commands implements the pick CLI, a thin shell wrapper around
// the picker library for use in scripts.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moasq/pick"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "pick",
	Short:        "Single-line option picker for shell scripts",
	Long:         "Pick renders choices on one terminal line and prints the selected label to stdout, so scripts can capture it with command substitution.",
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&delimiterFlag, "delimiter", "/", "string drawn between options")
	rootCmd.PersistentFlags().StringVar(&bracketsFlag, "brackets", "[]", "bracket pair enclosing the options, split down the middle")
	rootCmd.PersistentFlags().BoolVar(&wrapFlag, "wrap", false, "wrap around at the ends of the list")
	rootCmd.PersistentFlags().BoolVar(&altScreenFlag, "alt-screen", false, "run in the terminal's alternate buffer")
	rootCmd.PersistentFlags().StringVar(&descriptionsFlag, "descriptions", "never", "description lines: never, current, or all")
	rootCmd.PersistentFlags().StringVar(&nameWidthFlag, "name-width", "auto", "description label column: auto, never, or a fixed width")

	rootCmd.AddCommand(chooseCmd)
	rootCmd.AddCommand(yesnoCmd)
}

var (
	delimiterFlag    string
	bracketsFlag     string
	wrapFlag         bool
	altScreenFlag    bool
	descriptionsFlag string
	nameWidthFlag    string
)

// buildConfig assembles the session configuration. A --config file (if
// any) supplies defaults; flags the user actually set override it.
func buildConfig(cmd *cobra.Command, file *fileConfig) (pick.Config, error) {
	cfg := pick.DefaultConfig()
	if file != nil {
		if err := file.apply(&cfg); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if file == nil || flags.Changed("delimiter") {
		cfg.Delimiter = delimiterFlag
	}
	if file == nil || flags.Changed("brackets") {
		cfg.SetBrackets(bracketsFlag)
	}
	if file == nil || flags.Changed("wrap") {
		cfg.Wrap = wrapFlag
	}
	if file == nil || flags.Changed("alt-screen") {
		cfg.AlternateScreen = altScreenFlag
	}
	if file == nil || flags.Changed("descriptions") {
		mode, err := parseDescriptions(descriptionsFlag)
		if err != nil {
			return cfg, err
		}
		cfg.Descriptions = mode
	}
	if file == nil || flags.Changed("name-width") {
		width, err := parseNameWidth(nameWidthFlag)
		if err != nil {
			return cfg, err
		}
		cfg.NameWidth = width
	}
	return cfg, nil
}

// exitCanceled converts a cancellation into a plain exit code 1 so shell
// scripts can branch on it without parsing stderr.
func exitCanceled(err error) error {
	if errors.Is(err, pick.ErrCanceled) {
		os.Exit(1)
	}
	return err
}

func parseDescriptions(s string) (pick.DescriptionMode, error) {
	switch s {
	case "never":
		return pick.DescriptionNever, nil
	case "current":
		return pick.DescriptionCurrent, nil
	case "all":
		return pick.DescriptionAll, nil
	}
	return 0, fmt.Errorf("invalid --descriptions value %q (want never, current, or all)", s)
}

func parseNameWidth(s string) (pick.NameWidth, error) {
	switch s {
	case "auto":
		return pick.NameWidthAuto, nil
	case "never":
		return 0, nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 0 {
		return 0, fmt.Errorf("invalid --name-width value %q (want auto, never, or a non-negative number)", s)
	}
	return pick.NameWidth(n), nil
}
