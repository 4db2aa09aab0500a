package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/pick"
)

var chooseCmd = &cobra.Command{
	Use:   "choose <prompt> [item...]",
	Short: "Pick one item and print its label",
	Long: `Choose runs one selection session and prints the chosen label to
stdout. Items use the shorthand "Label(Short): Description"; the short
form and description are optional, and items can also come from a
--config file. Cancellation exits with status 1 and prints nothing.

  answer=$(pick choose "Deploy to" "Staging(s)" "Production(p)") || exit`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var file *fileConfig
		if configFileFlag != "" {
			var err error
			if file, err = loadConfigFile(configFileFlag); err != nil {
				return err
			}
		}
		cfg, err := buildConfig(cmd, file)
		if err != nil {
			return err
		}
		opts, err := optionsFromArgs(args[1:], file)
		if err != nil {
			return err
		}
		label, err := cfg.Choose(args[0], opts)
		if err != nil {
			return exitCanceled(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), label)
		return nil
	},
}

var configFileFlag string

func init() {
	chooseCmd.Flags().StringVar(&configFileFlag, "config", "", "YAML file supplying items and display settings")
	chooseCmd.Flags().IntVar(&initialFlag, "initial", 0, "index of the item highlighted first")
}

var initialFlag int

// optionsFromArgs builds the selection state from positional item
// shorthands, appending items from the --config file when one is given.
func optionsFromArgs(args []string, file *fileConfig) (*pick.Options, error) {
	items := make([]pick.Item, 0, len(args))
	for _, a := range args {
		items = append(items, pick.ParseItem(a))
	}
	if file != nil {
		items = append(items, file.items()...)
	}
	return pick.NewOptions(initialFlag, items...)
}
