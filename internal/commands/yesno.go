package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var defaultNoFlag bool

var yesnoCmd = &cobra.Command{
	Use:   "yesno <prompt>",
	Short: "Ask a yes-or-no question",
	Long: `Yesno prints "yes" or "no" to stdout and exits 0; cancellation
exits 1 and prints nothing. "Yes" starts highlighted unless --default-no
is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			return err
		}
		yes, err := cfg.YesNo(args[0], !defaultNoFlag)
		if err != nil {
			return exitCanceled(err)
		}
		if yes {
			fmt.Fprintln(cmd.OutOrStdout(), "yes")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "no")
		}
		return nil
	},
}

func init() {
	yesnoCmd.Flags().BoolVar(&defaultNoFlag, "default-no", false, "highlight No first")
}
