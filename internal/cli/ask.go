package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <file|url> <question...>",
	Short: "Answer one question and exit",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, closeLog, err := newLogger(currentConfig, io.Discard)
		if err != nil {
			return err
		}
		defer closeLog()

		svc, err := newService(currentConfig, log)
		if err != nil {
			return err
		}
		if _, err := svc.LoadFrom(cmd.Context(), newProvider(currentConfig), args[0]); err != nil {
			return err
		}
		ans, err := svc.Ask(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Text)
		return err
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
