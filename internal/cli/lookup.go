package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hightemp/codeconv/internal/batch"
	"github.com/hightemp/codeconv/internal/output"
)

// runLookup answers a single query from args, or one query per line
// from a piped stdin when no args are given.
func (a *app) runLookup(cmd *cobra.Command, args []string, resolve batch.Resolver) error {
	if len(args) > 0 {
		result := resolve(strings.Join(args, " "))
		if a.cfg.JSONOutput {
			jsonStr, err := result.FormatJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Text())
		return nil
	}

	// stdin is a terminal, show help
	if isTerminal(cmd) {
		return cmd.Help()
	}

	processor := batch.NewProcessor(resolve)
	return processor.ProcessInput(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.JSONOutput)
}

func (a *app) printCount(cmd *cobra.Command, table string, n int) error {
	c := &output.Count{Table: table, Count: n}
	if a.cfg.JSONOutput {
		jsonStr, err := c.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), c.FormatText())
	return nil
}

// isTerminal checks if the command reads from an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
