package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

const consolePrompt = "shipfix> "

// newConsoleCommand runs an interactive session. Each line is tokenized like a
// shell command and executed against a fresh command tree that shares this
// process's session, so vessels created on one line are visible on the next.
func newConsoleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open an interactive fleet session",
		Long: `Open an interactive session. Commands are the same as on the command
line without the leading "shipfix". Type "help" for the command list and
"exit" to leave.

Example:
  shipfix> fleet list --query nanina
  shipfix> fleet remove bq-2
  Remove vessel Nanina (ARG-MDP-1120)? [y/N] y`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			reader := a.lineReader(cmd)
			fmt.Fprintln(out, `ShipFix console. Type "help" for commands, "exit" to quit.`)

			for {
				fmt.Fprint(out, consolePrompt)

				line, readErr := reader.ReadString('\n')
				if readErr != nil && !errors.Is(readErr, io.EOF) {
					return fmt.Errorf("failed to read input: %w", readErr)
				}

				if quit := a.runConsoleLine(cmd, line); quit {
					return nil
				}
				if errors.Is(readErr, io.EOF) {
					fmt.Fprintln(out)
					return nil
				}
			}
		},
	}
}

// runConsoleLine executes one console line and reports whether the console should exit
func (a *app) runConsoleLine(cmd *cobra.Command, line string) bool {
	words, err := shellquote.Split(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return false
	}
	if len(words) == 0 {
		return false
	}

	if words[0] == "exit" || words[0] == "quit" {
		return true
	}

	// A copy keeps flag values parsed on this line out of the next one
	consoleApp := *a
	consoleApp.inConsole = true
	tree := newRootCommand(&consoleApp)
	tree.SetArgs(words)
	tree.SetIn(a.input)
	tree.SetOut(cmd.OutOrStdout())
	tree.SetErr(cmd.ErrOrStderr())

	if err := tree.ExecuteContext(cmd.Context()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", describeError(err))
	}
	return false
}
