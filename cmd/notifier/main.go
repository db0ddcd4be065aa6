package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dennisklein/notifier/internal/notify"
)

func newRootCmd(program string, fs afero.Fs) *cobra.Command {
	appender := &notify.Appender{Fs: fs}

	return &cobra.Command{
		Use:   "notifier <filename> <hash>",
		Short: "Append a notification token to a file",
		Long: `notifier appends <hash> to <filename>, creating the file if needed.
No delimiter is added between successive tokens.`,
		// Tokens are opaque and may start with a dash.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := notify.ParseArgs(program, args)
			if err != nil {
				return err
			}

			return appender.Run(inv)
		},
	}
}

// run executes cmd with args, reports any error on its error stream and
// returns the exit status.
func run(cmd *cobra.Command, args []string) int {
	var err error

	// Cobra always installs its hidden completion command, which would claim
	// a filename with one of these names.
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		err = cmd.RunE(cmd, args)
	} else {
		cmd.SetArgs(args)
		err = cmd.Execute()
	}

	if err != nil {
		cmd.PrintErrln(err)
	}

	return notify.ExitCode(err)
}

func Execute() {
	os.Exit(run(newRootCmd(os.Args[0], afero.NewOsFs()), os.Args[1:]))
}

func main() {
	Execute()
}
