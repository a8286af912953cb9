package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmarchant/highlite/editor"
	"github.com/rmarchant/highlite/host/ansihost"
)

func newRenderCmd() *cobra.Command {
	var flags ruleFlags

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a file (or stdin) as styled ANSI text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			rules, cleanup, err := flags.resolve()
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}

			host := ansihost.New(text)
			binding := editor.NewBinding(host, rules)
			defer binding.Close()

			fmt.Fprintln(cmd.OutOrStdout(), host.Render())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// readInput returns the file named by args, or stdin when absent.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
