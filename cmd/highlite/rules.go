package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rmarchant/highlite/luarules"
	"github.com/rmarchant/highlite/rulecfg"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect rule files",
	}
	cmd.AddCommand(newRulesCheckCmd(), newRulesListCmd())
	return cmd
}

func newRulesCheckCmd() *cobra.Command {
	var luaScript bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate rule files, compiling every pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed bool
			for _, path := range args {
				if err := checkFile(path, luaScript); err != nil {
					failed = true
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&luaScript, "lua", false, "treat files as Lua rule scripts")
	return cmd
}

func checkFile(path string, luaScript bool) error {
	if luaScript {
		script, err := luarules.LoadFile(path)
		if err != nil {
			return err
		}
		script.Close()
		return nil
	}
	_, err := rulecfg.Load(path)
	return err
}

func newRulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List the rule sets a TOML rule file defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := rulecfg.Load(args[0])
			if err != nil {
				return err
			}

			names := make([]string, 0, len(sets))
			for name := range sets {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d rules\n", name, len(sets[name]))
			}
			return nil
		},
	}
}
