package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmarchant/highlite/editor"
	"github.com/rmarchant/highlite/highlight"
	"github.com/rmarchant/highlite/host/tcellhost"
	"github.com/rmarchant/highlite/rulecfg"
)

func newEditCmd() *cobra.Command {
	var flags ruleFlags
	var watch bool

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit text in the terminal with live highlighting",
		Long: `Edit opens a minimal terminal editor whose content is restyled on
every keystroke. With --watch and --rules, edits to the rule file are
picked up live. Quit with Esc or Ctrl-C; the buffer is not saved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("reading %s: %w", args[0], err)
				}
				text = string(data)
			}

			if watch && flags.ruleFile == "" {
				return fmt.Errorf("--watch needs --rules")
			}

			rules, cleanup, err := flags.resolve()
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}

			host, err := tcellhost.New()
			if err != nil {
				return fmt.Errorf("opening terminal: %w", err)
			}
			defer host.Close()

			binding := editor.NewBinding(host, rules)
			defer binding.Close()
			host.SetText(text)

			if watch {
				watcher, err := rulecfg.Watch(flags.ruleFile, func(sets map[string]highlight.RuleSet) {
					// Marshal onto the event thread; SetRules restyles.
					host.Post(func() {
						if rs, ok := pickSet(sets, flags.ruleSet); ok {
							binding.SetRules(rs)
						}
					})
				})
				if err != nil {
					return err
				}
				defer watcher.Close()
			}

			host.Run()
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&watch, "watch", false, "reload --rules when the file changes")
	return cmd
}

// pickSet selects the named rule set, or the only one when name is
// empty.
func pickSet(sets map[string]highlight.RuleSet, name string) (highlight.RuleSet, bool) {
	if name != "" {
		rs, ok := sets[name]
		return rs, ok
	}
	if len(sets) == 1 {
		for _, rs := range sets {
			return rs, true
		}
	}
	return nil, false
}
