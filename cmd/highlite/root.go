package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmarchant/highlite/highlight"
	"github.com/rmarchant/highlite/luarules"
	"github.com/rmarchant/highlite/presets"
	"github.com/rmarchant/highlite/rulecfg"
)

// builtins holds the preset rule sets under their CLI names.
var builtins = builtinRegistry()

func builtinRegistry() *rulecfg.Registry {
	r := rulecfg.NewRegistry()
	r.Register("markdown", presets.Markdown())
	r.Register("markdown-pretty", presets.MarkdownPretty())
	r.Register("url", presets.URL())
	r.Register("markdown+url", presets.Markdown().Append(presets.URL()))
	return r
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "highlite",
		Short:         "Rule-driven text highlighting",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(),
		newRulesCmd(),
		newEditCmd(),
	)
	return root
}

// ruleFlags is the rule-set selection shared by the subcommands.
type ruleFlags struct {
	preset   string
	ruleFile string
	ruleSet  string
	luaFile  string
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "markdown",
		"built-in preset: "+strings.Join(builtins.Names(), ", "))
	cmd.Flags().StringVar(&f.ruleFile, "rules", "",
		"TOML rule file (overrides --preset)")
	cmd.Flags().StringVar(&f.ruleSet, "ruleset", "",
		"rule set name within --rules (defaults to the only one)")
	cmd.Flags().StringVar(&f.luaFile, "lua", "",
		"Lua rule script (overrides --preset and --rules)")
}

// resolve builds the selected rule set. The returned cleanup releases
// any Lua state backing dynamic rules and may be nil.
func (f *ruleFlags) resolve() (highlight.RuleSet, func(), error) {
	if f.luaFile != "" {
		script, err := luarules.LoadFile(f.luaFile)
		if err != nil {
			return nil, nil, err
		}
		return script.Rules(), script.Close, nil
	}

	if f.ruleFile != "" {
		sets, err := rulecfg.Load(f.ruleFile)
		if err != nil {
			return nil, nil, err
		}
		if f.ruleSet != "" {
			rules, ok := sets[f.ruleSet]
			if !ok {
				return nil, nil, fmt.Errorf("rule file has no rule set %q", f.ruleSet)
			}
			return rules, nil, nil
		}
		if len(sets) != 1 {
			return nil, nil, fmt.Errorf("rule file defines %d rule sets; pick one with --ruleset", len(sets))
		}
		for _, rules := range sets {
			return rules, nil, nil
		}
	}

	rules, ok := builtins.Get(f.preset)
	if !ok {
		return nil, nil, fmt.Errorf("unknown preset %q (have %s)",
			f.preset, strings.Join(builtins.Names(), ", "))
	}
	return rules, nil, nil
}
