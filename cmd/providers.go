package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"embedplayer/internal/provider"
)

var flagVerbose bool

var providersCmd = &cobra.Command{
	Use:   "providers [name]",
	Short: "List providers, their tags and default preferences",
	Args:  cobra.MaximumNArgs(1),
	RunE:  providersRun,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "embedplayer %s\n", Version)
	},
}

func init() {
	providersCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show tag attributes and defaults")
}

func providersRun(cmd *cobra.Command, args []string) error {
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	names := reg.Names()
	verbose := flagVerbose
	if len(args) == 1 {
		p, err := reg.Get(args[0])
		if err != nil {
			return err
		}
		names = []string{p.Name}
		verbose = true
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		p, _ := reg.Get(name)

		marker := ""
		if p.Name == strings.ToLower(cfg.Provider) {
			marker = styled(mutedStyle, " (default)")
		}
		fmt.Fprintf(out, "%s  %s %s%s\n", styled(nameStyle, fmt.Sprintf("%-12s", p.Name)),
			p.Title, styled(mutedStyle, "["+p.MediaType.String()+"]"), marker)

		if verbose {
			printProvider(cmd, p)
		}
	}
	return nil
}

func printProvider(cmd *cobra.Command, p *provider.Provider) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s <txp:%s_%s play=\"...\" />\n", styled(titleStyle, "tag"), cfg.Plugin, p.Name)
	if p.Script != "" {
		fmt.Fprintf(out, "  %s %s\n", styled(titleStyle, "script"), p.Script)
	}

	fmt.Fprintf(out, "  %s\n", styled(titleStyle, "patterns"))
	for _, rule := range p.Patterns {
		fmt.Fprintf(out, "    %-10s %s\n", rule.Name, styled(mutedStyle, rule.Scheme.String()))
	}

	defaults := p.Defaults()
	fmt.Fprintf(out, "  %s\n", styled(titleStyle, "attributes"))
	for i, att := range p.TagAtts() {
		key := att
		if i >= len(provider.DimNames) {
			key = p.Params[i-len(provider.DimNames)].Name
		}
		fmt.Fprintf(out, "    %-22s %s\n", att, styled(mutedStyle, defaults[key]))
	}
}
