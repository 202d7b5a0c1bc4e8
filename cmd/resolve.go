package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"embedplayer/internal/player"
	"embedplayer/internal/resolver"
)

var flagJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [play...]",
	Short: "Show the provider and media identifier of play references",
	Args:  cobra.MinimumNArgs(1),
	RunE:  resolveRun,
}

func init() {
	resolveCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "Output as JSON")
}

// resolution is one resolved play reference.
type resolution struct {
	Reference  string `json:"reference"`
	Provider   string `json:"provider,omitempty"`
	Pattern    string `json:"pattern,omitempty"`
	ID         string `json:"id,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Src        string `json:"src,omitempty"`
	Error      string `json:"error,omitempty"`
}

func resolveRun(cmd *cobra.Command, args []string) error {
	r, _, closer, err := newRenderer()
	if err != nil {
		return err
	}
	defer closer()

	page := player.NewPage()
	var results []resolution

	for _, ref := range resolver.Unique(args) {
		res := resolution{Reference: ref}

		p, err := r.Provider(player.Atts{Play: []string{ref}, Provider: flagProvider})
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		res.Provider = p.Name

		m, ok := page.Resolver(p).Resolve(ref, true)
		if !ok {
			res.Error = player.ErrNothingToPlay.Error()
			results = append(results, res)
			continue
		}
		debugf("%s matched %s/%s", ref, p.Name, m.Pattern)

		res.Pattern = m.Pattern
		res.ID = m.ID
		res.Identifier = m.Identifier
		res.Src = player.BuildSrc(p.SrcBase, m.Identifier, nil, p.SrcGlue(m.Pattern))
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, res := range results {
		if res.Error != "" {
			fmt.Fprintf(out, "%s  %s\n", res.Reference, styled(errorStyle, res.Error))
			continue
		}
		fmt.Fprintf(out, "%s  %s %s\n", res.Reference,
			styled(nameStyle, res.Provider+"/"+res.Pattern), res.Identifier)
		fmt.Fprintf(out, "  %s\n", styled(mutedStyle, res.Src))
	}
	return nil
}
