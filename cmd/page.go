package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/html"

	"embedplayer/internal/tag"
)

var (
	flagOut    string
	flagMinify bool
)

var pageCmd = &cobra.Command{
	Use:   "page FILE",
	Short: "Expand the player tags of a page template",
	Long: `Expands <txp:PLUGIN .../>, <txp:PLUGIN_PROVIDER .../> and
<txp:PLUGIN_if ...>...<txp:else />...</txp:PLUGIN_if> tags in FILE and
injects the provider scripts before </body>. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: pageRun,
}

func init() {
	pageCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write the page to a file instead of stdout")
	pageCmd.Flags().BoolVarP(&flagMinify, "minify", "m", false, "Minify the resulting HTML")
}

func pageRun(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	r, _, closer, err := newRenderer()
	if err != nil {
		return err
	}
	defer closer()

	out := tag.New(r, cfg.Plugin, logger).Process(string(data))

	if flagMinify {
		m := minify.New()
		m.AddFunc("text/html", html.Minify)
		out, err = m.String("text/html", out)
		if err != nil {
			return fmt.Errorf("minifying page: %w", err)
		}
	}

	if flagOut == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	debugf("writing %s", flagOut)
	if err := os.WriteFile(flagOut, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}
