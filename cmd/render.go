package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"embedplayer/internal/player"
)

var (
	flagWidth      string
	flagHeight     string
	flagRatio      string
	flagResponsive string
	flagLabel      string
	flagLabelTag   string
	flagWrapTag    string
	flagClass      string
	flagParams     []string
)

var renderCmd = &cobra.Command{
	Use:   "render [play...]",
	Short: "Render the player markup of media URLs or IDs",
	Example: `  embedplayer render https://vimeo.com/76979871
  embedplayer render -p youtube ABC123 --responsive true --param autoplay=1`,
	Args: cobra.MinimumNArgs(1),
	RunE: renderRun,
}

func init() {
	renderCmd.Flags().StringVar(&flagWidth, "width", "", "Player width")
	renderCmd.Flags().StringVar(&flagHeight, "height", "", "Player height")
	renderCmd.Flags().StringVar(&flagRatio, "ratio", "", "Aspect ratio, e.g. 16:9")
	renderCmd.Flags().StringVar(&flagResponsive, "responsive", "", "Responsive sizing: true | false")
	renderCmd.Flags().StringVar(&flagLabel, "label", "", "Label shown before the player")
	renderCmd.Flags().StringVar(&flagLabelTag, "labeltag", "", "Element wrapping the label")
	renderCmd.Flags().StringVar(&flagWrapTag, "wraptag", "", "Element wrapping the player")
	renderCmd.Flags().StringVar(&flagClass, "class", "", "Class of the wrapping element")
	renderCmd.Flags().StringArrayVar(&flagParams, "param", nil, "Player parameter as key=value (repeatable)")
}

func renderRun(cmd *cobra.Command, args []string) error {
	attrs, err := renderAttrs(args)
	if err != nil {
		return err
	}

	r, _, closer, err := newRenderer()
	if err != nil {
		return err
	}
	defer closer()

	page := player.NewPage()
	out, err := r.Render(page, player.ParseAtts(attrs))
	if err != nil {
		return fmt.Errorf("rendering player: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), page.Inject(out))
	return nil
}

// renderAttrs turns the render flags into tag attributes.
func renderAttrs(plays []string) ([]player.Attr, error) {
	attrs := []player.Attr{{Name: "play", Value: strings.Join(plays, ",")}}

	add := func(name, value string) {
		if value != "" {
			attrs = append(attrs, player.Attr{Name: name, Value: value})
		}
	}
	add("provider", flagProvider)
	add("width", flagWidth)
	add("height", flagHeight)
	add("ratio", flagRatio)
	add("responsive", flagResponsive)
	add("label", flagLabel)
	add("labeltag", flagLabelTag)
	add("wraptag", flagWrapTag)
	add("class", flagClass)

	for _, p := range flagParams {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q (want key=value)", p)
		}
		if player.IsTagAtt(key) {
			return nil, fmt.Errorf("--param %s: not a player parameter", key)
		}
		attrs = append(attrs, player.Attr{Name: key, Value: value})
	}
	return attrs, nil
}
