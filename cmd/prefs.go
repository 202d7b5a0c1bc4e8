package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"embedplayer/internal/prefs"
	"embedplayer/internal/provider"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage player preferences stored in the SQLite database",
}

var prefsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the default preferences of every provider",
	Args:  cobra.NoArgs,
	RunE:  prefsInitRun,
}

var prefsListCmd = &cobra.Command{
	Use:   "list [provider]",
	Short: "List installed preferences",
	Args:  cobra.MaximumNArgs(1),
	RunE:  prefsListRun,
}

var prefsGetCmd = &cobra.Command{
	Use:   "get PROVIDER KEY",
	Short: "Print the effective value of a preference",
	Args:  cobra.ExactArgs(2),
	RunE:  prefsGetRun,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set PROVIDER KEY VALUE",
	Short: "Change an installed preference",
	Args:  cobra.ExactArgs(3),
	RunE:  prefsSetRun,
}

func init() {
	prefsCmd.AddCommand(prefsInitCmd)
	prefsCmd.AddCommand(prefsListCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}

// openDB opens the preference database, creating it if needed.
func openDB() (*prefs.SQLite, error) {
	path, err := cfg.PrefsPath()
	if err != nil {
		return nil, err
	}
	debugf("preferences: %s", path)
	return prefs.Open(path)
}

func registryProviders(reg *provider.Registry) []*provider.Provider {
	var out []*provider.Provider
	for _, name := range reg.Names() {
		p, _ := reg.Get(name)
		out = append(out, p)
	}
	return out
}

func prefsInitRun(cmd *cobra.Command, args []string) error {
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	added, err := db.Seed(prefs.IniPrefs(cfg.Plugin, registryProviders(reg)))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Installed %d preferences.\n", added)
	return nil
}

func prefsListRun(cmd *cobra.Command, args []string) error {
	event := ""
	if len(args) == 1 {
		reg, err := cfg.Registry()
		if err != nil {
			return err
		}
		p, err := reg.Get(args[0])
		if err != nil {
			return err
		}
		event = prefs.Event(cfg.Plugin, p.Name)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := db.List(event)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No preferences installed. Run 'embedplayer prefs init'.")
		return nil
	}

	out := cmd.OutOrStdout()
	current := ""
	for _, p := range list {
		if p.Event != current {
			current = p.Event
			fmt.Fprintln(out, styled(titleStyle, current))
		}
		key := strings.TrimPrefix(p.Name, p.Event+"_")
		fmt.Fprintf(out, "  %-22s %s %s\n", styled(nameStyle, key), p.Value, styled(mutedStyle, "("+p.HTML+")"))
	}
	return nil
}

func prefsGetRun(cmd *cobra.Command, args []string) error {
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	store, closer, err := openStore()
	if err != nil {
		return err
	}
	defer closer()

	val, err := prefs.NewCache(store, cfg.Plugin, reg).Get(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func prefsSetRun(cmd *cobra.Command, args []string) error {
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	p, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	key := strings.ToLower(args[1])
	if err := checkPref(p, key, args[2]); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Set(prefs.Event(cfg.Plugin, p.Name), key, args[2]); err != nil {
		return err
	}
	debugf("set %s %s=%s", p.Name, key, args[2])
	return nil
}

// checkPref rejects unknown keys and values outside a parameter's valid list.
func checkPref(p *provider.Provider, key, val string) error {
	if _, ok := p.Defaults()[key]; !ok {
		return fmt.Errorf("%s has no preference %q", p.Name, key)
	}
	if spec, ok := p.Param(key); ok && len(spec.Valid) > 0 && !slices.Contains(spec.Valid, val) {
		return fmt.Errorf("invalid value %q for %s (valid: %s)", val, key, strings.Join(spec.Valid, ", "))
	}
	return nil
}
