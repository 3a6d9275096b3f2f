package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/prefs"
	"github.com/zhubert/manus/internal/theme"
)

// prefAliases maps the names accepted on the command line to store keys.
var prefAliases = map[string]string{
	"theme":           prefs.KeyTheme,
	"locale":          prefs.KeyLocale,
	"language":        prefs.KeyLocale,
	"notifications":   prefs.KeyNotifications,
	"auto-sync":       prefs.KeyAutoSync,
	prefs.KeyTheme:    prefs.KeyTheme,
	prefs.KeyLocale:   prefs.KeyLocale,
	prefs.KeyAutoSync: prefs.KeyAutoSync,
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change saved preferences",
	Long: `Shows the saved preferences. Use the set and reset subcommands to change
them. Unset preferences fall back to the terminal background and the device
language the next time the app starts.`,
	Args: cobra.NoArgs,
	RunE: runPrefsList,
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one saved preference",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsGet,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Save a preference",
	Long: `Saves a preference. Keys and accepted values:
  theme          light, dark
  locale         en, ar
  notifications  true, false
  auto-sync      true, false`,
	Args: cobra.ExactArgs(2),
	RunE: runPrefsSet,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset [key...]",
	Short: "Forget saved preferences (all of them when no key is given)",
	RunE:  runPrefsReset,
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
	rootCmd.AddCommand(prefsCmd)
}

// resolvePrefKey maps a command-line name to its store key.
func resolvePrefKey(name string) (string, error) {
	if key, ok := prefAliases[name]; ok {
		return key, nil
	}
	if key, ok := prefAliases[strings.ToLower(name)]; ok {
		return key, nil
	}
	names := make([]string, 0, len(prefAliases))
	for alias := range prefAliases {
		if alias == strings.ToLower(alias) {
			names = append(names, alias)
		}
	}
	sort.Strings(names)
	return "", fmt.Errorf("unknown preference %q (known: %s)", name, strings.Join(names, ", "))
}

// normalizePrefValue validates value for key and returns its stored form.
func normalizePrefValue(key, value string) (string, error) {
	value = strings.TrimSpace(value)
	switch key {
	case prefs.KeyTheme:
		t, ok := theme.Parse(strings.ToLower(value))
		if !ok {
			return "", fmt.Errorf("invalid theme %q (want light or dark)", value)
		}
		return string(t), nil
	case prefs.KeyLocale:
		l, ok := i18n.ParseLocale(strings.ToLower(value))
		if !ok {
			return "", fmt.Errorf("invalid locale %q (want en or ar)", value)
		}
		return string(l), nil
	case prefs.KeyNotifications, prefs.KeyAutoSync:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("invalid value %q for %s (want true or false)", value, key)
		}
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("unknown preference %q", key)
}

func runPrefsList(cmd *cobra.Command, args []string) error {
	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	rows := [][]string{{"KEY", "VALUE"}}
	for _, key := range prefs.Keys {
		value, ok, err := env.store.Get(cmd.Context(), key)
		if err != nil {
			return err
		}
		if !ok {
			value = "(unset)"
		}
		rows = append(rows, []string{key, value})
	}
	return writeTable(cmd.OutOrStdout(), rows, 0)
}

func runPrefsGet(cmd *cobra.Command, args []string) error {
	key, err := resolvePrefKey(args[0])
	if err != nil {
		return err
	}

	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	value, ok, err := env.store.Get(cmd.Context(), key)
	if err != nil {
		return err
	}
	if !ok {
		value = "(unset)"
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	key, err := resolvePrefKey(args[0])
	if err != nil {
		return err
	}
	value, err := normalizePrefValue(key, args[1])
	if err != nil {
		return err
	}

	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.store.Set(cmd.Context(), key, value); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}

func runPrefsReset(cmd *cobra.Command, args []string) error {
	keys := prefs.Keys
	if len(args) > 0 {
		keys = make([]string, 0, len(args))
		for _, name := range args {
			key, err := resolvePrefKey(name)
			if err != nil {
				return err
			}
			keys = append(keys, key)
		}
	}

	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	for _, key := range keys {
		if err := env.store.Delete(cmd.Context(), key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", key)
	}
	return nil
}
