package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/manus/internal/app"
	"github.com/zhubert/manus/internal/clipboard"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/logger"
	"github.com/zhubert/manus/internal/theme"
)

var (
	configPath            string
	debugMode             bool
	themeFlag             string
	localeFlag            string
	prefillFlag           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "manus",
	Short: "Terminal client for the Manus assistant",
	Long: `Manus is a terminal client for a general purpose assistant.
It has four screens: a chat with the assistant, a list of running tasks,
a browsable catalog of capabilities and a profile with settings.`,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/manus/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Switch to a theme before starting (light or dark)")
	rootCmd.Flags().StringVar(&localeFlag, "locale", "", "Switch to a language before starting (en or ar)")
	rootCmd.Flags().StringVar(&prefillFlag, "prefill", "", "Open the chat with this text in the input box")
}

func initConfig() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("manus %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("manus %s\n", version)
}

// parseStartupFlags validates --theme and --locale before anything is opened.
func parseStartupFlags(themeName, localeName string) (theme.Theme, i18n.Locale, error) {
	var (
		t  theme.Theme
		l  i18n.Locale
		ok bool
	)
	if themeName != "" {
		if t, ok = theme.Parse(themeName); !ok {
			return "", "", fmt.Errorf("unknown theme %q (want light or dark)", themeName)
		}
	}
	if localeName != "" {
		if l, ok = i18n.ParseLocale(localeName); !ok {
			return "", "", fmt.Errorf("unknown locale %q (want en or ar)", localeName)
		}
	}
	return t, l, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	startTheme, startLocale, err := parseStartupFlags(themeFlag, localeFlag)
	if err != nil {
		return err
	}

	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.Close()

	// Flags behave like picking the value on the Profile screen
	if startTheme != "" {
		env.themes.SetTheme(cmd.Context(), startTheme)
	}
	if startLocale != "" {
		env.locale.SetLocale(cmd.Context(), startLocale)
	}

	// Copying still works over OSC 52 when the native clipboard is missing
	if err := clipboard.Init(); err != nil {
		logger.WithComponent("cmd").Warn("native clipboard unavailable", "error", err)
	}

	// Create and run the app
	m := app.New(app.Options{
		Config:  env.cfg,
		Store:   env.store,
		Theme:   env.themes,
		Locale:  env.locale,
		Version: version,
		Prefill: prefillFlag,
	})
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
