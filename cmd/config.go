package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rnwolfe/prio/internal/config"
	"github.com/rnwolfe/prio/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configListCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Run "prio config list" for the keys.

Scoring weights must still sum to 1 after the change.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Reset a configuration value to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration keys",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (valid keys: %s)",
		key, strings.Join(config.ValidKeyNames(), ", "))
}

func saveConfig(cfg *config.Config) error {
	var err error
	if flagConfig != "" {
		err = config.SaveFile(flagConfig, cfg)
	} else {
		err = config.Save(cfg)
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// configExists reports whether the active config file is on disk.
func configExists() bool {
	if flagConfig == "" {
		return config.Initialized()
	}
	_, err := os.Stat(flagConfig)
	return err == nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w, werr := weightsFromConfig(cfg)

	ui.Puts("")
	ui.Puts(ui.Title.Render("  Configuration"))
	ui.Puts("")
	if werr != nil {
		ui.Warn(werr.Error())
	} else {
		ui.Kv("Weights", fmt.Sprintf("urgency %g · importance %g · deadline %g · effort %g",
			w.Urgency, w.Importance, w.Deadline, w.Effort))
	}
	ui.Kv("Input", cfg.Files.Input)
	ui.Kv("Output", cfg.Files.Output)
	ui.Kv("Name width", fmt.Sprintf("%d", cfg.Display.NameWidth))
	ui.Kv("Color", fmt.Sprintf("%t", cfg.Display.ColorEnabled()))
	ui.Puts("")

	path := configPath()
	if !configExists() {
		ui.Kv("Config", path+ui.Muted.Render(" (not created, using defaults)"))
		ui.Tip(fmt.Sprintf("%s writes a starter file.", ui.Accent.Render("prio config init")))
	} else {
		ui.Kv("Config", path)
		ui.Tip(fmt.Sprintf("Edit directly: %s", ui.Accent.Render("$EDITOR "+path)))
	}
	ui.Puts("")
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	ui.Puts(configPath())
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := configPath()
	_, err := os.Stat(path)
	switch {
	case err == nil && !configInitForce:
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := saveConfig(config.Default()); err != nil {
		return err
	}
	ui.Ok("Wrote " + path)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	entry, ok := config.LookupKey(key)
	if !ok {
		return unknownKeyError(key)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := entry.Set(cfg, value); err != nil {
		return err
	}
	if strings.HasPrefix(key, "scoring.") {
		if _, err := weightsFromConfig(cfg); err != nil {
			// Weights are set one at a time; an intermediate mismatch is allowed.
			ui.Warn(err.Error())
		}
	}
	if err := saveConfig(cfg); err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("%s = %s", key, entry.Get(cfg)))
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	key := args[0]

	entry, ok := config.LookupKey(key)
	if !ok {
		return unknownKeyError(key)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ui.Puts(entry.Get(cfg))
	return nil
}

func runConfigUnset(_ *cobra.Command, args []string) error {
	key := args[0]

	entry, ok := config.LookupKey(key)
	if !ok {
		return unknownKeyError(key)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	entry.Unset(cfg)
	if err := saveConfig(cfg); err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("%s reset to %s", key, entry.DefaultStr))
	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ui.Puts("")
	for _, name := range config.ValidKeyNames() {
		entry, _ := config.LookupKey(name)
		ui.Puts(fmt.Sprintf("  %s %s %s",
			ui.KeyStyle.Render(fmt.Sprintf("%-26s", name)),
			ui.ValueStyle.Render(fmt.Sprintf("%-18s", entry.Get(cfg))),
			ui.Muted.Render(fmt.Sprintf("%s (%s, default %s)", entry.Desc, entry.Type, entry.DefaultStr))))
	}
	ui.Puts("")
	return nil
}
