package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/neurogen/internal/config"
)

// Config command flags.
var (
	configGlobal bool
	configForce  bool
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and create neurogen configuration",
	Long: `View and create neurogen configuration.

Neurogen reads .neurogen.yaml (or .neurogen.toml) from the current directory.
A global config at ~/.config/neurogen/config.yaml provides defaults.
Repo-level settings override global settings, and flags override both.`,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value by dot-notation key path.

Examples:
  neurogen config get scenario.dose
  neurogen config get scenario
  neurogen config get --global output_format`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List all configuration values with their source annotation.

Shows every set configuration value, annotated with whether it comes
from the repo config or the global config. Repo values override global values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

// configInitCmd writes a config file populated with the built-in defaults.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write .neurogen.yaml in the current directory (or the global config with
--global) holding every setting at its built-in default.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/neurogen/config.yaml)")
	configInitCmd.Flags().BoolVar(&configGlobal, "global", false, "write the global config (~/.config/neurogen/config.yaml)")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = loadFileConfig()
	}
	if err != nil {
		return exitError(ExitInvalidArgs, "neurogen: %v", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "neurogen: %v", err)
	}
	return printValue(cmd, val)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return exitError(ExitInvalidArgs, "neurogen: loading global config: %v", err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return exitError(ExitInvalidArgs, "neurogen: loading repo config: %v", err)
	}

	globalMap, err := config.Flatten(globalCfg)
	if err != nil {
		return exitError(ExitInternal, "neurogen: %v", err)
	}
	repoMap, err := config.Flatten(repoCfg)
	if err != nil {
		return exitError(ExitInternal, "neurogen: %v", err)
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range globalMap {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range repoMap {
		seen[k] = entry{value: v, source: "repo"}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'neurogen config init' to create a config with the defaults.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	repoColor := color.New(color.FgGreen)
	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, formatSource(e.source, globalColor, repoColor))
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	target := filepath.Join(".", config.FileName)
	if configGlobal {
		target = config.GlobalConfigPath()
	}

	if _, err := cmdFS.Stat(target); err == nil && !configForce {
		return exitError(ExitInvalidArgs, "neurogen: %s already exists (use --force to overwrite)", target)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return exitError(ExitInternal, "neurogen: checking %s: %v", target, err)
	}

	if err := config.WriteFile(target, config.Defaults().Config()); err != nil {
		return exitError(ExitRenderFailure, "neurogen: %v", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
	return nil
}

// printValue outputs a value: scalars as plain text, sections as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

// formatSource returns a colorized source annotation.
func formatSource(source string, globalColor, repoColor *color.Color) string {
	switch source {
	case "global":
		return globalColor.Sprint("(global)")
	case "repo":
		return repoColor.Sprint("(repo)")
	default:
		return fmt.Sprintf("(%s)", source)
	}
}
