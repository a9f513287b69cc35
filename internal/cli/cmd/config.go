package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/docking/internal/application/usecase"
	"github.com/bnema/docking/internal/cli/styles"
	"github.com/bnema/docking/internal/infrastructure/config"
)

var (
	configForce      bool
	configSection    string
	configJSON       bool
	configJSONSchema bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location, write the defaults, or list every setting.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write config.toml with the default settings and its JSON schema.

An existing file is kept unless --force is given.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List configuration keys",
	Long: `List every configuration key with its type, default and description.

Examples:
  docking config schema --section dock
  docking config schema --json
  docking config schema --json-schema > docking.schema.json`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSection, "section", "s", "", "only show keys of this section")
	configSchemaCmd.Flags().BoolVar(&configJSON, "json", false, "print keys as JSON")
	configSchemaCmd.Flags().BoolVar(&configJSONSchema, "json-schema", false, "print the JSON schema of the config file")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	t := app.Theme

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Println(t.Subtle.Render(fmt.Sprintf("%s %s already exists (use --force to overwrite)", styles.IconInfo, path)))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Println(t.SuccessStyle.Render(fmt.Sprintf("%s wrote %s", styles.IconCheck, path)))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configJSONSchema {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	out, err := app.SchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}
	if len(out.Keys) == 0 {
		return fmt.Errorf("no configuration keys in section %q", configSection)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}

	fmt.Println(renderer.Render(out.Keys))
	return nil
}
