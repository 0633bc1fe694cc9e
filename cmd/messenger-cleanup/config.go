package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samadhiBot/messenger-cleanup/configs"
	"github.com/samadhiBot/messenger-cleanup/pkg/fs"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func createConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(createConfigInitCmd(), createConfigShowCmd())

	return configCmd
}

// defaultConfigPath returns the config file location used when --config is not set.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".messenger-cleanup", "config.yaml")
}

func createConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fsInstance := fs.NewFS()

			path := configPath
			if path == "" {
				path = defaultConfigPath()
			}

			exists, err := fsInstance.Exists(path)
			if err != nil {
				return fmt.Errorf("failed to check config path: %w", err)
			}
			if exists {
				return fmt.Errorf("config file already exists at %s", path)
			}

			if err := fsInstance.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Printf("Created config file at %s\n", path)
			return nil
		},
	}
}

func createConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}

			fmt.Print(string(data))
			return nil
		},
	}
}
