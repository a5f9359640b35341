package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hy4ri/workout-tui/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a template config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return createConfigTemplate()
	},
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path := configPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := config.Template()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Set api.endpoint to your workouts backend")
	fmt.Println("  2. Optionally set host.enabled and fill in host.user and host.theme_params")
	fmt.Println("  3. Run 'workout-tui' to start")

	return nil
}
