package main

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	configFlag    string
	sortFlag      string
	batchSizeFlag int
	startFlag     string

	rootCmd = &cobra.Command{
		Use:   "lightbox [paths...]",
		Short: "Browse images, directories and archives in a lightbox gallery",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initDebug()
			if err := InitGraphics(); err != nil {
				return fmt.Errorf("failed to initialize graphics: %w", err)
			}

			configPath := resolveConfigPath()
			configStatus := loadConfigFromPath(configPath)
			if err := applyFlags(cmd, &configStatus.Config); err != nil {
				return err
			}
			config := configStatus.Config

			paths, err := collectImages(args, config.SortMethod)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no image files specified")
			}

			g, err := newGame(configStatus, configPath, paths, indexOfPath(paths, startFlag))
			if err != nil {
				return err
			}
			defer g.Shutdown()

			ebiten.SetWindowTitle("lightbox")
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			return ebiten.RunGame(g)
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration and where it is read from",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := resolveConfigPath()
			result := loadConfigFromPath(configPath)
			configJSON, err := json.MarshalIndent(result.Config, "", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("Config: %s (%s)\n%s\n", configPath, result.Status, configJSON)
			for _, w := range result.Warnings {
				fmt.Printf("warning: %s\n", w)
			}
			return nil
		},
	}

	keysCmd = &cobra.Command{
		Use:   "keys",
		Short: "List actions with their key and mouse bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigFromPath(resolveConfigPath()).Config
			descriptions := GetActionDescriptions()

			actions := make([]string, 0, len(descriptions))
			for action := range descriptions {
				actions = append(actions, action)
			}
			sort.Strings(actions)

			keys := NewKeybindingManager(config.Keybindings).GetKeybindings()
			mouse := NewMousebindingManager(config.Mousebindings, config.Mouse).GetMousebindings()
			for _, action := range actions {
				bindings := append([]string{}, keys[action]...)
				bindings = append(bindings, mouse[action]...)
				fmt.Printf("%-10s %-50s %s\n", action, descriptions[action], strings.Join(bindings, ", "))
			}
			return nil
		},
	}
)

func resolveConfigPath() string {
	if configFlag != "" {
		return configFlag
	}
	return getConfigPath()
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cmd *cobra.Command, config *Config) error {
	if cmd.Flags().Changed("sort") {
		method, err := ParseSortMethod(sortFlag)
		if err != nil {
			return err
		}
		config.SortMethod = method
	}
	if cmd.Flags().Changed("batch-size") {
		if batchSizeFlag < minBatchSize {
			return fmt.Errorf("invalid batch size %d (minimum %d)", batchSizeFlag, minBatchSize)
		}
		config.BatchSize = batchSizeFlag
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Config file (.json, .yaml or .yml; default ~/.lightbox.json)")
	rootCmd.Flags().StringVarP(&sortFlag, "sort", "s", "natural",
		"Sort order of directory and archive entries: natural, simple or entry")
	rootCmd.Flags().IntVarP(&batchSizeFlag, "batch-size", "b", defaultBatchSize,
		"Number of slides loaded into the gallery at a time")
	rootCmd.Flags().StringVar(&startFlag, "start", "",
		"Path of the image the gallery starts on")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
