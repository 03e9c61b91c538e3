package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Window size constants
const (
	defaultWidth  = 1024
	defaultHeight = 768
	minWidth      = 400
	minHeight     = 300
)

// Sort method constants
const (
	SortNatural    = 0 // Natural sort order (e.g., file1, file2, file10)
	SortSimple     = 1 // Simple string sort (lexicographical)
	SortEntryOrder = 2 // Maintain original order (no sort)
)

const (
	defaultBatchSize      = 20
	defaultCacheSize      = 16
	defaultPreloadCount   = 2
	defaultTitleBarHeight = 36
	defaultFontSize       = 20.0
)

// validateKeybindings checks key formats and rejects keys bound to two actions
func validateKeybindings(keybindings map[string][]string) error {
	keyToAction := make(map[string]string)
	validKeys := getValidKeyNames()

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}
			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string such as "Shift+KeyN"
func validateKeyString(keyStr string, validKeys map[string]bool) error {
	parts := strings.Split(keyStr, "+")
	keyName := parts[len(parts)-1]
	if keyName == "" {
		return fmt.Errorf("empty key string")
	}
	if !validKeys[keyName] {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	for _, modifier := range parts[:len(parts)-1] {
		switch strings.ToLower(modifier) {
		case "shift", "ctrl", "alt":
		default:
			return fmt.Errorf("unknown modifier: %s", modifier)
		}
	}

	return nil
}

// getValidKeyNames returns the set of key names the keybinding manager understands
func getValidKeyNames() map[string]bool {
	valid := make(map[string]bool)
	for name := range getKeyMapping() {
		valid[name] = true
	}
	return valid
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

type Config struct {
	WindowWidth    int                 `json:"window_width" yaml:"window_width"`
	WindowHeight   int                 `json:"window_height" yaml:"window_height"`
	SortMethod     int                 `json:"sort_method" yaml:"sort_method"`
	BatchSize      int                 `json:"batch_size" yaml:"batch_size"`
	CacheSize      int                 `json:"cache_size" yaml:"cache_size"`
	PreloadEnabled bool                `json:"preload_enabled" yaml:"preload_enabled"`
	PreloadCount   int                 `json:"preload_count" yaml:"preload_count"`
	TitleBarHeight int                 `json:"title_bar_height" yaml:"title_bar_height"`
	FontSize       float64             `json:"font_size" yaml:"font_size"`
	Keybindings    map[string][]string `json:"keybindings" yaml:"keybindings"`
	Mousebindings  map[string][]string `json:"mousebindings" yaml:"mousebindings"`
	Mouse          MouseSettings       `json:"mouse" yaml:"mouse"`
}

func defaultConfig() Config {
	return Config{
		WindowWidth:    defaultWidth,
		WindowHeight:   defaultHeight,
		SortMethod:     SortNatural,
		BatchSize:      defaultBatchSize,
		CacheSize:      defaultCacheSize,
		PreloadEnabled: true,
		PreloadCount:   defaultPreloadCount,
		TitleBarHeight: defaultTitleBarHeight,
		FontSize:       defaultFontSize,
		Keybindings:    GetDefaultKeybindings(),
		Mousebindings:  GetDefaultMousebindings(),
		Mouse:          GetDefaultMouseSettings(),
	}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "lightbox.json"
	}
	return filepath.Join(homeDir, ".lightbox.json")
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func unmarshalConfig(path string, data []byte, config *Config) error {
	if isYAMLPath(path) {
		return yaml.Unmarshal(data, config)
	}
	return json.Unmarshal(data, config)
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := unmarshalConfig(configPath, data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	if config.SortMethod < SortNatural || config.SortMethod > SortEntryOrder {
		config.SortMethod = SortNatural
	}

	// Batch size (minimum 2, maximum 500)
	if config.BatchSize < minBatchSize {
		config.BatchSize = defaultBatchSize
	} else if config.BatchSize > 500 {
		config.BatchSize = 500
	}

	// Cache size (minimum 1, maximum 64)
	if config.CacheSize < 1 {
		config.CacheSize = defaultCacheSize
	} else if config.CacheSize > 64 {
		config.CacheSize = 64
	}

	// Preload count (minimum 1, maximum 8)
	if config.PreloadCount < 1 {
		config.PreloadCount = defaultPreloadCount
	} else if config.PreloadCount > 8 {
		config.PreloadCount = 8
	}

	if config.TitleBarHeight < 0 || config.TitleBarHeight > config.WindowHeight/2 {
		config.TitleBarHeight = defaultTitleBarHeight
	}

	// Minimum 12px for readability
	if config.FontSize < 12.0 {
		config.FontSize = defaultFontSize
	}

	if config.Mouse.DoubleClickTime <= 0 {
		config.Mouse.DoubleClickTime = GetDefaultMouseSettings().DoubleClickTime
	}

	config.Keybindings = fillBindings(config.Keybindings, GetDefaultKeybindings())
	if err := validateKeybindings(config.Keybindings); err != nil {
		log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
		config.Keybindings = GetDefaultKeybindings()
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
	}
	config.Mousebindings = fillBindings(config.Mousebindings, GetDefaultMousebindings())

	result.Config = config
	return result
}

// fillBindings adds defaults for actions missing from bindings
func fillBindings(bindings, defaults map[string][]string) map[string][]string {
	if bindings == nil {
		return defaults
	}
	for action, keys := range defaults {
		if _, exists := bindings[action]; !exists {
			bindings[action] = keys
		}
	}
	return bindings
}

func saveConfigToPath(config Config, configPath string) error {
	if config.WindowWidth < minWidth || config.WindowHeight < minHeight {
		return fmt.Errorf("not saving config with invalid window size: %dx%d",
			config.WindowWidth, config.WindowHeight)
	}

	var data []byte
	var err error
	if isYAMLPath(configPath) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("save config to %s: %w", configPath, err)
	}
	return nil
}
