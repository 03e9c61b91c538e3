package main

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyCombination represents a key with optional modifiers
type KeyCombination struct {
	Key   ebiten.Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

// KeybindingManager maps configured key strings onto actions
type KeybindingManager struct {
	keybindings  map[string][]string
	combinations map[string][]KeyCombination
}

// NewKeybindingManager parses keybindings once; unparsable entries are skipped
func NewKeybindingManager(keybindings map[string][]string) *KeybindingManager {
	km := &KeybindingManager{
		keybindings:  keybindings,
		combinations: make(map[string][]KeyCombination),
	}
	mapping := getKeyMapping()
	for action, keys := range keybindings {
		for _, keyStr := range keys {
			combination, ok := parseKeyString(keyStr, mapping)
			if !ok {
				log.Printf("Warning: Ignoring key '%s' for action '%s'", keyStr, action)
				continue
			}
			km.combinations[action] = append(km.combinations[action], combination)
		}
	}
	return km
}

// getKeyMapping returns a mapping from string keys to Ebiten keys
func getKeyMapping() map[string]ebiten.Key {
	mapping := map[string]ebiten.Key{
		"Space":       ebiten.KeySpace,
		"Backspace":   ebiten.KeyBackspace,
		"Enter":       ebiten.KeyEnter,
		"Escape":      ebiten.KeyEscape,
		"Tab":         ebiten.KeyTab,
		"Home":        ebiten.KeyHome,
		"End":         ebiten.KeyEnd,
		"PageUp":      ebiten.KeyPageUp,
		"PageDown":    ebiten.KeyPageDown,
		"ArrowUp":     ebiten.KeyArrowUp,
		"ArrowDown":   ebiten.KeyArrowDown,
		"ArrowLeft":   ebiten.KeyArrowLeft,
		"ArrowRight":  ebiten.KeyArrowRight,
		"Comma":       ebiten.KeyComma,
		"Period":      ebiten.KeyPeriod,
		"Slash":       ebiten.KeySlash,
		"Semicolon":   ebiten.KeySemicolon,
		"Quote":       ebiten.KeyQuote,
		"Minus":       ebiten.KeyMinus,
		"Equal":       ebiten.KeyEqual,
		"NumpadEnter": ebiten.KeyNumpadEnter,
	}
	for i := 0; i < 26; i++ {
		mapping["Key"+string(rune('A'+i))] = ebiten.KeyA + ebiten.Key(i)
	}
	for i := 0; i < 10; i++ {
		digit := string(rune('0' + i))
		mapping["Key"+digit] = ebiten.Key0 + ebiten.Key(i)
		mapping["Numpad"+digit] = ebiten.KeyNumpad0 + ebiten.Key(i)
	}
	return mapping
}

// parseKeyString parses a key string like "Shift+KeyN" into a KeyCombination
func parseKeyString(keyStr string, mapping map[string]ebiten.Key) (KeyCombination, bool) {
	parts := strings.Split(keyStr, "+")
	key, exists := mapping[parts[len(parts)-1]]
	if !exists {
		return KeyCombination{}, false
	}

	combination := KeyCombination{Key: key}
	for _, modifier := range parts[:len(parts)-1] {
		switch strings.ToLower(modifier) {
		case "shift":
			combination.Shift = true
		case "ctrl":
			combination.Ctrl = true
		case "alt":
			combination.Alt = true
		default:
			return KeyCombination{}, false
		}
	}

	return combination, true
}

// isKeyPressed reports whether the key was just pressed with exactly the
// combination's modifiers held
func isKeyPressed(combination KeyCombination) bool {
	if !inpututil.IsKeyJustPressed(combination.Key) {
		return false
	}
	return combination.Shift == ebiten.IsKeyPressed(ebiten.KeyShift) &&
		combination.Ctrl == ebiten.IsKeyPressed(ebiten.KeyControl) &&
		combination.Alt == ebiten.IsKeyPressed(ebiten.KeyAlt)
}

// CheckAction checks if any keybinding for the given action is pressed
func (km *KeybindingManager) CheckAction(action string) bool {
	for _, combination := range km.combinations[action] {
		if isKeyPressed(combination) {
			return true
		}
	}
	return false
}

// ExecuteAction runs action if one of its keys was just pressed
func (km *KeybindingManager) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if !km.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions, inputState)
}

// GetKeybindings returns the current keybindings map (for display purposes)
func (km *KeybindingManager) GetKeybindings() map[string][]string {
	return km.keybindings
}
