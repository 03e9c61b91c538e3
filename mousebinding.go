package main

import (
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseSettings contains mouse-specific configuration
type MouseSettings struct {
	WheelSensitivity float64 `json:"wheel_sensitivity" yaml:"wheel_sensitivity"`
	DoubleClickTime  int     `json:"double_click_time" yaml:"double_click_time"` // milliseconds
	EnableMouse      bool    `json:"enable_mouse" yaml:"enable_mouse"`
	WheelInverted    bool    `json:"wheel_inverted" yaml:"wheel_inverted"`
}

// DoubleClickTracker tracks double-click state
type DoubleClickTracker struct {
	lastClickTime   time.Time
	lastClickButton ebiten.MouseButton
	clickCount      int
}

// MouseCombination represents a mouse action with optional modifiers
type MouseCombination struct {
	Button        ebiten.MouseButton
	IsWheel       bool
	WheelDeltaX   float64
	WheelDeltaY   float64
	IsDoubleClick bool
	Shift         bool
	Ctrl          bool
	Alt           bool
}

// MousebindingManager maps configured mouse strings onto actions
type MousebindingManager struct {
	mousebindings      map[string][]string
	combinations       map[string][]MouseCombination
	settings           MouseSettings
	doubleClickTracker DoubleClickTracker
}

// NewMousebindingManager parses mouse bindings once; unparsable entries are skipped
func NewMousebindingManager(mousebindings map[string][]string, settings MouseSettings) *MousebindingManager {
	mm := &MousebindingManager{
		mousebindings: mousebindings,
		combinations:  make(map[string][]MouseCombination),
		settings:      settings,
		doubleClickTracker: DoubleClickTracker{
			lastClickTime: time.Now(),
		},
	}
	mapping := getMouseMapping()
	for action, mouseStrings := range mousebindings {
		for _, mouseStr := range mouseStrings {
			combination, ok := parseMouseString(mouseStr, mapping)
			if !ok {
				log.Printf("Warning: Ignoring mouse binding '%s' for action '%s'", mouseStr, action)
				continue
			}
			mm.combinations[action] = append(mm.combinations[action], combination)
		}
	}
	return mm
}

// getMouseMapping returns a mapping from string mouse actions to Ebiten mouse buttons
func getMouseMapping() map[string]ebiten.MouseButton {
	return map[string]ebiten.MouseButton{
		"LeftClick":   ebiten.MouseButtonLeft,
		"RightClick":  ebiten.MouseButtonRight,
		"MiddleClick": ebiten.MouseButtonMiddle,
		"Back":        ebiten.MouseButton3,
		"Forward":     ebiten.MouseButton4,
	}
}

// parseMouseString parses a mouse string like "Shift+LeftClick" or "WheelUp"
func parseMouseString(mouseStr string, mapping map[string]ebiten.MouseButton) (MouseCombination, bool) {
	parts := strings.Split(mouseStr, "+")
	actionName := parts[len(parts)-1]

	var combination MouseCombination
	switch {
	case strings.HasPrefix(actionName, "Wheel"):
		combination.IsWheel = true
		switch actionName {
		case "WheelUp":
			combination.WheelDeltaY = 1.0
		case "WheelDown":
			combination.WheelDeltaY = -1.0
		case "WheelLeft":
			combination.WheelDeltaX = -1.0
		case "WheelRight":
			combination.WheelDeltaX = 1.0
		default:
			return MouseCombination{}, false
		}
	case strings.HasPrefix(actionName, "Double"):
		button, exists := mapping[strings.TrimPrefix(actionName, "Double")]
		if !exists {
			return MouseCombination{}, false
		}
		combination.IsDoubleClick = true
		combination.Button = button
	default:
		button, exists := mapping[actionName]
		if !exists {
			return MouseCombination{}, false
		}
		combination.Button = button
	}

	for _, modifier := range parts[:len(parts)-1] {
		switch strings.ToLower(modifier) {
		case "shift":
			combination.Shift = true
		case "ctrl":
			combination.Ctrl = true
		case "alt":
			combination.Alt = true
		default:
			return MouseCombination{}, false
		}
	}

	return combination, true
}

// wheelMatches reports whether the wheel moved in the combination's direction
func wheelMatches(combination MouseCombination, wheelX, wheelY float64) bool {
	if combination.WheelDeltaX != 0 {
		return combination.WheelDeltaX*wheelX > 0
	}
	return combination.WheelDeltaY*wheelY > 0
}

func (mm *MousebindingManager) isTriggered(combination MouseCombination) bool {
	if !mm.settings.EnableMouse {
		return false
	}

	if combination.Shift != ebiten.IsKeyPressed(ebiten.KeyShift) ||
		combination.Ctrl != ebiten.IsKeyPressed(ebiten.KeyControl) ||
		combination.Alt != ebiten.IsKeyPressed(ebiten.KeyAlt) {
		return false
	}

	switch {
	case combination.IsWheel:
		wheelX, wheelY := ebiten.Wheel()
		if mm.settings.WheelInverted {
			wheelY = -wheelY
		}
		return wheelMatches(combination, wheelX*mm.settings.WheelSensitivity, wheelY*mm.settings.WheelSensitivity)
	case combination.IsDoubleClick:
		return mm.checkDoubleClick(combination.Button, time.Now())
	default:
		return inpututil.IsMouseButtonJustPressed(combination.Button)
	}
}

// checkDoubleClick checks if a double-click occurred for the given button
func (mm *MousebindingManager) checkDoubleClick(button ebiten.MouseButton, now time.Time) bool {
	if !inpututil.IsMouseButtonJustPressed(button) {
		return false
	}
	return mm.doubleClickTracker.click(button, now, time.Duration(mm.settings.DoubleClickTime)*time.Millisecond)
}

// click records a press and reports whether it completes a double click
func (t *DoubleClickTracker) click(button ebiten.MouseButton, now time.Time, window time.Duration) bool {
	defer func() { t.lastClickTime = now }()

	if t.lastClickButton == button && t.clickCount > 0 && now.Sub(t.lastClickTime) <= window {
		t.clickCount = 0
		return true
	}
	t.clickCount = 1
	t.lastClickButton = button
	return false
}

// CheckAction checks if any mouse binding for the given action is triggered
func (mm *MousebindingManager) CheckAction(action string) bool {
	for _, combination := range mm.combinations[action] {
		if mm.isTriggered(combination) {
			return true
		}
	}
	return false
}

// ExecuteAction runs action if one of its mouse bindings fired
func (mm *MousebindingManager) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if !mm.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions, inputState)
}

// GetMousebindings returns the current mouse bindings map (for display purposes)
func (mm *MousebindingManager) GetMousebindings() map[string][]string {
	return mm.mousebindings
}

// GetDefaultMouseSettings returns the default mouse settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		WheelSensitivity: 1.0,
		DoubleClickTime:  300,
		EnableMouse:      true,
	}
}
