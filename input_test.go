package main

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKeyString(t *testing.T) {
	mapping := getKeyMapping()

	tests := []struct {
		input    string
		expected KeyCombination
		valid    bool
	}{
		{"KeyN", KeyCombination{Key: ebiten.KeyN}, true},
		{"Shift+KeyN", KeyCombination{Key: ebiten.KeyN, Shift: true}, true},
		{"Ctrl+Alt+ArrowLeft", KeyCombination{Key: ebiten.KeyArrowLeft, Ctrl: true, Alt: true}, true},
		{"Key7", KeyCombination{Key: ebiten.Key7}, true},
		{"Numpad3", KeyCombination{Key: ebiten.KeyNumpad3}, true},
		{"Super+KeyN", KeyCombination{}, false},
		{"KeyNope", KeyCombination{}, false},
		{"", KeyCombination{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseKeyString(tt.input, mapping)
			if ok != tt.valid {
				t.Fatalf("parseKeyString(%q) valid = %v, want %v", tt.input, ok, tt.valid)
			}
			if got != tt.expected {
				t.Errorf("parseKeyString(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewKeybindingManagerSkipsInvalidKeys(t *testing.T) {
	km := NewKeybindingManager(map[string][]string{
		"next": {"KeyN", "Bogus", "Shift+Space"},
	})

	if n := len(km.combinations["next"]); n != 2 {
		t.Errorf("Parsed %d combinations, want 2", n)
	}
	if len(km.GetKeybindings()["next"]) != 3 {
		t.Error("GetKeybindings should return the configured strings unchanged")
	}
}

func TestValidateKeybindings(t *testing.T) {
	tests := []struct {
		name        string
		keybindings map[string][]string
		wantErr     bool
	}{
		{"Defaults", GetDefaultKeybindings(), false},
		{"Modifier", map[string][]string{"next": {"Shift+KeyN"}}, false},
		{"Unknown key", map[string][]string{"next": {"KeyÄ"}}, true},
		{"Unknown modifier", map[string][]string{"next": {"Meta+KeyN"}}, true},
		{"Conflict", map[string][]string{"next": {"KeyN"}, "exit": {"KeyN"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateKeybindings(tt.keybindings); (err != nil) != tt.wantErr {
				t.Errorf("validateKeybindings() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseMouseString(t *testing.T) {
	mapping := getMouseMapping()

	tests := []struct {
		input    string
		expected MouseCombination
		valid    bool
	}{
		{"LeftClick", MouseCombination{Button: ebiten.MouseButtonLeft}, true},
		{"Ctrl+RightClick", MouseCombination{Button: ebiten.MouseButtonRight, Ctrl: true}, true},
		{"WheelUp", MouseCombination{IsWheel: true, WheelDeltaY: 1}, true},
		{"Shift+WheelDown", MouseCombination{IsWheel: true, WheelDeltaY: -1, Shift: true}, true},
		{"WheelRight", MouseCombination{IsWheel: true, WheelDeltaX: 1}, true},
		{"DoubleLeftClick", MouseCombination{Button: ebiten.MouseButtonLeft, IsDoubleClick: true}, true},
		{"Forward", MouseCombination{Button: ebiten.MouseButton4}, true},
		{"WheelSideways", MouseCombination{}, false},
		{"DoubleNothing", MouseCombination{}, false},
		{"Hyper+LeftClick", MouseCombination{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseMouseString(tt.input, mapping)
			if ok != tt.valid {
				t.Fatalf("parseMouseString(%q) valid = %v, want %v", tt.input, ok, tt.valid)
			}
			if got != tt.expected {
				t.Errorf("parseMouseString(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWheelMatches(t *testing.T) {
	up := MouseCombination{IsWheel: true, WheelDeltaY: 1}
	left := MouseCombination{IsWheel: true, WheelDeltaX: -1}

	tests := []struct {
		name   string
		c      MouseCombination
		dx, dy float64
		want   bool
	}{
		{"Up matches up", up, 0, 0.5, true},
		{"Up ignores down", up, 0, -1, false},
		{"Up ignores still", up, 0, 0, false},
		{"Left matches left", left, -2, 0, true},
		{"Left ignores vertical", left, 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wheelMatches(tt.c, tt.dx, tt.dy); got != tt.want {
				t.Errorf("wheelMatches(%+v, %v, %v) = %v, want %v", tt.c, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestDoubleClickTracker(t *testing.T) {
	window := 300 * time.Millisecond
	start := time.Now()

	var tracker DoubleClickTracker
	if tracker.click(ebiten.MouseButtonLeft, start, window) {
		t.Error("A single click is not a double click")
	}
	if !tracker.click(ebiten.MouseButtonLeft, start.Add(100*time.Millisecond), window) {
		t.Error("Two quick clicks should be a double click")
	}
	if tracker.click(ebiten.MouseButtonLeft, start.Add(200*time.Millisecond), window) {
		t.Error("A third click starts a new sequence")
	}
	if tracker.click(ebiten.MouseButtonLeft, start.Add(time.Second), window) {
		t.Error("A slow second click is not a double click")
	}
	if tracker.click(ebiten.MouseButtonRight, start.Add(1100*time.Millisecond), window) {
		t.Error("Clicks on different buttons are not a double click")
	}
}

// fakeInput records which InputActions were invoked
type fakeInput struct {
	open   bool
	x, y   int
	called []string
}

func (f *fakeInput) Exit()                    { f.called = append(f.called, "exit") }
func (f *fakeInput) ToggleInfo()              { f.called = append(f.called, "info") }
func (f *fakeInput) OpenCurrent()             { f.called = append(f.called, "open") }
func (f *fakeInput) CloseOverlay()            { f.called = append(f.called, "close") }
func (f *fakeInput) NavigatePrevious()        { f.called = append(f.called, "previous") }
func (f *fakeInput) NavigateNext()            { f.called = append(f.called, "next") }
func (f *fakeInput) ClickAt(x, y int)         { f.called = append(f.called, "click") }
func (f *fakeInput) GetTotalSlidesCount() int { return 1 }
func (f *fakeInput) IsOpen() bool             { return f.open }
func (f *fakeInput) PointerPosition() (int, int) {
	return f.x, f.y
}

func TestActionExecutor(t *testing.T) {
	tests := []struct {
		action string
		open   bool
		want   bool
	}{
		{"exit", false, true},
		{"info", true, true},
		{"open", false, true},
		{"open", true, false},
		{"close", true, true},
		{"close", false, false},
		{"previous", false, true},
		{"next", true, true},
		{"click", true, true},
		{"unknown", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			input := &fakeInput{open: tt.open}
			got := globalActionExecutor.ExecuteAction(tt.action, input, input)
			if got != tt.want {
				t.Errorf("ExecuteAction(%q, open=%v) = %v, want %v", tt.action, tt.open, got, tt.want)
			}
			if tt.want && (len(input.called) != 1 || input.called[0] != tt.action) {
				t.Errorf("Expected %q to be invoked, got %v", tt.action, input.called)
			}
			if !tt.want && len(input.called) != 0 {
				t.Errorf("Expected no invocation, got %v", input.called)
			}
		})
	}
}

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	keys := GetDefaultKeybindings()
	mouse := GetDefaultMousebindings()
	for action := range GetActionDescriptions() {
		if len(keys[action]) == 0 && len(mouse[action]) == 0 {
			t.Errorf("Action %q has no default binding", action)
		}
	}
	for _, action := range inputOrder {
		if _, ok := GetActionDescriptions()[action]; !ok {
			t.Errorf("Input order names unknown action %q", action)
		}
	}
}
