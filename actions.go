package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default bindings and descriptions
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"KeyQ"}, []string{}, "Quit application"},
	{"info", []string{"KeyI"}, []string{}, "Show/hide slide counter"},
	{"open", []string{"Enter"}, []string{}, "Open the gallery on the current slide"},
	{"close", []string{"Escape"}, []string{"RightClick"}, "Close the gallery"},
	{"previous", []string{"ArrowLeft", "KeyP", "Backspace"}, []string{"WheelUp", "Back"}, "Previous slide"},
	{"next", []string{"ArrowRight", "KeyN", "Space"}, []string{"WheelDown", "Forward"}, "Next slide"},
	{"click", []string{}, []string{"LeftClick"}, "Press the control or thumbnail under the pointer"},
}

// ActionExecutor maps action names onto InputActions calls. Keyboard and mouse
// bindings share it.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action. It returns false for unknown actions.
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "info":
		inputActions.ToggleInfo()
	case "open":
		if inputState.IsOpen() {
			return false
		}
		inputActions.OpenCurrent()
	case "close":
		if !inputState.IsOpen() {
			return false
		}
		inputActions.CloseOverlay()
	case "previous":
		inputActions.NavigatePrevious()
	case "next":
		inputActions.NavigateNext()
	case "click":
		x, y := inputState.PointerPosition()
		inputActions.ClickAt(x, y)
	default:
		return false
	}

	return true
}

// globalActionExecutor is the ActionExecutor shared by keyboard and mouse bindings
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}
