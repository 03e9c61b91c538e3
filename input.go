package main

// inputOrder is the order actions are checked in each frame. Close comes
// before click so a right click on a control does not also press it.
var inputOrder = []string{"exit", "info", "open", "close", "previous", "next", "click"}

// InputHandler handles keyboard and mouse input processing
type InputHandler struct {
	inputActions        InputActions
	inputState          InputState
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, inputState InputState, keybindingManager *KeybindingManager, mousebindingManager *MousebindingManager) *InputHandler {
	return &InputHandler{
		inputActions:        inputActions,
		inputState:          inputState,
		keybindingManager:   keybindingManager,
		mousebindingManager: mousebindingManager,
	}
}

// HandleInput processes all input for the current frame
// Returns true if any input was processed, false otherwise
func (h *InputHandler) HandleInput() bool {
	if h.inputActions.GetTotalSlidesCount() == 0 {
		return false
	}

	inputProcessed := false
	for _, action := range inputOrder {
		inputProcessed = h.handleAction(action) || inputProcessed
	}
	return inputProcessed
}

// handleAction runs action at most once per frame even if a key and a
// mouse binding both fired
func (h *InputHandler) handleAction(action string) bool {
	if h.keybindingManager.ExecuteAction(action, h.inputActions, h.inputState) {
		return true
	}
	return h.mousebindingManager.ExecuteAction(action, h.inputActions, h.inputState)
}
