package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/storenamer/internal/dispatcher"
	"github.com/Rorical/storenamer/internal/eventbus"
	"github.com/Rorical/storenamer/internal/models"
)

// CopiedDuration is how long the copied marker stays on a name.
const CopiedDuration = 2000 * time.Millisecond

// CopyExpiredMsg clears the copied marker if no newer copy happened.
type CopyExpiredMsg struct {
	Seq int
}

// HandleKeyMsg handles keyboard input
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, deps Deps) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "tab":
		toggleFocus(appModel)
		return nil
	}

	if appModel.Focus == models.FocusResults {
		return handleResultsKey(appModel, keyMsg, deps)
	}
	return handleInputKey(appModel, keyMsg, deps)
}

func handleInputKey(appModel *models.AppModel, keyMsg tea.KeyMsg, deps Deps) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEnter:
		return Submit(appModel, deps.Bus)
	case tea.KeyBackspace:
		if runes := []rune(appModel.Input); len(runes) > 0 {
			appModel.Input = string(runes[:len(runes)-1])
		}
	case tea.KeyCtrlU:
		appModel.Input = ""
	case tea.KeyRunes, tea.KeySpace:
		appModel.Input += string(keyMsg.Runes)
	}
	return nil
}

func handleResultsKey(appModel *models.AppModel, keyMsg tea.KeyMsg, deps Deps) tea.Cmd {
	switch keyMsg.String() {
	case "up", "k":
		if appModel.Cursor > 0 {
			appModel.Cursor--
		}
	case "down", "j":
		if appModel.Cursor < len(appModel.Names)-1 {
			appModel.Cursor++
		}
	case "enter", "c":
		return CopyName(appModel, appModel.Cursor, deps)
	case "i":
		appModel.Focus = models.FocusInput
	}
	return nil
}

func toggleFocus(appModel *models.AppModel) {
	if appModel.Focus == models.FocusInput && len(appModel.Names) > 0 {
		appModel.Focus = models.FocusResults
		return
	}
	appModel.Focus = models.FocusInput
}

// Submit sends the description to core. It is ignored while a request is
// loading or when the description is blank, so the UI never relies on the
// core guard alone.
func Submit(appModel *models.AppModel, eb *eventbus.EventBus) tea.Cmd {
	if appModel.Loading() || strings.TrimSpace(appModel.Input) == "" {
		return nil
	}

	if err := eb.SendToCore(eventbus.GenerateEvent{Description: appModel.Input}); err != nil {
		appModel.Status = "Error sending request: " + err.Error()
		return nil
	}

	// Core confirms with a Loading snapshot; set it now to close the gap
	appModel.Phase = models.Loading
	appModel.ErrorMessage = ""
	appModel.Status = "Creating magic"
	return nil
}

// CopyName copies the name at index and shows the copied marker for
// CopiedDuration. A newer copy restarts the timer.
func CopyName(appModel *models.AppModel, index int, deps Deps) tea.Cmd {
	if index < 0 || index >= len(appModel.Names) {
		return nil
	}
	name := appModel.Names[index]

	appModel.CopySeq++
	appModel.CopiedIndex = index
	seq := appModel.CopySeq

	writeCmd := func() tea.Msg {
		if deps.Clipboard == nil {
			return nil
		}
		if err := deps.Clipboard.Copy(name); err != nil && deps.Logger != nil {
			deps.Logger.WithError(err).Warn("Clipboard write failed")
		}
		return nil
	}
	expireCmd := tea.Tick(CopiedDuration, func(time.Time) tea.Msg {
		return CopyExpiredMsg{Seq: seq}
	})

	return tea.Batch(writeCmd, expireCmd)
}

// HandleCopyExpired clears the marker unless a later copy superseded it.
func HandleCopyExpired(appModel *models.AppModel, msg CopyExpiredMsg) {
	if msg.Seq == appModel.CopySeq {
		appModel.CopiedIndex = models.NoCopy
	}
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		snap := event.Snapshot
		appModel.Phase = snap.Phase
		appModel.ErrorMessage = snap.ErrorMessage
		if snap.Phase != models.Loading {
			appModel.Names = snap.Names
		}

		if appModel.Cursor >= len(appModel.Names) {
			appModel.Cursor = 0
		}
		if len(appModel.Names) == 0 {
			appModel.Focus = models.FocusInput
		} else if snap.Phase == models.Success {
			appModel.Focus = models.FocusResults
			appModel.Cursor = 0
		}

		appModel.Status = statusFor(snap)
	}

	return nil
}

func statusFor(snap models.Snapshot) string {
	switch snap.Phase {
	case models.Loading:
		return "Creating magic"
	case models.Success:
		if len(snap.Names) == 1 {
			return "1 name generated"
		}
		return fmt.Sprintf("%d names generated", len(snap.Names))
	case models.Failed:
		return "Generation failed"
	default:
		return "Ready"
	}
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.Loading() {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
