package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/storenamer/internal/dispatcher"
	"github.com/Rorical/storenamer/internal/models"
	"github.com/Rorical/storenamer/internal/update"
	"github.com/Rorical/storenamer/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	cmd := update.HandleUpdate(&m.appModel, msg, m.deps)
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder
	resultsFocused := m.appModel.Focus == models.FocusResults

	b.WriteString(components.RenderHeader(m.appModel.Notices))
	b.WriteString(components.RenderInput(m.appModel.Input, !resultsFocused, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderError(m.appModel.ErrorMessage, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderNames(m.appModel.Names, m.appModel.Cursor, m.appModel.CopiedIndex, resultsFocused))
	b.WriteString("\n")
	b.WriteString(components.RenderHelp(resultsFocused))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Phase, m.appModel.Status, m.appModel.LoadingDots, m.appModel.Width))

	return b.String()
}
