package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Rorical/storenamer/internal/clipboard"
	"github.com/Rorical/storenamer/internal/dispatcher"
	"github.com/Rorical/storenamer/internal/eventbus"
	"github.com/Rorical/storenamer/internal/models"
)

// Deps are the collaborators the handlers talk to.
type Deps struct {
	Bus       *eventbus.EventBus
	Clipboard clipboard.Clipboard
	Logger    *logrus.Logger
}

func HandleUpdate(appModel *models.AppModel, msg tea.Msg, deps Deps) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, msg, deps)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(appModel)
	case CopyExpiredMsg:
		HandleCopyExpired(appModel, msg)
		return nil
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}
	return nil
}
