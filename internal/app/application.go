package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Rorical/storenamer/internal/clipboard"
	"github.com/Rorical/storenamer/internal/config"
	"github.com/Rorical/storenamer/internal/core"
	"github.com/Rorical/storenamer/internal/dispatcher"
	"github.com/Rorical/storenamer/internal/eventbus"
	"github.com/Rorical/storenamer/internal/models"
	"github.com/Rorical/storenamer/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *logrus.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.NameService
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	deps       update.Deps
}

func NewApplication(cfg *config.Config, logger *logrus.Logger) (*Application, error) {
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		logger.WithError(err.Err).WithField("operation", err.Operation).Error("Event bus error")
	})

	disp := dispatcher.NewEventDispatcher(eb)

	// Always create the service, it handles an unconfigured provider itself
	nameService, err := core.NewNameService(cfg, eb, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize name service")
		return nil, err
	}

	model := &AppModel{
		appModel:   createInitialAppModel(nameService),
		dispatcher: disp,
		deps: update.Deps{
			Bus:       eb,
			Clipboard: clipboard.NewOSC52(nil),
			Logger:    logger,
		},
	}

	return &Application{
		config:     cfg,
		logger:     logger,
		eventBus:   eb,
		dispatcher: disp,
		service:    nameService,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.logger.WithFields(logrus.Fields{
		"profile":  app.config.ActiveProfile,
		"provider": app.config.GetProvider(),
		"model":    app.config.GetModel(),
	}).Info("Starting StoreNamer")

	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	app.logger.Info("StoreNamer stopped")
}

func createInitialAppModel(nameService *core.NameService) models.AppModel {
	// Names and phase arrive from core as the single source of truth
	return models.AppModel{
		Status:       "Ready",
		Phase:        models.Idle,
		Notices:      nameService.Notices(),
		ServiceReady: nameService.IsReady(),
		Focus:        models.FocusInput,
		CopiedIndex:  models.NoCopy,
		Width:        80,
	}
}
