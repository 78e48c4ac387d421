package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Rorical/storenamer/internal/config"
	"github.com/Rorical/storenamer/internal/eventbus"
	"github.com/Rorical/storenamer/internal/llm"
	"github.com/Rorical/storenamer/internal/models"
)

// NameService runs the pipeline behind the event bus.
type NameService struct {
	pipeline *Pipeline
	config   *config.Config
	eventBus *eventbus.EventBus
	logger   *logrus.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewNameService creates a NameService regardless of config validity. An
// unconfigured provider leaves the pipeline without a generator so each
// request reports the missing configuration.
func NewNameService(cfg *config.Config, eb *eventbus.EventBus, logger *logrus.Logger) (*NameService, error) {
	profile := cfg.Current()

	var generator llm.Generator
	gen, err := llm.New(profile)
	switch {
	case err == nil:
		generator = gen
	case errors.Is(err, llm.ErrNotConfigured):
		logger.WithField("provider", profile.Provider).Warn("Provider not configured")
	default:
		return nil, fmt.Errorf("failed to create %s generator: %w", profile.Provider, err)
	}

	return newNameService(cfg, eb, logger, generator), nil
}

func newNameService(cfg *config.Config, eb *eventbus.EventBus, logger *logrus.Logger, generator llm.Generator) *NameService {
	ctx, cancel := context.WithCancel(context.Background())
	service := &NameService{
		pipeline: NewPipeline(generator, cfg.GetModel(), logger),
		config:   cfg,
		eventBus: eb,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	service.pipeline.OnChange(service.pushStateToUI)
	return service
}

// Start runs the core logic in a goroutine
func (ns *NameService) Start() {
	// Send initial state to UI immediately
	ns.pushStateToUI(ns.pipeline.Snapshot())

	ns.wg.Add(1)
	go ns.eventLoop()
}

// Stop cancels any in-flight request and waits for it to settle.
func (ns *NameService) Stop() {
	ns.cancel()
	ns.wg.Wait()
}

func (ns *NameService) eventLoop() {
	defer ns.wg.Done()
	for {
		select {
		case <-ns.ctx.Done():
			return
		case event, ok := <-ns.eventBus.UIToCore():
			if !ok {
				return
			}
			ns.handleUIEvent(event)
		}
	}
}

func (ns *NameService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.GenerateEvent:
		ns.processDescription(e.Description)
	}
}

func (ns *NameService) processDescription(description string) {
	// Start is synchronous so a second event queued behind this one hits the
	// in-flight guard instead of starting another request.
	req, err := ns.pipeline.Start(description)
	if err != nil {
		ns.logger.WithError(err).Debug("Submission ignored")
		return
	}

	ns.wg.Add(1)
	go func() {
		defer ns.wg.Done()
		_, _ = req.Run(ns.ctx)
	}()
}

func (ns *NameService) pushStateToUI(snapshot models.Snapshot) {
	if err := ns.eventBus.SendToUI(eventbus.StateUpdateEvent{Snapshot: snapshot}); err != nil {
		ns.logger.WithError(err).Error("Error sending state to UI")
	}
}

func (ns *NameService) IsReady() bool {
	return ns.pipeline.Configured()
}

// Notices returns the startup lines shown above the input.
func (ns *NameService) Notices() []string {
	profile := ns.config.Current()
	notices := make([]string, 0, 3)

	if ns.IsReady() {
		notices = append(notices, fmt.Sprintf("Profile: %s (%s, %s) [OK]", ns.config.ActiveProfile, profile.Provider, profile.Model))
		return notices
	}

	notices = append(notices,
		fmt.Sprintf("Profile: %s (%s) [NOT CONFIGURED]", ns.config.ActiveProfile, profile.Provider),
		"Run: storenamer profile add <name>, or set GEMINI_API_KEY",
	)
	return notices
}
