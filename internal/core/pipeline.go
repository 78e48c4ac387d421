package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Rorical/storenamer/internal/llm"
	"github.com/Rorical/storenamer/internal/models"
)

// GenerationResult is the ordered list of names from one successful request.
type GenerationResult struct {
	Names []string
}

// Pipeline turns a store description into candidate names. Only one request
// may be outstanding at a time.
type Pipeline struct {
	generator llm.Generator
	model     string
	state     *GenerationState
	logger    *logrus.Logger

	mu        sync.RWMutex
	observers []func(models.Snapshot)
}

// NewPipeline creates a pipeline. A nil generator means no provider is
// configured; every request then fails with ErrNotConfigured.
func NewPipeline(generator llm.Generator, model string, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		generator: generator,
		model:     model,
		state:     NewGenerationState(),
		logger:    logger,
	}
}

// OnChange registers fn to receive a snapshot after every transition.
func (p *Pipeline) OnChange(fn func(models.Snapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

func (p *Pipeline) Snapshot() models.Snapshot {
	return p.state.Snapshot()
}

func (p *Pipeline) Configured() bool {
	return p.generator != nil
}

func (p *Pipeline) notify() {
	snapshot := p.state.Snapshot()

	p.mu.RLock()
	observers := slices.Clone(p.observers)
	p.mu.RUnlock()

	for _, fn := range observers {
		fn(snapshot)
	}
}

// Request is a started generation that has not been sent yet.
type Request struct {
	ID          string
	Description string
	pipeline    *Pipeline
}

// Start checks the guards and moves to Loading before returning, so callers
// can block duplicate submissions right away. Blank descriptions and calls
// while loading are rejected without any state change.
func (p *Pipeline) Start(description string) (*Request, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if !p.state.Begin() {
		return nil, ErrRequestInFlight
	}

	req := &Request{
		ID:          uuid.NewString(),
		Description: description,
		pipeline:    p,
	}
	p.logger.WithFields(logrus.Fields{
		"request_id": req.ID,
		"model":      p.model,
	}).Info("Generation started")
	p.notify()

	return req, nil
}

// Run calls the generator and settles the request in Success or Failed.
func (r *Request) Run(ctx context.Context) (GenerationResult, error) {
	p := r.pipeline
	log := p.logger.WithField("request_id", r.ID)
	started := time.Now()

	if p.generator == nil {
		log.Warn("Generation failed: provider not configured")
		p.state.Fail(ErrNotConfigured.Error())
		p.notify()
		return GenerationResult{}, ErrNotConfigured
	}

	text, err := p.callGenerator(ctx, BuildPrompt(r.Description))
	if err != nil {
		reqErr := &RequestError{Err: err}
		log.WithError(err).WithField("elapsed", time.Since(started)).Error("Generation failed")
		p.state.Fail(reqErr.Error())
		p.notify()
		return GenerationResult{}, reqErr
	}

	names := ParseNames(text)
	log.WithFields(logrus.Fields{
		"names":   len(names),
		"elapsed": time.Since(started),
	}).Info("Generation succeeded")
	p.state.Succeed(names)
	p.notify()

	return GenerationResult{Names: names}, nil
}

// Generate runs a full request: Start followed by Run.
func (p *Pipeline) Generate(ctx context.Context, description string) (GenerationResult, error) {
	req, err := p.Start(description)
	if err != nil {
		return GenerationResult{}, err
	}
	return req.Run(ctx)
}

func (p *Pipeline) callGenerator(ctx context.Context, instruction string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panicked: %v", r)
		}
	}()
	return p.generator.Generate(ctx, p.model, instruction)
}

// IsGuardError reports whether err came from a rejected submission rather
// than a failed request.
func IsGuardError(err error) bool {
	return errors.Is(err, ErrEmptyDescription) || errors.Is(err, ErrRequestInFlight)
}
