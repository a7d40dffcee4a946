package headpose

import (
	"github.com/akmonengine/headpose/actor"
	"github.com/akmonengine/headpose/client"
	"github.com/akmonengine/headpose/debug"
	"github.com/akmonengine/headpose/pose"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Adapter applies head tracking samples to a target transform, relative to
// the pose the target had when tracking started.
type Adapter struct {
	name   string
	id     uuid.UUID
	logger *zap.Logger

	// target receives the tracked pose, tracking refuses to start while nil
	target   actor.SceneTransform
	client   client.Client
	Settings pose.Settings
	Panel    debug.Panel
	Events   Events

	status string
	data   string

	isRunning bool
	startPose actor.Transform
}

type Option func(*Adapter)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func WithSettings(settings pose.Settings) Option {
	return func(a *Adapter) {
		a.Settings = settings
	}
}

func WithPanel(panel debug.Panel) Option {
	return func(a *Adapter) {
		a.Panel = panel
	}
}

// NewAdapter creates an inactive adapter owning the given client.
// target may be nil and set later with SetTarget. A nil client makes every
// start fail with a configuration error.
func NewAdapter(name string, target actor.SceneTransform, c client.Client, opts ...Option) *Adapter {
	a := &Adapter{
		name:      name,
		id:        uuid.New(),
		logger:    zap.NewNop(),
		target:    target,
		client:    c,
		Settings:  pose.DefaultSettings(),
		Panel:     debug.NewPanel(),
		Events:    NewEvents(),
		startPose: actor.NewTransform(),
	}

	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(zap.String("name", a.name), zap.Stringer("id", a.id))

	return a
}

func (a *Adapter) Name() string {
	return a.name
}

func (a *Adapter) ID() uuid.UUID {
	return a.id
}

func (a *Adapter) IsRunning() bool {
	return a.isRunning
}

// Status returns the text of the last client init or shutdown
func (a *Adapter) Status() string {
	return a.status
}

// Data returns the last diagnostic text reported by the client
func (a *Adapter) Data() string {
	return a.data
}

// StartPose returns the pose captured at the most recent start
func (a *Adapter) StartPose() actor.Transform {
	return a.startPose
}

func (a *Adapter) Target() actor.SceneTransform {
	return a.target
}

// SetTarget changes the tracked transform. Tracking is stopped first so the
// previous target is restored to its start pose.
func (a *Adapter) SetTarget(target actor.SceneTransform) {
	a.StopTracking()
	a.target = target
}

// Enable is the host hook called when the component becomes active
func (a *Adapter) Enable() {
	a.StartTracking()
}

// Disable is the host hook called when the component becomes inactive
func (a *Adapter) Disable() {
	a.StopTracking()
}

// StartTracking initializes the client and captures the start pose.
// It does nothing while already running.
func (a *Adapter) StartTracking() {
	if a.target == nil {
		a.logger.Error(a.name + ": attempted to start tracking without an assigned tracked object")
		a.Events.emit(ConfigErrorEvent{Adapter: a, Reason: "no tracked object"})
		return
	}
	if a.client == nil {
		a.logger.Error(a.name + ": attempted to start tracking without a tracking client")
		a.Events.emit(ConfigErrorEvent{Adapter: a, Reason: "no tracking client"})
		return
	}

	if a.isRunning {
		return
	}

	a.status = a.client.Init()
	a.isRunning = true
	a.startPose = actor.Capture(a.target)

	a.logger.Info("tracking started", zap.String("status", a.status))
	a.Events.emit(StartEvent{Adapter: a, Status: a.status})
}

// StopTracking shuts the client down and restores the start pose.
// It does nothing while not running.
func (a *Adapter) StopTracking() {
	if !a.isRunning {
		return
	}

	a.status = a.client.Shutdown()
	a.isRunning = false
	a.startPose.ApplyTo(a.target)

	a.logger.Info("tracking stopped", zap.String("status", a.status))
	a.Events.emit(StopEvent{Adapter: a, Status: a.status})
}

// ResetTracking restarts tracking, re-capturing the start pose
func (a *Adapter) ResetTracking() {
	a.StopTracking()
	a.StartTracking()
}

// Update applies the latest sample to the target. Called once per frame.
func (a *Adapter) Update() {
	if !a.isRunning {
		return
	}

	a.data = a.client.Diagnostic()
	sample := a.client.Sample()

	pose.Apply(sample, a.startPose, a.Settings).ApplyTo(a.target)
}

// DrawGUI renders the debug panel for this adapter
func (a *Adapter) DrawGUI(ui debug.UI) {
	a.Panel.Draw(ui, a, a.Status, a.Data)
}
