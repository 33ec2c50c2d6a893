package ember

import (
	"sync"

	"github.com/ignite-laboratories/core"
	log "github.com/sirupsen/logrus"
)

// State is the position of a Loop in its lifecycle.
type State int

const (
	// Running loops are polling, clearing and presenting.
	Running State = iota
	// Closing loops have seen a close request and will not render again.
	Closing
	// Terminated loops have released their surface and loader.
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// LoaderGuard owns a loaded Renderer and unloads it exactly once.
type LoaderGuard struct {
	renderer Renderer
	once     sync.Once
}

// AcquireLoader loads the renderer's entry points and returns a guard that releases them.
func AcquireLoader(renderer Renderer) (*LoaderGuard, error) {
	if err := renderer.Load(); err != nil {
		return nil, &LoaderError{Err: err}
	}
	return &LoaderGuard{renderer: renderer}, nil
}

// Release unloads the renderer. Calls after the first are no-ops.
func (g *LoaderGuard) Release() {
	if g == nil {
		return
	}
	g.once.Do(g.renderer.Unload)
}

// Loop drives a single Surface until it is asked to close.
type Loop struct {
	surface  Surface
	renderer Renderer
	loader   *LoaderGuard
	state    State
	frames   uint64
}

// Bootstrap opens a window for cfg on platform, applies the presentation policy and loads OpenGL.
//
// Any failure closes whatever was already opened before returning.
func Bootstrap(cfg WindowConfig, platform Platform, renderer Renderer) (*Loop, error) {
	settings := NewContextSettings(cfg)
	spec := WindowSpec{
		Size:  cfg.Size(),
		Title: cfg.Title,
		Style: StyleTitlebar | StyleClose,
	}

	surface, err := platform.CreateWindow(spec, settings)
	if err != nil {
		return nil, err
	}
	core.Verbosef(ModuleName, "window created with %v\n", settings)

	if err := applyPresentation(surface, cfg); err != nil {
		surface.Close()
		return nil, err
	}

	loader, err := AcquireLoader(renderer)
	if err != nil {
		surface.Close()
		return nil, err
	}

	return &Loop{
		surface:  surface,
		renderer: renderer,
		loader:   loader,
		state:    Running,
	}, nil
}

// applyPresentation enables vsync, or caps the frame rate when vsync is off. Never both.
func applyPresentation(surface Surface, cfg WindowConfig) error {
	if cfg.VSync {
		if err := surface.SetVerticalSync(true); err != nil {
			return &PlatformError{Op: "enable vsync", Err: err}
		}
		return nil
	}
	if err := surface.SetFramerateLimit(cfg.FrameRate); err != nil {
		return &PlatformError{Op: "limit framerate", Err: err}
	}
	return nil
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step runs a single iteration: drain events, then clear and present unless a close was requested.
func (l *Loop) Step() error {
	if l.state != Running {
		return nil
	}

	l.surface.PollEvents(l.handle)
	if l.state != Running {
		return nil
	}

	if err := l.surface.MakeCurrent(); err != nil {
		return &PlatformError{Op: "activate context", Err: err}
	}
	l.renderer.Clear(Backdrop)
	l.surface.Present()
	l.frames++
	return nil
}

func (l *Loop) handle(e Event) {
	switch e.(type) {
	case CloseRequest, *CloseRequest:
		if l.state == Running {
			core.Verbosef(ModuleName, "close requested after %d frames\n", l.frames)
			l.state = Closing
		}
	default:
		log.WithField("event", e).Debug("ignored window event")
	}
}

// Run steps until the window closes, then releases the surface and the loader.
func (l *Loop) Run() error {
	defer l.terminate()
	for l.state == Running {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) terminate() {
	if l.state == Terminated {
		return
	}
	l.surface.Close()
	l.loader.Release()
	l.state = Terminated
	core.Verbosef(ModuleName, "terminated\n")
}

// Start bootstraps a window for cfg and runs it until it is closed.
func Start(cfg WindowConfig, platform Platform, renderer Renderer) error {
	log.WithFields(cfg.Fields()).Info("creating window")

	loop, err := Bootstrap(cfg, platform, renderer)
	if err != nil {
		return err
	}
	return loop.Run()
}

// Launch resolves a WindowConfig from lookup and starts it. The platform is untouched
// when the configuration is malformed.
func Launch(lookup Lookup, platform Platform, renderer Renderer) error {
	cfg, err := ResolveConfig(lookup)
	if err != nil {
		return err
	}
	return Start(cfg, platform, renderer)
}
