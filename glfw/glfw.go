package glfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/ember"
)

// Platform opens GLFW windows. GLFW must only be driven from the main thread.
type Platform struct{}

func New() *Platform {
	return &Platform{}
}

func (p *Platform) CreateWindow(spec ember.WindowSpec, settings ember.ContextSettings) (ember.Surface, error) {
	core.Verbosef(ModuleName, "sparking GLFW integration\n")
	if err := glfw.Init(); err != nil {
		return nil, &ember.PlatformError{Op: "initialize GLFW", Err: err}
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, settings.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, settings.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, profile(settings.Profile))
	glfw.WindowHint(glfw.OpenGLForwardCompatible, flag(settings.ForwardCompatible))
	glfw.WindowHint(glfw.Samples, settings.Antialias)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, flag(spec.Style.Has(ember.StyleResize)))
	glfw.WindowHint(glfw.Decorated, flag(spec.Style.Has(ember.StyleTitlebar)))

	handle, err := glfw.CreateWindow(spec.Size.X, spec.Size.Y, spec.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &ember.PlatformError{Op: "create GLFW window", Err: err}
	}
	handle.MakeContextCurrent()

	w := &Window{handle: handle}
	w.listen()
	core.Verbosef(ModuleName, "window %q created at %dx%d\n", spec.Title, spec.Size.X, spec.Size.Y)
	return w, nil
}

func profile(p ember.Profile) int {
	switch p {
	case ember.ProfileCore:
		return glfw.OpenGLCoreProfile
	case ember.ProfileCompatibility:
		return glfw.OpenGLCompatProfile
	default:
		return glfw.OpenGLAnyProfile
	}
}

func flag(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Window is a GLFW window whose callbacks queue events until the next poll.
type Window struct {
	handle  *glfw.Window
	limiter *ember.Limiter
	pending []ember.Event
	closed  bool
}

// Resize is queued when the framebuffer changes size.
type Resize struct {
	Width, Height int
}

// Focus is queued when the window gains or loses input focus.
type Focus struct {
	Focused bool
}

// Key is queued for every keyboard action.
type Key struct {
	Key    glfw.Key
	Action glfw.Action
	Mods   glfw.ModifierKey
}

// CursorMove is queued when the cursor moves over the window.
type CursorMove struct {
	X, Y float64
}

// MouseButton is queued for every mouse button action.
type MouseButton struct {
	Button glfw.MouseButton
	Action glfw.Action
}

func (w *Window) queue(e ember.Event) {
	w.pending = append(w.pending, e)
}

func (w *Window) listen() {
	w.handle.SetCloseCallback(func(*glfw.Window) {
		w.queue(ember.CloseRequest{})
	})
	w.handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue(ember.Unhandled{Source: Resize{Width: width, Height: height}})
	})
	w.handle.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.queue(ember.Unhandled{Source: Focus{Focused: focused}})
	})
	w.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		w.queue(ember.Unhandled{Source: Key{Key: key, Action: action, Mods: mods}})
	})
	w.handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.queue(ember.Unhandled{Source: CursorMove{X: x, Y: y}})
	})
	w.handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.queue(ember.Unhandled{Source: MouseButton{Button: button, Action: action}})
	})
}

func (w *Window) SetVerticalSync(enabled bool) error {
	if enabled {
		w.limiter.Stop()
		w.limiter = nil
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return nil
}

// SetFramerateLimit paces Present with a ticker, since GLFW has no frame cap of its own.
// Rates above ember.MaxLimiterRate are rejected.
func (w *Window) SetFramerateLimit(fps int) error {
	limiter, err := ember.NewLimiter(fps)
	if err != nil {
		return err
	}
	w.limiter.Stop()
	w.limiter = limiter
	return nil
}

func (w *Window) PollEvents(handle func(ember.Event)) {
	glfw.PollEvents()
	events := w.pending
	w.pending = nil
	for _, e := range events {
		handle(e)
	}
}

func (w *Window) MakeCurrent() error {
	w.handle.MakeContextCurrent()
	return nil
}

func (w *Window) Present() {
	w.handle.SwapBuffers()
	w.limiter.Wait()
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.limiter.Stop()
	w.handle.Destroy()
	glfw.Terminate()
	core.Verbosef(ModuleName, "GLFW integration stopped\n")
}

var (
	_ ember.Platform = (*Platform)(nil)
	_ ember.Surface  = (*Window)(nil)
)
