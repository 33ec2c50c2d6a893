package sdl2

import (
	"fmt"

	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/ember"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform opens SDL2 windows. SDL must only be driven from the main thread.
type Platform struct{}

func New() *Platform {
	return &Platform{}
}

func (p *Platform) CreateWindow(spec ember.WindowSpec, settings ember.ContextSettings) (ember.Surface, error) {
	core.Verbosef(ModuleName, "sparking SDL2 integration\n")
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, &ember.PlatformError{Op: "initialize SDL2", Err: err}
	}

	if err := setAttributes(settings); err != nil {
		sdl.Quit()
		return nil, &ember.PlatformError{Op: "set GL attributes", Err: err}
	}

	driver, _ := sdl.GetCurrentVideoDriver()
	core.Verbosef(ModuleName, "SDL video driver: %s\n", driver)

	handle, err := sdl.CreateWindow(
		spec.Title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(spec.Size.X), int32(spec.Size.Y),
		windowFlags(spec.Style),
	)
	if err != nil {
		sdl.Quit()
		return nil, &ember.PlatformError{Op: "create SDL window", Err: err}
	}

	glContext, err := handle.GLCreateContext()
	if err != nil {
		_ = handle.Destroy()
		sdl.Quit()
		return nil, &ember.PlatformError{Op: "create OpenGL context", Err: err}
	}

	core.Verbosef(ModuleName, "window %q created at %dx%d\n", spec.Title, spec.Size.X, spec.Size.Y)
	return &Window{handle: handle, context: glContext}, nil
}

type attribute struct {
	attr  sdl.GLattr
	value int
}

func setAttributes(settings ember.ContextSettings) error {
	attributes := []attribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, settings.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, settings.Minor},
		{sdl.GL_CONTEXT_PROFILE_MASK, profile(settings.Profile)},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	if settings.ForwardCompatible {
		attributes = append(attributes, attribute{sdl.GL_CONTEXT_FLAGS, int(sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)})
	}
	if settings.Antialias > 0 {
		attributes = append(attributes,
			attribute{sdl.GL_MULTISAMPLEBUFFERS, 1},
			attribute{sdl.GL_MULTISAMPLESAMPLES, settings.Antialias},
		)
	}

	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}
	return nil
}

func profile(p ember.Profile) int {
	switch p {
	case ember.ProfileCore:
		return int(sdl.GL_CONTEXT_PROFILE_CORE)
	case ember.ProfileCompatibility:
		return int(sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	default:
		return 0
	}
}

func windowFlags(style ember.Style) uint32 {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN)
	if style.Has(ember.StyleResize) {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if !style.Has(ember.StyleTitlebar) {
		flags |= uint32(sdl.WINDOW_BORDERLESS)
	}
	return flags
}

// Window is an SDL2 window with its own OpenGL context.
type Window struct {
	handle    *sdl.Window
	context   sdl.GLContext
	framerate *gfx.FPSmanager
	closed    bool
}

func (w *Window) SetVerticalSync(enabled bool) error {
	interval := 0
	if enabled {
		interval = 1
		w.framerate = nil
	}
	return sdl.GLSetSwapInterval(interval)
}

// SetFramerateLimit paces Present with SDL2_gfx, which accepts 1 to gfx.FPS_UPPER_LIMIT frames per second.
func (w *Window) SetFramerateLimit(fps int) error {
	if fps > int(gfx.FPS_UPPER_LIMIT) {
		return fmt.Errorf("could not pace to %d fps above %d: %w", fps, int(gfx.FPS_UPPER_LIMIT), ember.ErrRateTooHigh)
	}
	manager := &gfx.FPSmanager{}
	gfx.InitFramerate(manager)
	if !gfx.SetFramerate(manager, uint32(fps)) {
		return fmt.Errorf("could not set framerate to %d: %v", fps, sdl.GetError())
	}
	w.framerate = manager
	return nil
}

func (w *Window) PollEvents(handle func(ember.Event)) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			handle(ember.CloseRequest{})
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				handle(ember.CloseRequest{})
			} else {
				handle(ember.Unhandled{Source: e})
			}
		default:
			handle(ember.Unhandled{Source: e})
		}
	}
}

func (w *Window) MakeCurrent() error {
	return w.handle.GLMakeCurrent(w.context)
}

func (w *Window) Present() {
	w.handle.GLSwap()
	if w.framerate != nil {
		gfx.FramerateDelay(w.framerate)
	}
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	sdl.GLDeleteContext(w.context)
	if err := w.handle.Destroy(); err != nil {
		core.Verbosef(ModuleName, "failed to destroy window: %v\n", err)
	}
	sdl.Quit()
	core.Verbosef(ModuleName, "SDL2 integration stopped\n")
}

var (
	_ ember.Platform = (*Platform)(nil)
	_ ember.Surface  = (*Window)(nil)
)
