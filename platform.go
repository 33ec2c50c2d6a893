package ember

import (
	"errors"
	"fmt"

	"github.com/ignite-laboratories/core/std"
)

// Profile selects the OpenGL context profile.
type Profile int

const (
	ProfileAny Profile = iota
	ProfileCore
	ProfileCompatibility
)

func (p Profile) String() string {
	switch p {
	case ProfileCore:
		return "core"
	case ProfileCompatibility:
		return "compatibility"
	default:
		return "any"
	}
}

// ContextSettings describes the OpenGL context a window must be created with.
type ContextSettings struct {
	Major             int
	Minor             int
	Profile           Profile
	ForwardCompatible bool
	Antialias         int
}

// NewContextSettings requests a forward-compatible core profile at the configured version and sample level.
func NewContextSettings(cfg WindowConfig) ContextSettings {
	return ContextSettings{
		Major:             cfg.MajorVersion,
		Minor:             cfg.MinorVersion,
		Profile:           ProfileCore,
		ForwardCompatible: true,
		Antialias:         cfg.Antialias,
	}
}

func (s ContextSettings) String() string {
	return fmt.Sprintf("GL %d.%d %s (%dx AA)", s.Major, s.Minor, s.Profile, s.Antialias)
}

// Style is a set of window decoration flags.
type Style uint8

const (
	StyleTitlebar Style = 1 << iota
	StyleResize
	StyleClose

	StyleNone    Style = 0
	StyleDefault       = StyleTitlebar | StyleResize | StyleClose
)

// Has reports whether all flags in other are set.
func (s Style) Has(other Style) bool {
	return s&other == other
}

// WindowSpec describes the window itself.
type WindowSpec struct {
	Size  std.XY[int]
	Title string
	Style Style
}

// Event is anything a Surface reports while polling.
type Event interface{}

// CloseRequest is reported when the user asks for the window to close.
type CloseRequest struct{}

// Unhandled carries a platform event that the loop only traces.
type Unhandled struct {
	Source any
}

func (u Unhandled) String() string {
	return fmt.Sprintf("%T %+v", u.Source, u.Source)
}

// Platform creates windows with attached OpenGL contexts.
type Platform interface {
	// CreateWindow opens a window and makes its context current on the calling thread.
	CreateWindow(spec WindowSpec, settings ContextSettings) (Surface, error)
}

// Surface is a window with an attached OpenGL context.
type Surface interface {
	SetVerticalSync(enabled bool) error
	SetFramerateLimit(fps int) error
	// PollEvents drains every pending event without blocking.
	PollEvents(handle func(Event))
	MakeCurrent() error
	// Present swaps buffers, blocking as long as the presentation policy demands.
	Present()
	Close()
}

// Color is a normalized RGBA color.
type Color struct {
	R, G, B, A float32
}

// Backdrop is the color every frame is cleared to.
var Backdrop = Color{R: 0, G: 0, B: 0.3, A: 1}

// Renderer issues OpenGL calls against the current context.
type Renderer interface {
	// Load resolves the OpenGL entry points. It must succeed before any other call.
	Load() error
	Unload()
	Clear(c Color)
}

// PlatformError reports a failure of the windowing platform or the driver behind it.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform: %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// LoaderError reports a failure to resolve OpenGL entry points.
type LoaderError struct {
	Err error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("loading OpenGL: %v", e.Err)
}

func (e *LoaderError) Unwrap() error {
	return e.Err
}

// ErrUnknownBackend is returned when no platform is registered under the requested name.
var ErrUnknownBackend = errors.New("unknown backend")

// Backends maps backend names to platform constructors.
type Backends map[string]func() Platform

// Select constructs the platform registered under name.
func (b Backends) Select(name string) (Platform, error) {
	newPlatform, ok := b[name]
	if !ok {
		return nil, &ConfigError{Setting: SettingBackend, Value: name, Err: ErrUnknownBackend}
	}
	return newPlatform(), nil
}
