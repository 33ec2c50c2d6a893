package ember

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ignite-laboratories/core/std"
	log "github.com/sirupsen/logrus"
)

// Setting names read from the environment.
const (
	SettingWidth        = "WIDTH"
	SettingHeight       = "HEIGHT"
	SettingTitle        = "TITLE"
	SettingVSync        = "VSYNC"
	SettingFrameRate    = "FRAMERATE"
	SettingMajorVersion = "MAJOR_VERSION"
	SettingMinorVersion = "MINOR_VERSION"
	SettingAntialias    = "ANTIALIAS"

	SettingBackend      = "BACKEND"
	SettingLogLevel     = "LOG_LEVEL"
	SettingSettingsFile = "SETTINGS_FILE"
)

var (
	// ErrInvalidBool is returned for boolean settings that are neither "true" nor "false".
	ErrInvalidBool = errors.New("expected true or false")
	// ErrOutOfRange is returned for numeric settings outside of their accepted range.
	ErrOutOfRange = errors.New("value out of range")
)

// DefaultConfig holds the values used for any setting absent from the environment.
var DefaultConfig = WindowConfig{
	Width:        1024,
	Height:       768,
	Title:        "SFML Window",
	VSync:        false,
	FrameRate:    60,
	MajorVersion: 3,
	MinorVersion: 3,
	Antialias:    0,
}

// DefaultRuntime holds the ambient defaults.
var DefaultRuntime = Runtime{
	Backend:      "glfw",
	LogLevel:     log.InfoLevel,
	SettingsFile: ".env",
}

// WindowConfig describes the window and context to open.
type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	VSync        bool
	FrameRate    int // Only applied when VSync is false
	MajorVersion int
	MinorVersion int
	Antialias    int
}

// Size returns the window dimensions in pixels.
func (c WindowConfig) Size() std.XY[int] {
	return std.XY[int]{X: c.Width, Y: c.Height}
}

// Fields returns the configuration as structured log fields.
func (c WindowConfig) Fields() log.Fields {
	return log.Fields{
		"width":     c.Width,
		"height":    c.Height,
		"title":     c.Title,
		"vsync":     c.VSync,
		"framerate": c.FrameRate,
		"major":     c.MajorVersion,
		"minor":     c.MinorVersion,
		"antialias": c.Antialias,
	}
}

// Runtime holds the settings that pick and observe the platform rather than shape the window.
type Runtime struct {
	Backend      string
	LogLevel     log.Level
	SettingsFile string
}

// Lookup retrieves the value of a named setting and reports whether it was present.
type Lookup func(name string) (string, bool)

// Environ looks settings up in the process environment.
func Environ() Lookup {
	return os.LookupEnv
}

// Mapped looks settings up in a fixed map.
func Mapped(values map[string]string) Lookup {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

// ConfigError reports a setting that was present but could not be used.
type ConfigError struct {
	Setting string
	Value   string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %v", e.Setting, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ResolveConfig builds a WindowConfig from lookup.
//
// Absent settings take their value from DefaultConfig. A setting that is present but malformed
// is never replaced by its default: the first one encountered is returned as a *ConfigError.
func ResolveConfig(lookup Lookup) (WindowConfig, error) {
	r := resolver{lookup: lookup}
	cfg := WindowConfig{
		Width:        r.integer(SettingWidth, DefaultConfig.Width, 1),
		Height:       r.integer(SettingHeight, DefaultConfig.Height, 1),
		Title:        r.text(SettingTitle, DefaultConfig.Title),
		VSync:        r.boolean(SettingVSync, DefaultConfig.VSync),
		FrameRate:    r.integer(SettingFrameRate, DefaultConfig.FrameRate, 0),
		MajorVersion: r.integer(SettingMajorVersion, DefaultConfig.MajorVersion, 1),
		MinorVersion: r.integer(SettingMinorVersion, DefaultConfig.MinorVersion, 0),
		Antialias:    r.integer(SettingAntialias, DefaultConfig.Antialias, 0),
	}
	if r.err != nil {
		return WindowConfig{}, r.err
	}

	// The cap only matters when it will actually be applied.
	if !cfg.VSync && cfg.FrameRate < 1 {
		raw, _ := lookup(SettingFrameRate)
		return WindowConfig{}, &ConfigError{Setting: SettingFrameRate, Value: raw, Err: ErrOutOfRange}
	}
	return cfg, nil
}

// ResolveRuntime builds the ambient Runtime settings from lookup.
func ResolveRuntime(lookup Lookup) (Runtime, error) {
	r := resolver{lookup: lookup}
	rt := Runtime{
		Backend:      strings.ToLower(r.text(SettingBackend, DefaultRuntime.Backend)),
		SettingsFile: r.text(SettingSettingsFile, DefaultRuntime.SettingsFile),
		LogLevel:     DefaultRuntime.LogLevel,
	}
	if raw, ok := lookup(SettingLogLevel); ok {
		level, err := log.ParseLevel(raw)
		if err != nil {
			return Runtime{}, &ConfigError{Setting: SettingLogLevel, Value: raw, Err: err}
		}
		rt.LogLevel = level
	}
	return rt, nil
}

// resolver keeps the first failure so a whole record can be read in one expression.
type resolver struct {
	lookup Lookup
	err    error
}

func (r *resolver) fail(name, raw string, err error) {
	if r.err == nil {
		r.err = &ConfigError{Setting: name, Value: raw, Err: err}
	}
}

func (r *resolver) text(name, def string) string {
	if raw, ok := r.lookup(name); ok {
		return raw
	}
	return def
}

func (r *resolver) integer(name string, def, least int) int {
	raw, ok := r.lookup(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseUint(raw, 10, 31)
	if err != nil {
		r.fail(name, raw, err)
		return def
	}
	if int(v) < least {
		r.fail(name, raw, ErrOutOfRange)
		return def
	}
	return int(v)
}

func (r *resolver) boolean(name string, def bool) bool {
	raw, ok := r.lookup(name)
	if !ok {
		return def
	}
	switch {
	case strings.EqualFold(raw, "true"):
		return true
	case strings.EqualFold(raw, "false"):
		return false
	}
	r.fail(name, raw, ErrInvalidBool)
	return def
}
