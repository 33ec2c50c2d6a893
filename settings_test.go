package ember_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ignite-laboratories/ember"
	log "github.com/sirupsen/logrus"
)

func unset(t *testing.T, name string) {
	t.Helper()
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("could not unset %s: %v", name, err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(name) })
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	contents := "EMBER_TEST_FROM_FILE=file\nEMBER_TEST_OVERRIDDEN=file\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("could not write settings: %v", err)
	}
	unset(t, "EMBER_TEST_FROM_FILE")
	t.Setenv("EMBER_TEST_OVERRIDDEN", "env")

	if err := ember.LoadSettings(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := os.Getenv("EMBER_TEST_FROM_FILE"); v != "file" {
		t.Fatalf("expected file value, got %q", v)
	}
	if v := os.Getenv("EMBER_TEST_OVERRIDDEN"); v != "env" {
		t.Fatalf("expected the environment to win, got %q", v)
	}
}

func TestLoadSettingsFeedsResolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.env")
	if err := os.WriteFile(path, []byte("WIDTH=640\nVSYNC=True\n"), 0o600); err != nil {
		t.Fatalf("could not write settings: %v", err)
	}
	unset(t, "WIDTH")
	unset(t, "VSYNC")

	if err := ember.LoadSettings(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	only := func(name string) (string, bool) {
		if name == "WIDTH" || name == "VSYNC" {
			return ember.Environ()(name)
		}
		return "", false
	}
	cfg, err := ember.ResolveConfig(only)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 640 || !cfg.VSync {
		t.Fatalf("expected width 640 with vsync, got %+v", cfg)
	}
}

func TestLoadSettingsMissing(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		if err := ember.LoadSettings(filepath.Join(t.TempDir(), "absent.env")); err != nil {
			t.Fatalf("expected a missing file to be ignored, got %v", err)
		}
	})
	t.Run("no path", func(t *testing.T) {
		if err := ember.LoadSettings(""); err != nil {
			t.Fatalf("expected an empty path to be ignored, got %v", err)
		}
	})
}

func TestLoadSettingsUnreadable(t *testing.T) {
	err := ember.LoadSettings(t.TempDir())
	var ce *ember.ConfigError
	if !errors.As(err, &ce) || ce.Setting != ember.SettingSettingsFile {
		t.Fatalf("expected a settings file config error, got %v", err)
	}
}

func TestPrepareRuntimeUsesNamedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.env")
	if err := os.WriteFile(path, []byte("BACKEND=sdl2\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("could not write settings: %v", err)
	}
	t.Setenv(ember.SettingSettingsFile, path)
	unset(t, ember.SettingBackend)
	unset(t, ember.SettingLogLevel)

	rt, err := ember.PrepareRuntime(ember.Environ())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := ember.Runtime{Backend: "sdl2", LogLevel: log.DebugLevel, SettingsFile: path}
	if rt != expected {
		t.Fatalf("expected != actual\nexpected: %+v\nactual: %+v", expected, rt)
	}
}

func TestPrepareRuntimeUnreadableFile(t *testing.T) {
	t.Setenv(ember.SettingSettingsFile, t.TempDir())

	_, err := ember.PrepareRuntime(ember.Environ())
	var ce *ember.ConfigError
	if !errors.As(err, &ce) || ce.Setting != ember.SettingSettingsFile {
		t.Fatalf("expected a settings file config error, got %v", err)
	}
}
