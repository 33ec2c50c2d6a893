package main

import (
	"runtime"

	"github.com/ignite-laboratories/ember"
	"github.com/ignite-laboratories/ember/glfw"
	"github.com/ignite-laboratories/ember/opengl"
	"github.com/ignite-laboratories/ember/sdl2"
	log "github.com/sirupsen/logrus"
)

func init() {
	// Windowing and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

var platforms = ember.Backends{
	"glfw": func() ember.Platform { return glfw.New() },
	"sdl2": func() ember.Platform { return sdl2.New() },
}

func main() {
	rt, err := ember.PrepareRuntime(ember.Environ())
	if err != nil {
		log.WithError(err).Fatal("Invalid runtime setting")
	}
	log.SetLevel(rt.LogLevel)

	cfg, err := ember.ResolveConfig(ember.Environ())
	if err != nil {
		log.WithError(err).Fatal("Invalid window setting")
	}

	platform, err := platforms.Select(rt.Backend)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			ember.SettingBackend: rt.Backend,
		}).Fatal("Unknown backend")
	}

	if err := ember.Start(cfg, platform, opengl.New()); err != nil {
		log.WithError(err).Fatal("Window failed")
	}
}
