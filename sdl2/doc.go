// Package sdl2 provides an ember platform backed by SDL2
package sdl2

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/ember"
)

var ModuleName = "sdl2"

func init() {
	ember.Report()
	core.SubmoduleReport(ember.ModuleName, ModuleName)
}

func Report() {}
