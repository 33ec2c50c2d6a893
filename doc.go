// Package ember opens a single OpenGL window and keeps it glowing until it is closed.
//
// Configuration is resolved once from the environment into a WindowConfig, which is then
// handed to Start along with a Platform (see the glfw and sdl2 subpackages) and a Renderer
// (see the opengl subpackage).
package ember

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "ember"

func init() {
	core.ModuleReport(ModuleName)
}

func Report() {}
