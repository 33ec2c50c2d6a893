// Package opengl resolves OpenGL 3.3 core entry points and clears frames with them.
package opengl

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/ember"
)

var ModuleName = "opengl"

func init() {
	ember.Report()
	core.SubmoduleReport(ember.ModuleName, ModuleName)
}

func Report() {}
