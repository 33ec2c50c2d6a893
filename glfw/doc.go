// Package glfw provides an ember platform backed by GLFW
package glfw

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/ember"
)

var ModuleName = "glfw"

func init() {
	ember.Report()
	core.SubmoduleReport(ember.ModuleName, ModuleName)
}

func Report() {}
