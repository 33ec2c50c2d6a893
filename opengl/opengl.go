package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/ember"
)

// Renderer issues its calls through go-gl against whichever context is current.
type Renderer struct {
	loaded  bool
	Version string
}

func New() *Renderer {
	return &Renderer{}
}

// Load resolves the entry points. A context must be current on the calling thread.
func (r *Renderer) Load() error {
	if err := gl.Init(); err != nil {
		return err
	}
	r.loaded = true
	r.Version = gl.GoStr(gl.GetString(gl.VERSION))
	core.Verbosef(ModuleName, "initialized with %s\n", r.Version)
	return nil
}

// Unload marks the entry points as released; later Clear calls do nothing.
func (r *Renderer) Unload() {
	if !r.loaded {
		return
	}
	r.loaded = false
	core.Verbosef(ModuleName, "released\n")
}

func (r *Renderer) Clear(c ember.Color) {
	if !r.loaded {
		return
	}
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

var _ ember.Renderer = (*Renderer)(nil)
