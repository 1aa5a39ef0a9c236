package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/bryher/scribble/engine/core"
)

// Renderer draws one program+mesh pair into a target framebuffer each frame.
// It implements core.FrameRenderer.
type Renderer struct {
	program *Program
	mesh    *Mesh
	clear   [4]float32
}

func NewRenderer(program *Program, mesh *Mesh, cfg core.Config) *Renderer {
	return &Renderer{program: program, mesh: mesh, clear: cfg.ClearColor}
}

// Render performs the frame's single GPU submission: clear the target, bind
// the program, issue the one indexed draw. Default raster state throughout,
// no culling and no blending. The whole pass reports one aggregate result.
func (r *Renderer) Render(target core.Framebuffer) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(target.W), int32(target.H))

	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	if err := r.program.Bind(); err != nil {
		return err
	}
	r.mesh.Draw()
	gl.UseProgram(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("render pass failed: gl error 0x%04x", code)
	}
	return nil
}

// Shutdown releases the GPU resources, mesh first, then program.
func (r *Renderer) Shutdown() {
	if r.mesh != nil {
		r.mesh.Release()
	}
	if r.program != nil {
		r.program.Release()
	}
}
