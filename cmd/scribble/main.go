package main

import (
	"log"
	"runtime"

	"github.com/bryher/scribble/engine/colors"
	"github.com/bryher/scribble/engine/core"
	glbackend "github.com/bryher/scribble/engine/gfx/gl"
	"github.com/bryher/scribble/engine/platform"
)

func init() {
	// The GL context and the event loop live on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg := core.Config{
		Title:      "Hello, world; from OpenGL 3.3!",
		Width:      960,
		Height:     540,
		VSync:      true,
		ClearColor: colors.Black,
	}

	surface, err := platform.NewGLFWSurface(cfg)
	if err != nil {
		log.Fatalf("surface creation: %v", err)
	}

	program, err := glbackend.BuildProgram(vertexSource, fragmentSource, vertexLayout)
	if err != nil {
		log.Fatalf("program creation: %v", err)
	}

	mesh, err := glbackend.BuildMesh(sceneMeshDesc(), vertexLayout)
	if err != nil {
		log.Fatalf("mesh creation: %v", err)
	}

	renderer := glbackend.NewRenderer(program, mesh, cfg)
	defer renderer.Shutdown()

	if err := core.Run(surface, renderer, core.NewTracker(), nil); err != nil {
		log.Fatalf("render loop: %v", err)
	}
}
