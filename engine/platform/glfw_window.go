package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/bryher/scribble/engine/core"
)

// GLFWSurface implements core.Surface. GLFW callbacks fire during PollEvents;
// translated events queue up until the frame drains them.
type GLFWSurface struct {
	w     *glfw.Window
	queue []core.Event
}

// NewGLFWSurface creates the window and the GL context. Must be called on the
// main thread before any GL calls.
func NewGLFWSurface(cfg core.Config) (*GLFWSurface, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires the forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	s := &GLFWSurface{w: win}

	// Callbacks -> queue core.Event for the frame's drain.
	win.SetCloseCallback(func(*glfw.Window) { s.push(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		s.push(core.EventFramebufferSize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		s.push(core.EventCursorPos{X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		s.push(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := translateButton(button)
		if !ok {
			return
		}
		s.push(core.EventMouseButton{Button: b, Down: action == glfw.Press, Mods: translateMods(mods)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		s.push(core.EventScroll{XOff: xoff, YOff: yoff})
	})

	return s, nil
}

func (s *GLFWSurface) push(ev core.Event) { s.queue = append(s.queue, ev) }

// core.Surface impl
func (s *GLFWSurface) PollEvents() { glfw.PollEvents() }

func (s *GLFWSurface) DrainEvents() []core.Event {
	evs := s.queue
	s.queue = nil
	return evs
}

func (s *GLFWSurface) SwapBuffers() { s.w.SwapBuffers() }

// BackBuffer returns a handle for the default framebuffer at its current
// pixel size. Callers reacquire it after every resize; the size may be zero
// while the window is minimized.
func (s *GLFWSurface) BackBuffer() (core.Framebuffer, error) {
	w, h := s.w.GetFramebufferSize()
	return core.Framebuffer{W: w, H: h}, nil
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	default:
		return core.KeyUnknown
	}
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return core.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
