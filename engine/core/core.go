package core

// Surface owns the OS window, the GL context, and the event queue.
type Surface interface {
	// PollEvents drains the OS queue without blocking; translated events are
	// held internally until the next DrainEvents.
	PollEvents()
	// DrainEvents returns the events queued since the last call, in delivery
	// order.
	DrainEvents() []Event
	// BackBuffer returns a handle for the current back buffer. The handle is
	// invalidated by resize events and must be reacquired.
	BackBuffer() (Framebuffer, error)
	SwapBuffers()
}

// Framebuffer identifies a render target and its pixel dimensions.
type Framebuffer struct {
	W, H int
}

// FrameRenderer performs one complete GPU submission into the target and
// reports a single aggregate result for the pass.
type FrameRenderer interface {
	Render(target Framebuffer) error
}

// Config for the window and renderer.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
