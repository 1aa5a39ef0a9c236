package core

import "log"

// Run drives the frame loop: poll events, update the tracker, reacquire the
// back buffer after a resize, render, swap, and log the drag points. It
// returns nil when the user quits and the failing error otherwise; the
// collaborators are constructed before Run and any construction failure is
// fatal to the caller.
func Run(surface Surface, renderer FrameRenderer, tr *Tracker, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	back, err := surface.BackBuffer()
	if err != nil {
		return err
	}

	for {
		surface.PollEvents()

		tr.BeginFrame()
		for _, ev := range surface.DrainEvents() {
			tr.Handle(ev)
		}
		tr.EndFrame()

		// Quit before rendering or swapping the frame it arrived on.
		if tr.ShouldQuit() {
			logger.Println("loop exit")
			return nil
		}

		if tr.TakeResize() {
			// Drop the old handle and take a fresh one at the current
			// dimensions; the surface owns the underlying storage.
			back, err = surface.BackBuffer()
			if err != nil {
				return err
			}
		}

		if err := renderer.Render(back); err != nil {
			return err
		}

		surface.SwapBuffers()
		logger.Printf("points: %v", tr.Points())
	}
}
