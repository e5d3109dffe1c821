// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"gocube/assets"
	cmdl "gocube/commandline"
	"gocube/config"
	"gocube/conlog"
	"gocube/glh/glcore"
	"gocube/input"
	"gocube/qtime"
	"gocube/render"
	"gocube/scene"
	"gocube/window"
)

func swapInterval(c *config.Config) int {
	if !c.Window.VSync {
		return 0
	}
	if i := cmdl.VSyncInterval(); i != 0 {
		return i
	}
	return 1
}

func newFrameState(c *config.Config, width, height int32) (*scene.FrameState, error) {
	b := input.DefaultBindings()
	if err := b.Apply(c.Bindings); err != nil {
		return nil, errors.Wrap(err, "key bindings")
	}
	s := scene.NewFrameState(width, height, b)
	s.Camera.Sensitivity = c.Camera.Sensitivity
	s.Camera.Fov = c.Camera.Fov
	s.Speeds = scene.Speeds{
		Camera: c.Speeds.Camera,
		Mix:    c.Speeds.Mix,
		Spin:   c.Speeds.Spin,
	}
	conlog.Debugf("bindings: %v", b)
	return s, nil
}

func run(c *config.Config) error {
	state, err := newFrameState(c, c.Window.Width, c.Window.Height)
	if err != nil {
		return err
	}

	if err := window.Init(window.Options{
		Title:        c.Window.Title,
		Width:        c.Window.Width,
		Height:       c.Window.Height,
		Fullscreen:   c.Window.Fullscreen,
		SwapInterval: swapInterval(c),
		Debug:        c.Debug,
	}); err != nil {
		return err
	}
	defer window.Shutdown()
	window.CaptureMouse(true)
	conlog.With("vsync", window.VSync(), "fullscreen", window.Fullscreen()).Info("window ready")

	r, err := render.New(glcore.Backend{}, render.Options{
		VertexShader:   c.Paths.VertexShader,
		FragmentShader: c.Paths.FragmentShader,
		Brick:          c.Paths.Brick,
		Face:           c.Paths.Face,
		ClearColor:     c.ClearColor,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	state.Width, state.Height = window.Size()
	r.Resize(state.Width, state.Height)

	var watcher *assets.Watcher
	if c.HotReload {
		watcher, err = assets.NewWatcher(c.Paths.VertexShader, c.Paths.FragmentShader)
		if err != nil {
			conlog.Warnf("shader hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	clock := qtime.NewClock()
	fps := newFPSCounter(c.Window.Title)
	for !state.Quit {
		dt := clock.Tick()
		for _, ev := range window.PollEvents() {
			state.Apply(ev)
		}
		if !window.InputFocus() {
			// key up events get lost while unfocused
			state.Keys.Clear()
		}
		state.Step(dt)

		if state.Resized {
			state.Resized = false
			r.Resize(state.Width, state.Height)
		}
		r.SetWireframe(state.Wireframe)
		if watcher != nil && len(watcher.Changed()) > 0 {
			if err := r.Reload(); err != nil {
				conlog.Errorf("shader reload: %v", err)
			} else {
				conlog.Printf("shaders reloaded")
			}
		}

		r.Draw(state)

		if state.Screenshot {
			state.Screenshot = false
			if name, err := r.Screenshot(c.Paths.Screenshots, state.Width, state.Height); err != nil {
				conlog.Errorf("screenshot: %v", err)
			} else {
				conlog.Printf("wrote %s", name)
			}
		}
		window.EndRendering()
		if t, ok := fps.frame(qtime.QTime()); ok {
			window.SetTitle(t)
		}
	}
	return nil
}

// fpsCounter produces a window title with the frame rate once a second.
type fpsCounter struct {
	title  string
	frames int
	since  time.Duration
}

func newFPSCounter(title string) *fpsCounter {
	return &fpsCounter{title: title, since: qtime.QTime()}
}

func (f *fpsCounter) frame(now time.Duration) (string, bool) {
	f.frames++
	d := now - f.since
	if d < time.Second {
		return "", false
	}
	t := fmt.Sprintf("%s - %.0f fps", f.title, float64(f.frames)/d.Seconds())
	f.frames = 0
	f.since = now
	return t, true
}
