// SPDX-License-Identifier: GPL-2.0-or-later

// Package window owns the SDL window and its OpenGL 3.3 core context.
package window

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"gocube/conlog"
	"gocube/glh/glcore"
)

var (
	window  *sdl.Window
	context sdl.GLContext
)

type Options struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	// SwapInterval 0 disables vsync, -1 asks for adaptive sync.
	SwapInterval int
	// Debug requests a debug GL context.
	Debug bool
}

// Init creates the window and makes its GL context current. It needs to be
// called on the main thread.
func Init(o Options) error {
	v := sdl.Version{}
	sdl.GetVersion(&v)
	conlog.Printf("Found SDL version %d.%d.%d", v.Major, v.Minor, v.Patch)
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "initializing SDL")
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	cflags := int(sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if o.Debug {
		cflags |= sdl.GL_CONTEXT_DEBUG_FLAG
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, cflags)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if o.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	w, err := sdl.CreateWindow(o.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, o.Width, o.Height, flags)
	if err != nil {
		// retry without the depth/stencil sizes some drivers refuse
		sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 0)
		sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 16)
		w, err = sdl.CreateWindow(o.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, o.Width, o.Height, flags)
		if err != nil {
			sdl.Quit()
			return errors.Wrap(err, "creating window")
		}
	}
	window = w

	context, err = window.GLCreateContext()
	if err != nil {
		Shutdown()
		return errors.Wrap(err, "creating GL context")
	}
	if err := glcore.Init(); err != nil {
		Shutdown()
		return errors.Wrap(err, "initializing GL")
	}
	conlog.Printf("OpenGL version %s", glcore.Version())

	SetVSync(o.SwapInterval)
	return nil
}

// Size returns the drawable size in pixels, which differs from the window
// size on high DPI displays.
func Size() (int32, int32) {
	return window.GLGetDrawableSize()
}

func SetTitle(t string) {
	window.SetTitle(t)
}

// SetVSync sets the swap interval. Adaptive sync falls back to plain vsync.
func SetVSync(interval int) {
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		if interval == -1 {
			conlog.Warnf("adaptive vsync not supported, using vsync")
			SetVSync(1)
			return
		}
		conlog.Warnf("could not set swap interval %d: %v", interval, err)
	}
}

func VSync() bool {
	i, _ := sdl.GLGetSwapInterval()
	return i != 0
}

func Fullscreen() bool {
	return window.GetFlags()&sdl.WINDOW_FULLSCREEN != 0
}

func InputFocus() bool {
	return window.GetFlags()&(sdl.WINDOW_MOUSE_FOCUS|sdl.WINDOW_INPUT_FOCUS) != 0
}

// CaptureMouse hides the cursor and reports relative motion only.
func CaptureMouse(capture bool) {
	if sdl.SetRelativeMouseMode(capture) != 0 {
		conlog.Warnf("SDL_SetRelativeMouseMode(%v) failed: %v", capture, sdl.GetError())
	}
}

func EndRendering() {
	window.GLSwap()
}

func Shutdown() {
	if context != nil {
		sdl.GLDeleteContext(context)
		context = nil
	}
	if window != nil {
		window.Destroy()
		window = nil
	}
	sdl.Quit()
}
