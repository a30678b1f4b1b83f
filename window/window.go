// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"goshader/conlog"
)

var (
	window  *sdl.Window
	context sdl.GLContext
)

type Config struct {
	Title      string
	Width      int32
	Height     int32
	Fsaa       int
	Fullscreen bool
	// Hidden windows still get a GL context, enough to compile shaders.
	Hidden bool
}

func Get() *sdl.Window {
	return window
}

func Size() (int, int) {
	w, h := window.GLGetDrawableSize()
	return int(w), int(h)
}

func Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
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

func Open(cfg Config) error {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 6)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, func() int {
		if cfg.Fsaa > 0 {
			return 1
		}
		return 0
	}())
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, cfg.Fsaa)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	create := func() (*sdl.Window, error) {
		return sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, cfg.Width, cfg.Height, flags)
	}
	w, err := create()
	if err != nil {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 0)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 0)
		w, err = create()
	}
	if err != nil {
		sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 16)
		sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 0)
		w, err = create()
	}
	if err != nil {
		return errors.Wrap(err, "couldn't create window")
	}
	window = w

	context, err = window.GLCreateContext()
	if err != nil {
		// Let the driver pick whatever version it has.
		sdl.GLResetAttributes()
		context, err = window.GLCreateContext()
	}
	if err != nil {
		window.Destroy()
		window = nil
		return errors.Wrap(err, "couldn't create GL context")
	}
	return nil
}

func SetVSync(on bool) {
	i := 0
	if on {
		i = 1
	}
	if err := sdl.GLSetSwapInterval(i); err != nil {
		conlog.Printf("Could not set swap interval: %v\n", err)
	}
}

func VSync() bool {
	i, _ := sdl.GLGetSwapInterval()
	return i == 1
}

func Swap() {
	window.GLSwap()
}

// EnableDebugOutput routes GL debug messages to the console.
// Needs an initialized 4.3+ context.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_HIGH {
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
		return
	}
	conlog.DPrintf("[GL_DEBUG] source %d gltype %d id %d severity %d: %s\n", source, gltype, id, severity, message)
}
