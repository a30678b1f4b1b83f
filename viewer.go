// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"io/fs"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"goshader/conlog"
	"goshader/glh"
	"goshader/window"
)

// uniforms the viewer feeds every frame
var standardUniforms = []string{"projection", "time", "pulse", "resolution", "animate"}

// position xy, texcoord uv
var quadVertices = []float32{
	-1, -1, 0, 0,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, 1, 1, 1,
}

type viewer struct {
	drv     glh.Driver
	fsys    fs.FS
	prog    *glh.Program
	quad    *glh.VertexArray
	buf     *glh.Buffer
	start   time.Time
	animate bool
}

func newViewer(drv glh.Driver, fsys fs.FS) *viewer {
	return &viewer{
		drv:     drv,
		fsys:    fsys,
		start:   time.Now(),
		animate: true,
	}
}

func (v *viewer) load(vertex, geometry, fragment string) error {
	var err error
	if geometry != "" {
		v.prog, err = glh.LoadWithGeometry(v.drv, v.fsys, vertex, geometry, fragment)
	} else {
		v.prog, err = glh.LoadFS(v.drv, v.fsys, vertex, fragment)
	}
	// a broken program still gets a quad, a later reload may fix it
	v.setupQuad()
	if err != nil {
		return err
	}
	conlog.DPrintf("Linked %s + %s\n", vertex, fragment)
	if err := v.prog.CheckUniforms(standardUniforms...); err != nil {
		conlog.DPrintf("%v\n", err)
	}
	return nil
}

func (v *viewer) setupQuad() {
	if v.quad == nil {
		v.quad = glh.NewVertexArray()
		v.buf = glh.NewBuffer(glh.ArrayBuffer)
		v.buf.SetFloats(quadVertices)
	}
	v.quad.Bind()
	v.buf.Bind()
	v.quad.Attrib(v.prog.AttribLocation("position"), 2, 4, 0)
	v.quad.Attrib(v.prog.AttribLocation("texcoord"), 2, 4, 2)
}

func (v *viewer) reload() {
	if err := v.prog.Reload(); err != nil {
		// the old program keeps running
		conlog.Printf("Reload failed, keeping the previous program\n")
		return
	}
	conlog.Printf("Reloaded shaders\n")
	v.setupQuad()
}

func (v *viewer) delete() {
	if v.prog != nil {
		v.prog.Delete()
	}
	if v.quad != nil {
		v.quad.Delete()
		v.buf.Delete()
	}
}

// pulse is a smooth 0..1 wave with a one second period.
func pulse(t float32) float32 {
	return 0.5 + 0.5*math32.Sin(2*math32.Pi*t)
}

// handleEvents returns true if the viewer should quit.
func (v *viewer) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				return true
			case sdl.K_r:
				v.reload()
			case sdl.K_SPACE:
				v.animate = !v.animate
			case sdl.K_v:
				window.SetVSync(!window.VSync())
			}
		}
	}
	return false
}

func (v *viewer) frame() bool {
	if v.handleEvents() {
		return true
	}
	w, h := window.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	t := float32(time.Since(v.start).Seconds())
	v.prog.Use()
	v.prog.SetMat4("projection", mgl32.Ortho2D(-1, 1, -1, 1))
	v.prog.SetFloat("time", t)
	v.prog.SetFloat("pulse", pulse(t))
	v.prog.SetVec2f("resolution", float32(w), float32(h))
	v.prog.SetBool("animate", v.animate)

	v.quad.Bind()
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	window.Swap()
	return false
}
