// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// The setters look the location up on every call. Names that are not an
// active uniform of the program are silently ignored.

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.Uniform1i(loc, i)
	}
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	p.SetVec2f(name, v[0], v[1])
}

func (p *Program) SetVec2f(name string, x, y float32) {
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.Uniform2f(loc, x, y)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	p.SetVec3f(name, v[0], v[1], v[2])
}

func (p *Program) SetVec3f(name string, x, y, z float32) {
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.Uniform3f(loc, x, y, z)
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	p.SetVec4f(name, v[0], v[1], v[2], v[3])
}

func (p *Program) SetVec4f(name string, x, y, z, w float32) {
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.Uniform4f(loc, x, y, z, w)
	}
}

// mgl32 matrices are column major like opengl.

func (p *Program) SetMat2(name string, m mgl32.Mat2) {
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.UniformMatrix2fv(loc, (*[4]float32)(&m))
	}
}

func (p *Program) SetMat3(name string, m mgl32.Mat3) {
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.UniformMatrix3fv(loc, (*[9]float32)(&m))
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.UniformLocation(name); loc != NotFound {
		p.drv.UniformMatrix4fv(loc, (*[16]float32)(&m))
	}
}
