// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Stage identifies one shader stage. The values are the GL enums.
type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	GeometryStage Stage = gl.GEOMETRY_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "VERTEX"
	case GeometryStage:
		return "GEOMETRY"
	case FragmentStage:
		return "FRAGMENT"
	}
	return "UNKNOWN"
}

// NotFound is the location the driver reports for names that are not
// active in a linked program.
const NotFound int32 = -1

// Driver is the graphics driver a Program talks to. All calls must come
// from the thread that owns the driver context.
type Driver interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(prog, shader uint32)
	LinkProgram(prog uint32)
	LinkStatus(prog uint32) bool
	ProgramInfoLog(prog uint32) string
	DeleteProgram(prog uint32)
	UseProgram(prog uint32)

	UniformLocation(prog uint32, name string) int32
	AttribLocation(prog uint32, name string) int32

	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4f(loc int32, x, y, z, w float32)
	UniformMatrix2fv(loc int32, m *[4]float32)
	UniformMatrix3fv(loc int32, m *[9]float32)
	UniformMatrix4fv(loc int32, m *[16]float32)
}

// asyncDeleter is implemented by drivers which can not be called from
// arbitrary goroutines and need the delete forwarded to their own thread.
type asyncDeleter interface {
	DeleteProgramAsync(prog uint32)
}
