// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
)

// GL is the Driver backed by the current OpenGL context.
type GL struct{}

var (
	_ Driver       = (*GL)(nil)
	_ asyncDeleter = (*GL)(nil)
)

// InitGL loads the OpenGL function pointers. A context must be current.
func InitGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &GL{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (*GL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (*GL) CreateShader(stage Stage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (*GL) ShaderSource(shader uint32, src string) {
	csource, free := gl.Strs(src)
	defer free()
	length := int32(len(src))
	gl.ShaderSource(shader, 1, csource, &length)
}

func (*GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*GL) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*GL) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*GL) AttachShader(prog, shader uint32) {
	gl.AttachShader(prog, shader)
}

func (*GL) LinkProgram(prog uint32) {
	gl.LinkProgram(prog)
}

func (*GL) LinkStatus(prog uint32) bool {
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*GL) ProgramInfoLog(prog uint32) string {
	var logLength int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GL) DeleteProgram(prog uint32) {
	gl.DeleteProgram(prog)
}

// DeleteProgramAsync is used by the garbage collector cleanup, which
// does not run on the thread owning the context.
func (*GL) DeleteProgramAsync(prog uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteProgram(prog)
	})
}

func (*GL) UseProgram(prog uint32) {
	gl.UseProgram(prog)
}

func (*GL) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (*GL) AttribLocation(prog uint32, name string) int32 {
	return gl.GetAttribLocation(prog, gl.Str(name+"\x00"))
}

func (*GL) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (*GL) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (*GL) Uniform2f(loc int32, x, y float32) {
	gl.Uniform2f(loc, x, y)
}

func (*GL) Uniform3f(loc int32, x, y, z float32) {
	gl.Uniform3f(loc, x, y, z)
}

func (*GL) Uniform4f(loc int32, x, y, z, w float32) {
	gl.Uniform4f(loc, x, y, z, w)
}

// The matrices are column major, as opengl expects them, so no transpose.

func (*GL) UniformMatrix2fv(loc int32, m *[4]float32) {
	gl.UniformMatrix2fv(loc, 1, false, &m[0])
}

func (*GL) UniformMatrix3fv(loc int32, m *[9]float32) {
	gl.UniformMatrix3fv(loc, 1, false, &m[0])
}

func (*GL) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}
