// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
)

const (
	ArrayBuffer        = gl.ARRAY_BUFFER
	ElementArrayBuffer = gl.ELEMENT_ARRAY_BUFFER
)

type Buffer struct {
	buf     uint32
	target  uint32
	cleanup runtime.Cleanup
}

func NewBuffer(target uint32) *Buffer {
	b := &Buffer{
		target: target,
	}
	gl.GenBuffers(1, &b.buf)
	b.cleanup = runtime.AddCleanup(b, deleteBuffer, b.buf)
	return b
}

func deleteBuffer(buf uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteBuffers(1, &buf)
	})
}

func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.buf)
}

// SetData sets the data for this buffer. It needs to be bound first.
func (b *Buffer) SetData(size int, data unsafe.Pointer) {
	gl.BufferData(b.target, size, data, gl.STATIC_DRAW)
}

// SetFloats binds the buffer and uploads data.
func (b *Buffer) SetFloats(data []float32) {
	b.Bind()
	if len(data) == 0 {
		gl.BufferData(b.target, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(b.target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (b *Buffer) Delete() {
	if b.buf == 0 {
		return
	}
	b.cleanup.Stop()
	gl.DeleteBuffers(1, &b.buf)
	b.buf = 0
}

type VertexArray struct {
	a       uint32
	cleanup runtime.Cleanup
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.a)
	va.cleanup = runtime.AddCleanup(va, deleteVertexArray, va.a)
	return va
}

func deleteVertexArray(va uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteVertexArrays(1, &va)
	})
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.a)
}

// Attrib describes float attribute loc of the currently bound array
// buffer. stride and offset are counted in floats.
func (va *VertexArray) Attrib(loc int32, size, stride, offset int) {
	if loc == NotFound {
		return
	}
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointerWithOffset(uint32(loc), int32(size), gl.FLOAT, false, int32(stride*4), uintptr(offset*4))
}

func (va *VertexArray) Delete() {
	if va.a == 0 {
		return
	}
	va.cleanup.Stop()
	gl.DeleteVertexArrays(1, &va.a)
	va.a = 0
}
