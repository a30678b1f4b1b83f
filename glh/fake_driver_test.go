// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// fakeDriver understands just enough glsl to compile, link and resolve
// uniforms: a #version line, and "in", "out" and "uniform" declarations.
type fakeDriver struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	current  uint32
	calls    []string

	// programs released by the garbage collector
	mu       sync.Mutex
	released []uint32
}

type fakeShader struct {
	stage    Stage
	src      string
	compiled bool
	log      string
	deleted  bool
	ins      map[string]bool
	outs     map[string]bool
	uniforms []string
}

type fakeProgram struct {
	shaders  []uint32
	linked   bool
	log      string
	deleted  bool
	uniforms map[string]int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
	}
}

func (d *fakeDriver) id() uint32 {
	d.next++
	return d.next
}

func (d *fakeDriver) CreateShader(stage Stage) uint32 {
	id := d.id()
	d.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (d *fakeDriver) ShaderSource(shader uint32, src string) {
	d.shaders[shader].src = src
}

func (d *fakeDriver) CompileShader(shader uint32) {
	s := d.shaders[shader]
	s.ins = make(map[string]bool)
	s.outs = make(map[string]bool)
	s.uniforms = nil
	lines := strings.Split(strings.TrimSpace(s.src), "\n")
	if !strings.HasPrefix(lines[0], "#version") {
		s.log = "0:1(1): error: missing #version\n"
		return
	}
	for i, l := range lines[1:] {
		if strings.Contains(l, "@") {
			s.log = fmt.Sprintf("0:%d(1): error: syntax error, unexpected '@'\n", i+2)
			return
		}
		f := strings.Fields(strings.TrimSuffix(strings.TrimSpace(l), ";"))
		if len(f) != 3 {
			continue
		}
		switch f[0] {
		case "in":
			s.ins[f[2]] = true
		case "out":
			s.outs[f[2]] = true
		case "uniform":
			s.uniforms = append(s.uniforms, f[2])
		}
	}
	s.compiled = true
}

func (d *fakeDriver) CompileStatus(shader uint32) bool {
	return d.shaders[shader].compiled
}

func (d *fakeDriver) ShaderInfoLog(shader uint32) string {
	return d.shaders[shader].log
}

func (d *fakeDriver) DeleteShader(shader uint32) {
	d.shaders[shader].deleted = true
}

func (d *fakeDriver) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &fakeProgram{}
	return id
}

func (d *fakeDriver) AttachShader(prog, shader uint32) {
	d.programs[prog].shaders = append(d.programs[prog].shaders, shader)
}

func (d *fakeDriver) LinkProgram(prog uint32) {
	p := d.programs[prog]
	p.linked = false
	p.uniforms = nil
	var names []string
	for i, id := range p.shaders {
		s := d.shaders[id]
		if !s.compiled {
			p.log = fmt.Sprintf("error: %s shader not compiled\n", strings.ToLower(s.stage.String()))
			return
		}
		if i > 0 {
			prev := d.shaders[p.shaders[i-1]]
			for in := range s.ins {
				if !prev.outs[in] {
					p.log = fmt.Sprintf("error: %s shader input `%s' has no matching output\n", strings.ToLower(s.stage.String()), in)
					return
				}
			}
		}
		names = append(names, s.uniforms...)
	}
	sort.Strings(names)
	p.uniforms = make(map[string]int32)
	for _, n := range names {
		if _, ok := p.uniforms[n]; !ok {
			p.uniforms[n] = int32(len(p.uniforms))
		}
	}
	p.linked = true
}

func (d *fakeDriver) LinkStatus(prog uint32) bool {
	return d.programs[prog].linked
}

func (d *fakeDriver) ProgramInfoLog(prog uint32) string {
	return d.programs[prog].log
}

func (d *fakeDriver) DeleteProgram(prog uint32) {
	if p, ok := d.programs[prog]; ok {
		p.deleted = true
	}
	if d.current == prog {
		d.current = 0
	}
}

// DeleteProgramAsync runs on the cleanup goroutine and must not touch
// the maps.
func (d *fakeDriver) DeleteProgramAsync(prog uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.released = append(d.released, prog)
}

func (d *fakeDriver) wasReleased(prog uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range d.released {
		if r == prog {
			return true
		}
	}
	return false
}

func (d *fakeDriver) UseProgram(prog uint32) {
	d.current = prog
}

func (d *fakeDriver) UniformLocation(prog uint32, name string) int32 {
	p, ok := d.programs[prog]
	if !ok || !p.linked {
		return NotFound
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return NotFound
}

func (d *fakeDriver) AttribLocation(prog uint32, name string) int32 {
	p, ok := d.programs[prog]
	if !ok || !p.linked || len(p.shaders) == 0 {
		return NotFound
	}
	ins := make([]string, 0)
	for in := range d.shaders[p.shaders[0]].ins {
		ins = append(ins, in)
	}
	sort.Strings(ins)
	for i, in := range ins {
		if in == name {
			return int32(i)
		}
	}
	return NotFound
}

func (d *fakeDriver) call(format string, v ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, v...))
}

func (d *fakeDriver) Uniform1i(loc int32, v int32) {
	d.call("Uniform1i(%d, %d)", loc, v)
}

func (d *fakeDriver) Uniform1f(loc int32, v float32) {
	d.call("Uniform1f(%d, %v)", loc, v)
}

func (d *fakeDriver) Uniform2f(loc int32, x, y float32) {
	d.call("Uniform2f(%d, %v, %v)", loc, x, y)
}

func (d *fakeDriver) Uniform3f(loc int32, x, y, z float32) {
	d.call("Uniform3f(%d, %v, %v, %v)", loc, x, y, z)
}

func (d *fakeDriver) Uniform4f(loc int32, x, y, z, w float32) {
	d.call("Uniform4f(%d, %v, %v, %v, %v)", loc, x, y, z, w)
}

func (d *fakeDriver) UniformMatrix2fv(loc int32, m *[4]float32) {
	d.call("UniformMatrix2fv(%d, %v)", loc, *m)
}

func (d *fakeDriver) UniformMatrix3fv(loc int32, m *[9]float32) {
	d.call("UniformMatrix3fv(%d, %v)", loc, *m)
}

func (d *fakeDriver) UniformMatrix4fv(loc int32, m *[16]float32) {
	d.call("UniformMatrix4fv(%d, %v)", loc, *m)
}

func (d *fakeDriver) liveShaders() int {
	n := 0
	for _, s := range d.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}
