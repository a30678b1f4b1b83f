// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"io/fs"
	"os"
	"runtime"

	"github.com/pkg/errors"

	"goshader/conlog"
)

type Status int

const (
	Unlinked Status = iota
	Linked
	Broken
	Deleted
)

func (s Status) String() string {
	switch s {
	case Unlinked:
		return "unlinked"
	case Linked:
		return "linked"
	case Broken:
		return "broken"
	case Deleted:
		return "deleted"
	}
	return "unknown"
}

// source is one stage of a program. If path is empty text is used as is,
// otherwise text is (re)read from path on every build.
type source struct {
	stage Stage
	path  string
	text  string
}

// Program is a linked shader program. The handle is owned by the Program
// and released by Delete, or by the garbage collector if Delete is never
// called.
type Program struct {
	drv     Driver
	fsys    fs.FS
	sources []source

	prog    uint32
	status  Status
	err     error
	cleanup runtime.Cleanup
}

type handle struct {
	drv  Driver
	prog uint32
}

func releaseProgram(h handle) {
	if d, ok := h.drv.(asyncDeleter); ok {
		d.DeleteProgramAsync(h.prog)
		return
	}
	h.drv.DeleteProgram(h.prog)
}

// Load builds a program from a vertex and a fragment shader file.
// The returned Program is never nil, even if building failed. Every
// failure is printed to the console and returned in a *BuildError.
func Load(drv Driver, vertexPath, fragmentPath string) (*Program, error) {
	return LoadFS(drv, nil, vertexPath, fragmentPath)
}

// LoadFS is like Load but reads the files from fsys. A nil fsys reads
// from the operating system.
func LoadFS(drv Driver, fsys fs.FS, vertexPath, fragmentPath string) (*Program, error) {
	return newProgram(drv, fsys, []source{
		{stage: VertexStage, path: vertexPath},
		{stage: FragmentStage, path: fragmentPath},
	})
}

func LoadWithGeometry(drv Driver, fsys fs.FS, vertexPath, geometryPath, fragmentPath string) (*Program, error) {
	return newProgram(drv, fsys, []source{
		{stage: VertexStage, path: vertexPath},
		{stage: GeometryStage, path: geometryPath},
		{stage: FragmentStage, path: fragmentPath},
	})
}

// NewProgram builds a program from in memory shader sources.
func NewProgram(drv Driver, vertex, fragment string) (*Program, error) {
	return newProgram(drv, nil, []source{
		{stage: VertexStage, text: vertex},
		{stage: FragmentStage, text: fragment},
	})
}

func newProgram(drv Driver, fsys fs.FS, sources []source) (*Program, error) {
	p := &Program{
		drv:     drv,
		fsys:    fsys,
		sources: sources,
		status:  Unlinked,
	}
	prog, err := build(drv, fsys, sources)
	p.set(prog, err)
	if err != nil {
		return p, err
	}
	return p, nil
}

func (p *Program) set(prog uint32, err *BuildError) {
	p.prog = prog
	p.status = Linked
	p.err = nil
	if err != nil {
		p.status = Broken
		p.err = err
	}
	p.cleanup = runtime.AddCleanup(p, releaseProgram, handle{p.drv, prog})
}

func readSource(fsys fs.FS, path string) (string, error) {
	var b []byte
	var err error
	if fsys == nil {
		b, err = os.ReadFile(path)
	} else {
		b, err = fs.ReadFile(fsys, path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "could not read %s", path)
	}
	return string(b), nil
}

func report(errs []*Error, err *Error) []*Error {
	conlog.Printf("%v\n", err)
	return append(errs, err)
}

// build reads, compiles and links. It always returns a program handle.
// Failed reads continue with empty source, failed stages are still
// attached and linked.
func build(drv Driver, fsys fs.FS, sources []source) (uint32, *BuildError) {
	var errs []*Error
	texts := make([]string, len(sources))
	for i, s := range sources {
		if s.path == "" {
			texts[i] = s.text
			continue
		}
		t, err := readSource(fsys, s.path)
		if err != nil {
			errs = report(errs, &Error{Kind: FileRead, Path: s.path, Err: err})
		}
		texts[i] = t
	}

	shaders := make([]uint32, 0, len(sources))
	for i, s := range sources {
		sh := drv.CreateShader(s.stage)
		drv.ShaderSource(sh, texts[i])
		drv.CompileShader(sh)
		if !drv.CompileStatus(sh) {
			errs = report(errs, &Error{Kind: Compile, Stage: s.stage, Log: drv.ShaderInfoLog(sh)})
		}
		shaders = append(shaders, sh)
	}

	prog := drv.CreateProgram()
	for _, sh := range shaders {
		drv.AttachShader(prog, sh)
	}
	drv.LinkProgram(prog)
	if !drv.LinkStatus(prog) {
		errs = report(errs, &Error{Kind: Link, Log: drv.ProgramInfoLog(prog)})
	}
	for _, sh := range shaders {
		drv.DeleteShader(sh)
	}
	if len(errs) != 0 {
		return prog, &BuildError{Errs: errs}
	}
	return prog, nil
}

// Reload rebuilds the program from its sources. On success the new
// program replaces the old one, which is deleted; the caller has to Use
// it again. On failure the old program stays in place.
func (p *Program) Reload() error {
	if p.status == Deleted {
		return errors.New("reload of deleted program")
	}
	prog, err := build(p.drv, p.fsys, p.sources)
	if err != nil {
		p.drv.DeleteProgram(prog)
		return err
	}
	p.cleanup.Stop()
	p.drv.DeleteProgram(p.prog)
	p.set(prog, nil)
	return nil
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.status == Deleted {
		return
	}
	p.cleanup.Stop()
	p.drv.DeleteProgram(p.prog)
	p.prog = 0
	p.status = Deleted
}

// Use makes p the current program of the driver.
func (p *Program) Use() {
	if p.status == Deleted {
		return
	}
	p.drv.UseProgram(p.prog)
}

func (p *Program) ID() uint32 {
	return p.prog
}

func (p *Program) Status() Status {
	return p.status
}

func (p *Program) Linked() bool {
	return p.status == Linked
}

// Err returns the *BuildError of the build that produced the current
// handle, or nil.
func (p *Program) Err() error {
	return p.err
}

func (p *Program) AttribLocation(n string) int32 {
	if p.status == Deleted {
		return NotFound
	}
	return p.drv.AttribLocation(p.prog, n)
}

func (p *Program) UniformLocation(n string) int32 {
	if p.status == Deleted {
		return NotFound
	}
	return p.drv.UniformLocation(p.prog, n)
}

// CheckUniforms reports every name the program has no active uniform
// for. Unlike the setters it does not stay silent about them.
func (p *Program) CheckUniforms(names ...string) error {
	var errs []*Error
	for _, n := range names {
		if p.UniformLocation(n) == NotFound {
			errs = append(errs, &Error{Kind: UniformNotFound, Name: n})
		}
	}
	if len(errs) != 0 {
		return &BuildError{Errs: errs}
	}
	return nil
}
