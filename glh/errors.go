// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"
	"strings"
)

type Kind int

const (
	FileRead Kind = iota
	Compile
	Link
	UniformNotFound
)

func (k Kind) String() string {
	switch k {
	case FileRead:
		return "file read"
	case Compile:
		return "compile"
	case Link:
		return "link"
	case UniformNotFound:
		return "uniform not found"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a single failure while building a program.
type Error struct {
	Kind  Kind
	Stage Stage  // only set for Compile
	Path  string // only set for FileRead
	Name  string // only set for UniformNotFound
	Log   string // driver info log for Compile and Link
	Err   error  // underlying I/O error for FileRead
}

func (e *Error) category() string {
	switch e.Kind {
	case FileRead:
		return "SHADER::FILE_NOT_SUCCESSFULLY_READ"
	case Compile:
		return "SHADER_COMPILATION_ERROR::" + e.Stage.String()
	case Link:
		return "PROGRAM_LINKING_ERROR::PROGRAM"
	}
	return "SHADER::" + strings.ToUpper(strings.ReplaceAll(e.Kind.String(), " ", "_"))
}

// Error renders the diagnostic line: ERROR::<CATEGORY>: <message>
func (e *Error) Error() string {
	msg := e.Log
	if e.Kind == UniformNotFound {
		msg = e.Name
	}
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("ERROR::%s: %s", e.category(), strings.TrimSpace(msg))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// BuildError collects every failure of one program build, in order.
type BuildError struct {
	Errs []*Error
}

func (e *BuildError) Error() string {
	lines := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "\n")
}

func (e *BuildError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errs))
	for _, err := range e.Errs {
		errs = append(errs, err)
	}
	return errs
}

// Has reports whether a failure of kind k occurred.
func (e *BuildError) Has(k Kind) bool {
	for _, err := range e.Errs {
		if err.Kind == k {
			return true
		}
	}
	return false
}
