// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"goshader/filesystem"
)

var (
	check      bool
	developer  bool
	fullscreen bool
	vsync      bool

	fsaa = boolInt{false, 4}

	height int
	width  int

	vertex   string
	fragment string
	geometry string
	shader   string

	baseDirs dirList

	// where usage and errors go
	output io.Writer = os.Stderr
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

// dirList collects a repeated flag in order.
type dirList []string

func (d *dirList) Set(s string) error {
	if s == "" {
		return fmt.Errorf("empty directory")
	}
	*d = append(*d, s)
	return nil
}

func (d *dirList) String() string {
	return strings.Join(*d, ",")
}

func register(flags *flag.FlagSet) {
	check, developer, fullscreen, vsync = false, false, false, false
	fsaa = boolInt{false, 4}
	baseDirs = nil

	flags.BoolVar(&check, "check", false, "only compile and link, exit status 1 on failure")
	flags.BoolVar(&developer, "developer", false, "print developer messages")
	flags.BoolVar(&fullscreen, "f", false, "")
	flags.BoolVar(&fullscreen, "fullscreen", false, "")
	flags.BoolVar(&vsync, "vsync", true, "wait for vertical sync")

	flags.Var(&fsaa, "fsaa", "enable multisampling, optional number of samples")
	flags.Var(&baseDirs, "basedir", "directory to search shaders in, can be repeated; later ones win")

	flags.IntVar(&height, "height", 600, "window height")
	flags.IntVar(&width, "width", 800, "window width")

	flags.StringVar(&vertex, "vertex", "", "vertex shader file")
	flags.StringVar(&fragment, "fragment", "", "fragment shader file")
	flags.StringVar(&geometry, "geometry", "", "optional geometry shader file")
	flags.StringVar(&shader, "shader", "", "shader base name, uses <name>.vert and <name>.frag")
}

// Parse parses the command line arguments without the program name.
func Parse(args []string) error {
	flags := flag.NewFlagSet("shaderview", flag.ContinueOnError)
	flags.SetOutput(output)
	register(flags)
	// flag reports its own errors
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := validate(); err != nil {
		fmt.Fprintln(output, err)
		flags.Usage()
		return err
	}
	return nil
}

func validate() error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	if fsaa.set && fsaa.num <= 0 {
		return fmt.Errorf("invalid fsaa level %d", fsaa.num)
	}
	return nil
}

func Check() bool {
	return check
}

func Developer() bool {
	return developer
}

func Fullscreen() bool {
	return fullscreen
}

func VSync() bool {
	return vsync
}

// Fsaa returns the number of samples, 0 if disabled.
func Fsaa() int {
	if !fsaa.set {
		return 0
	}
	return fsaa.num
}

func Height() int {
	return height
}

func Width() int {
	return width
}

func BaseDirectories() []string {
	return baseDirs
}

// Shaders returns the vertex, geometry and fragment shader names.
// Explicit -vertex and -fragment take precedence over -shader.
// If nothing is given the embedded default is used.
func Shaders() (string, string, string) {
	v, f := vertex, fragment
	if shader != "" {
		sv, sf := filesystem.ShaderPair(shader)
		if v == "" {
			v = sv
		}
		if f == "" {
			f = sf
		}
	}
	if v == "" {
		v = "default.vert"
	}
	if f == "" {
		f = "default.frag"
	}
	return v, geometry, f
}
