// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/gopxl/mainthread/v2"

	"goshader/commandline"
	"goshader/conlog"
	"goshader/filesystem"
	"goshader/glh"
	"goshader/window"
)

//go:embed shaders
var defaultShaders embed.FS

func main() {
	if err := commandline.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	code := 0
	mainthread.Run(func() {
		code = run()
	})
	os.Exit(code)
}

func searchPath() (*filesystem.SearchPath, error) {
	base, err := fs.Sub(defaultShaders, "shaders")
	if err != nil {
		return nil, err
	}
	sp := filesystem.New(base)
	for _, d := range commandline.BaseDirectories() {
		if err := sp.AddDir(d); err != nil {
			return nil, err
		}
	}
	return sp, nil
}

func run() int {
	conlog.SetDeveloper(commandline.Developer())
	sp, err := searchPath()
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	conlog.DPrintf("Search path: %v\n", sp)

	var v *viewer
	err = mainthread.CallErr(func() error {
		if err := window.Init(); err != nil {
			return err
		}
		if err := window.Open(window.Config{
			Title:      "shaderview",
			Width:      int32(commandline.Width()),
			Height:     int32(commandline.Height()),
			Fsaa:       commandline.Fsaa(),
			Fullscreen: commandline.Fullscreen(),
			Hidden:     commandline.Check(),
		}); err != nil {
			return err
		}
		drv, err := glh.InitGL()
		if err != nil {
			return err
		}
		conlog.DPrintf("GL version: %s\n", drv.Version())
		if commandline.Developer() {
			window.EnableDebugOutput()
		}
		window.SetVSync(commandline.VSync())
		// paths from the command line are read from the OS first
		v = newViewer(drv, sp.WithOS())
		return nil
	})
	defer mainthread.Call(window.Shutdown)
	if err != nil {
		log.Printf("Could not set up video: %v", err)
		return 1
	}

	var loadErr error
	mainthread.Call(func() {
		loadErr = v.load(commandline.Shaders())
	})
	if commandline.Check() {
		// the diagnostics were already printed
		if loadErr != nil {
			return 1
		}
		fmt.Println("ok")
		return 0
	}
	defer mainthread.Call(v.delete)

	quit := false
	for !quit {
		mainthread.Call(func() {
			quit = v.frame()
		})
	}
	return 0
}
