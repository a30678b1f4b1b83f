// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

func TestDefaultShaders(t *testing.T) {
	sp, err := searchPath()
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"default.vert", "default.frag"} {
		b, err := sp.ReadFile(n)
		if err != nil {
			t.Fatalf("No embedded %s: %v", n, err)
		}
		if !strings.HasPrefix(string(b), "#version 330 core") {
			t.Errorf("%s does not start with a version line", n)
		}
	}
	frag, _ := sp.ReadFile("default.frag")
	vert, _ := sp.ReadFile("default.vert")
	src := string(vert) + string(frag)
	for _, u := range standardUniforms {
		if !strings.Contains(src, " "+u+";") {
			t.Errorf("default shaders do not use uniform %q", u)
		}
	}
}

func TestPulse(t *testing.T) {
	tests := []struct {
		t, want float32
	}{
		{0, 0.5},
		{0.25, 1},
		{0.75, 0},
	}
	for _, tt := range tests {
		if got := pulse(tt.t); math32.Abs(got-tt.want) > 1e-5 {
			t.Errorf("pulse(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
