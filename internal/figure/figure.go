// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure provides the output plumbing shared by the figure
// commands: where figures are written, what they are called, and how
// to open them once they're written.
package figure

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/kballard/go-shellquote"
)

// Flags configures figure output.
type Flags struct {
	// Dir is the directory figures are written to.
	Dir string

	// Name is the base name of output files, without extension.
	Name string

	// Open is a shell-quoted command used to open each written
	// figure. The figure's path is appended as the last argument.
	// If Open is empty, figures are not opened.
	Open string

	// Width and Height are the figure size in pixels.
	Width, Height int

	written []string
}

// Register adds the figure flags to fs, using name, width, and height
// as defaults.
func (f *Flags) Register(fs *flag.FlagSet, name string, width, height int) {
	fs.StringVar(&f.Dir, "o", ".", "write figures to `dir`")
	fs.StringVar(&f.Name, "name", name, "base `name` of output files")
	fs.StringVar(&f.Open, "open", "", "open written figures with shell `command` (e.g., "+shellquote.Join(DefaultOpener()...)+")")
	fs.IntVar(&f.Width, "width", width, "figure `width` in pixels")
	fs.IntVar(&f.Height, "height", height, "figure `height` in pixels")
}

// Path returns the output path for this figure with extension ext
// (for example, ".svg").
func (f *Flags) Path(ext string) string {
	dir := f.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, f.Name+ext)
}

// Write creates the output file with extension ext and calls render
// to fill it.
func (f *Flags) Write(ext string, render func(w io.Writer) error) error {
	if f.Dir != "" {
		if err := os.MkdirAll(f.Dir, 0777); err != nil {
			return err
		}
	}
	path := f.Path(ext)
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(out); err != nil {
		out.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	f.written = append(f.written, path)
	return nil
}

// Written returns the paths of the files written so far.
func (f *Flags) Written() []string {
	return f.written
}

// OpenAll runs the Open command on every written file. Failures are
// logged but not fatal; the figures themselves are already on disk.
func (f *Flags) OpenAll() {
	if f.Open == "" {
		return
	}
	args, err := shellquote.Split(f.Open)
	if err != nil {
		log.Printf("bad -open command %q: %s", f.Open, err)
		return
	}
	if len(args) == 0 {
		return
	}
	for _, path := range f.written {
		cmd := OpenCommand(args, path)
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
		if err := cmd.Run(); err != nil {
			log.Printf("%s: %s", shellquote.Join(cmd.Args...), err)
		}
	}
}

// OpenCommand returns the command that opens path using the command
// line args.
func OpenCommand(args []string, path string) *exec.Cmd {
	argv := append(append([]string(nil), args[1:]...), path)
	return exec.Command(args[0], argv...)
}

// DefaultOpener returns the usual command for opening a file with its
// default application on this platform.
func DefaultOpener() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"cmd", "/c", "start", ""}
	}
	return []string{"xdg-open"}
}
