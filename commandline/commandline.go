// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"

	"gocube/config"
)

var (
	debug       bool
	fullscreen  bool
	noHotReload bool

	vsync = boolInt{true, 1}

	height int
	width  int

	configPath string

	flags *flag.FlagSet
)

// boolInt is a flag that can be given as "-flag", "-flag=true" or
// "-flag=10".
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
	b.set = v != 0
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	register(flag.CommandLine)
}

func register(fs *flag.FlagSet) {
	flags = fs
	fs.BoolVar(&debug, "debug", false, "enable debug logging and a debug GL context")
	fs.BoolVar(&fullscreen, "f", false, "")
	fs.BoolVar(&fullscreen, "fullscreen", false, "")
	fs.BoolVar(&noHotReload, "nohotreload", false, "do not watch the shader sources")

	fs.Var(&vsync, "vsync", "wait for vertical sync, -vsync=-1 for adaptive sync")

	fs.IntVar(&height, "height", -1, "window height, negative is unset")
	fs.IntVar(&width, "width", -1, "window width, negative is unset")

	fs.StringVar(&configPath, "config", config.DefaultPath, "settings file")
}

func ConfigPath() string {
	return configPath
}

func Height() int {
	return height
}

func Width() int {
	return width
}

func Debug() bool {
	return debug
}

func Fullscreen() bool {
	return fullscreen
}

func VSync() bool {
	return vsync.set
}

// VSyncInterval is the swap interval, -1 requests adaptive sync.
func VSyncInterval() int {
	if !vsync.set {
		return 0
	}
	if vsync.num == 0 {
		return 1
	}
	return vsync.num
}

func HotReload() bool {
	return !noHotReload
}

// Apply overrides c with the flags given on the command line.
func Apply(c *config.Config) {
	if Width() > 0 {
		c.Window.Width = int32(Width())
	}
	if Height() > 0 {
		c.Window.Height = int32(Height())
	}
	if Fullscreen() {
		c.Window.Fullscreen = true
	}
	if isSet("vsync") {
		c.Window.VSync = VSync()
	}
	if Debug() {
		c.Debug = true
	}
	if !HotReload() {
		c.HotReload = false
	}
}

func isSet(name string) bool {
	found := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
