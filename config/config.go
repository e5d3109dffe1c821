// SPDX-License-Identifier: GPL-2.0-or-later

// Package config reads the gocube.toml settings file.
package config

import (
	"bytes"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// DefaultPath is read when no -config flag is given. It may be missing.
const DefaultPath = "gocube.toml"

type Window struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	VSync      bool   `toml:"vsync"`
}

type Paths struct {
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`
	Brick          string `toml:"brick"`
	Face           string `toml:"face"`
	Screenshots    string `toml:"screenshots"`
}

type Camera struct {
	Sensitivity float32 `toml:"sensitivity"`
	Fov         float32 `toml:"fov"`
}

// Speeds are per millisecond.
type Speeds struct {
	Camera float32 `toml:"camera"`
	Mix    float32 `toml:"mix"`
	Spin   float32 `toml:"spin"`
}

type Config struct {
	Window     Window     `toml:"window"`
	Paths      Paths      `toml:"paths"`
	Camera     Camera     `toml:"camera"`
	Speeds     Speeds     `toml:"speeds"`
	ClearColor [4]float32 `toml:"clear_color"`
	// Bindings maps action names to key names, e.g. forward = "w".
	Bindings  map[string]string `toml:"bindings"`
	Debug     bool              `toml:"debug"`
	HotReload bool              `toml:"hot_reload"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "gocube",
			Width:  1920,
			Height: 1080,
			VSync:  true,
		},
		Paths: Paths{
			VertexShader:   "shaders/vertex.vert",
			FragmentShader: "shaders/frag.frag",
			Brick:          "textures/brick.png",
			Face:           "textures/face.png",
			Screenshots:    "screenshots",
		},
		Camera: Camera{
			Sensitivity: 0.1,
			Fov:         45,
		},
		Speeds: Speeds{
			Camera: 0.01,
			Mix:    0.005,
			Spin:   0.0008,
		},
		ClearColor: [4]float32{0, 0.5, 0.5, 1},
		HotReload:  true,
	}
}

// Decode reads a config from r. Keys missing in r keep their default.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(c); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, errors.Errorf("unknown config keys:\n%s", serr.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, errors.Errorf("config %d:%d: %s", row, col, derr.Error())
		}
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the config file at path. A missing DefaultPath is not an
// error, the defaults are returned instead.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	c, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("bad window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fov < 1 || c.Camera.Fov > 45 {
		return errors.Errorf("fov %v not in [1,45]", c.Camera.Fov)
	}
	if c.Paths.VertexShader == "" || c.Paths.FragmentShader == "" {
		return errors.New("shader paths must be set")
	}
	return nil
}

// Encode writes c as toml.
func (c *Config) Encode(w io.Writer) error {
	e := toml.NewEncoder(w)
	e.SetIndentTables(true)
	return e.Encode(c)
}
