// Package config handles configuration loading for the glance tools.
package config

import (
	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/geo"
	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/math"
)

// Config holds all settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Shapes  ShapesConfig  `yaml:"shapes"`
	Viewer  ViewerConfig  `yaml:"viewer"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ShapesConfig holds the parameters of the generated primitives.
type ShapesConfig struct {
	Cube     CubeConfig     `yaml:"cube"`
	Cylinder CylinderConfig `yaml:"cylinder"`
	Sphere   SphereConfig   `yaml:"sphere"`
}

// CubeConfig holds cube parameters.
type CubeConfig struct {
	Size    [3]float32 `yaml:"size"`
	UVScale [2]float32 `yaml:"uv_scale"`
}

// CylinderConfig holds cylinder parameters.
type CylinderConfig struct {
	Radius         float32 `yaml:"radius"`
	Height         float32 `yaml:"height"`
	RadialSegments int     `yaml:"radial_segments"`
	HeightSegments int     `yaml:"height_segments"`
	CapInset       float32 `yaml:"cap_inset"`
}

// SphereConfig holds sphere parameters.
type SphereConfig struct {
	Radius         float32 `yaml:"radius"`
	LatitudeBands  int     `yaml:"latitude_bands"`
	LongitudeBands int     `yaml:"longitude_bands"`
	Normals        bool    `yaml:"normals"`
	UVs            bool    `yaml:"uvs"`
}

// ViewerConfig holds window and scene settings for the viewer.
type ViewerConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Model      string `yaml:"model"` // OBJ path or URL for the gear
}

// Default returns a Config with the demo scene's values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Shapes: ShapesConfig{
			Cube: CubeConfig{
				Size:    [3]float32{1, 1, 1},
				UVScale: [2]float32{1, 1},
			},
			Cylinder: CylinderConfig{
				Radius:         0.04,
				Height:         0.4,
				RadialSegments: 32,
				HeightSegments: 64,
				CapInset:       geo.DefaultCapInset,
			},
			Sphere: SphereConfig{
				Radius:         1,
				LatitudeBands:  32,
				LongitudeBands: 32,
				Normals:        true,
				UVs:            true,
			},
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Model:      "",
		},
	}
}

// Options returns the cube settings as generator options.
func (c CubeConfig) Options() geo.CubeOptions {
	return geo.CubeOptions{
		Size:    math.Vec3{X: c.Size[0], Y: c.Size[1], Z: c.Size[2]},
		UVScale: math.Vec2{X: c.UVScale[0], Y: c.UVScale[1]},
	}
}

// Options returns the cylinder settings as generator options.
func (c CylinderConfig) Options() geo.CylinderOptions {
	return geo.CylinderOptions{
		Radius:         c.Radius,
		Height:         c.Height,
		RadialSegments: c.RadialSegments,
		HeightSegments: c.HeightSegments,
		CapInset:       c.CapInset,
	}
}

// Options returns the sphere settings as generator options.
func (c SphereConfig) Options() geo.SphereOptions {
	return geo.SphereOptions{
		Radius:         c.Radius,
		LatitudeBands:  c.LatitudeBands,
		LongitudeBands: c.LongitudeBands,
		Normals:        c.Normals,
		UVs:            c.UVs,
	}
}
