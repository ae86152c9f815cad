package config

import (
	"fmt"
	"math"

	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/engine"
)

// Reference extent the default scene was laid out for
const (
	sceneRefWidth  = 1920.0
	sceneRefHeight = 1080.0
)

// BodySpec is a single body entry in a scene file
type BodySpec struct {
	X          float64 `mapstructure:"x"`
	Y          float64 `mapstructure:"y"`
	VX         float64 `mapstructure:"vx"`
	VY         float64 `mapstructure:"vy"`
	Radius     float64 `mapstructure:"radius"`
	Stationary bool    `mapstructure:"stationary"`
}

// GridSpec is a block of resting bodies, laid out like a right-click grid
type GridSpec struct {
	X          float64 `mapstructure:"x"`
	Y          float64 `mapstructure:"y"`
	Radius     float64 `mapstructure:"radius"`
	Separation float64 `mapstructure:"separation"`
	Cols       int     `mapstructure:"cols"`
	Rows       int     `mapstructure:"rows"`
	Stationary bool    `mapstructure:"stationary"`
}

// Scene is the initial body layout
type Scene struct {
	Bodies []BodySpec `mapstructure:"bodies"`
	Grids  []GridSpec `mapstructure:"grids"`
}

// LoadScene decodes a TOML scene file
func LoadScene(path string) (*Scene, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}

	var sc Scene
	if err := v.Unmarshal(&sc); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &sc, nil
}

// Validate rejects non-positive radii and empty grids
func (sc *Scene) Validate() error {
	for i, b := range sc.Bodies {
		if b.Radius <= 0 {
			return fmt.Errorf("%w: bodies[%d].radius must be positive, got %v", ErrInvalidConfig, i, b.Radius)
		}
	}
	for i, g := range sc.Grids {
		if g.Radius <= 0 {
			return fmt.Errorf("%w: grids[%d].radius must be positive, got %v", ErrInvalidConfig, i, g.Radius)
		}
		if g.Cols <= 0 || g.Rows <= 0 {
			return fmt.Errorf("%w: grids[%d] must be at least 1x1, got %dx%d", ErrInvalidConfig, i, g.Cols, g.Rows)
		}
		if g.Separation < 0 {
			return fmt.Errorf("%w: grids[%d].separation must not be negative", ErrInvalidConfig, i)
		}
	}
	return nil
}

// DefaultScene is two stationary attractors over a 12x10 block of dust,
// scaled from a 1920x1080 layout to fit width x height
func DefaultScene(width, height float64) *Scene {
	s := math.Min(width/sceneRefWidth, height/sceneRefHeight)
	if s <= 0 {
		s = 1
	}
	// Center the scaled layout
	ox := (width - sceneRefWidth*s) / 2
	oy := (height - sceneRefHeight*s) / 2

	at := func(x, y float64) (float64, float64) { return ox + x*s, oy + y*s }
	radius := func(r float64) float64 { return math.Max(r*s, 1) }

	ax, ay := at(740, 540)
	bx, by := at(1180, 540)
	gx, gy := at(840, 900)

	return &Scene{
		Bodies: []BodySpec{
			{X: ax, Y: ay, Radius: radius(40), Stationary: true},
			{X: bx, Y: by, Radius: radius(40), Stationary: true},
		},
		Grids: []GridSpec{
			{X: gx, Y: gy, Radius: 1, Separation: 10 * s, Cols: 12, Rows: 10},
		},
	}
}

// Apply spawns the scene into sim, returns number of bodies created
func (sc *Scene) Apply(sim *engine.Simulation) int {
	n := 0
	for _, b := range sc.Bodies {
		sim.Spawn(r2.Vec{X: b.X, Y: b.Y}, r2.Vec{X: b.VX, Y: b.VY}, b.Radius, b.Stationary)
		n++
	}
	for _, g := range sc.Grids {
		n += len(sim.SpawnGrid(r2.Vec{X: g.X, Y: g.Y}, g.Stationary, g.Radius, g.Separation, g.Cols, g.Rows))
	}
	return n
}
