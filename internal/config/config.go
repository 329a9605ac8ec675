package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/geom"
	"github.com/san-kum/trigsim/internal/rotation"
	"github.com/san-kum/trigsim/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 30
	DefaultUnit   = 2.5
	DefaultBuff   = 0.2
	DefaultTheme  = "classic"
	DefaultRate   = "linear"
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	FPS          int          `yaml:"fps"`
	Unit         float64      `yaml:"unit"`
	Origin       Point        `yaml:"origin"`
	InitialAngle float64      `yaml:"initial_angle"`
	Buff         float64      `yaml:"buff"`
	Theme        string       `yaml:"theme"`
	Rate         string       `yaml:"rate"`
	Steps        []StepConfig `yaml:"steps"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// StepConfig holds exactly one of its fields.
type StepConfig struct {
	Rotate *RotateConfig `yaml:"rotate,omitempty"`
	Scroll *ScrollConfig `yaml:"scroll,omitempty"`
	Wait   *float64      `yaml:"wait,omitempty"`
}

type RotateConfig struct {
	Variant      string  `yaml:"variant"`
	Clockwise    bool    `yaml:"clockwise"`
	Repeat       int     `yaml:"repeat"`
	ShowBrace    bool    `yaml:"show_brace"`
	RemoveShapes bool    `yaml:"remove_shapes"`
	RunTime      float64 `yaml:"run_time,omitempty"`
}

type ScrollConfig struct {
	Text    string  `yaml:"text"`
	RunTime float64 `yaml:"run_time,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FPS:    DefaultFPS,
		Unit:   DefaultUnit,
		Origin: Point{X: -2, Y: 0},
		Buff:   DefaultBuff,
		Theme:  DefaultTheme,
		Rate:   DefaultRate,
		Steps: []StepConfig{
			Rotation("sine", false, 1, 4),
		},
	}
}

// Rotation is a shorthand for a rotate step that shows its brace and
// removes its shapes when done.
func Rotation(variant string, clockwise bool, repeat int, runTime float64) StepConfig {
	return StepConfig{Rotate: &RotateConfig{
		Variant:      variant,
		Clockwise:    clockwise,
		Repeat:       repeat,
		ShowBrace:    true,
		RemoveShapes: true,
		RunTime:      runTime,
	}}
}

func Scroll(text string, runTime float64) StepConfig {
	return StepConfig{Scroll: &ScrollConfig{Text: text, RunTime: runTime}}
}

func Wait(seconds float64) StepConfig {
	return StepConfig{Wait: &seconds}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Steps = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if len(cfg.Steps) == 0 {
		cfg.Steps = DefaultConfig().Steps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks sizes, names and every step.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	}
	if c.Unit <= 0 {
		return fmt.Errorf("%w: unit %f", ErrInvalid, c.Unit)
	}
	if c.Buff < 0 {
		return fmt.Errorf("%w: buff %f", ErrInvalid, c.Buff)
	}
	if !slices.Contains(theme.Names(), c.Theme) {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, theme.Names())
	}
	if _, err := anim.ParseRate(c.Rate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(c.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalid)
	}
	for i, s := range c.Steps {
		if _, err := s.build(); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrInvalid, i, err)
		}
	}
	return nil
}

func (s StepConfig) build() (anim.Step, error) {
	n := 0
	if s.Rotate != nil {
		n++
	}
	if s.Scroll != nil {
		n++
	}
	if s.Wait != nil {
		n++
	}
	if n != 1 {
		return anim.Step{}, fmt.Errorf("want exactly one of rotate, scroll, wait; got %d", n)
	}

	switch {
	case s.Rotate != nil:
		r := s.Rotate
		req, err := rotation.NewRequest(rotation.RequestConfig{
			Variant:      r.Variant,
			Clockwise:    r.Clockwise,
			Repeat:       r.Repeat,
			ShowBrace:    r.ShowBrace,
			RemoveShapes: r.RemoveShapes,
			RunTime:      seconds(r.RunTime),
		})
		if err != nil {
			return anim.Step{}, err
		}
		return anim.Step{Kind: anim.StepRotate, Rotation: req}, nil
	case s.Scroll != nil:
		if s.Scroll.RunTime < 0 {
			return anim.Step{}, fmt.Errorf("negative scroll run time %f", s.Scroll.RunTime)
		}
		return anim.Step{Kind: anim.StepScroll, Text: s.Scroll.Text, RunTime: seconds(s.Scroll.RunTime)}, nil
	default:
		if *s.Wait < 0 {
			return anim.Step{}, fmt.Errorf("negative wait %f", *s.Wait)
		}
		return anim.Step{Kind: anim.StepWait, RunTime: seconds(*s.Wait)}, nil
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Script converts the steps into a runnable script.
func (c *Config) Script() (*anim.Script, error) {
	steps := make([]anim.Step, 0, len(c.Steps))
	for i, s := range c.Steps {
		st, err := s.build()
		if err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrInvalid, i, err)
		}
		steps = append(steps, st)
	}
	return &anim.Script{Steps: steps}, nil
}

func (c *Config) Mapper() (geom.Mapper, error) {
	return geom.NewMapper(geom.Vec{X: c.Origin.X, Y: c.Origin.Y}, c.Unit)
}

func (c *Config) RateFunc() (anim.RateFunc, error) {
	return anim.ParseRate(c.Rate)
}

func (c *Config) GetTheme() theme.Theme {
	return theme.Get(c.Theme)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	n := *c
	n.Steps = make([]StepConfig, len(c.Steps))
	for i, s := range c.Steps {
		if s.Rotate != nil {
			r := *s.Rotate
			n.Steps[i].Rotate = &r
		}
		if s.Scroll != nil {
			sc := *s.Scroll
			n.Steps[i].Scroll = &sc
		}
		if s.Wait != nil {
			w := *s.Wait
			n.Steps[i].Wait = &w
		}
	}
	return &n
}
