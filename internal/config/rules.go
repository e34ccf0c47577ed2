package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Variant names.
const (
	VariantClassic = "classic"
	VariantRelaxed = "relaxed"
)

// ErrUnknownVariant is returned for a rule set name that is not built in.
var ErrUnknownVariant = errors.New("unknown rules variant")

// Rules holds every tunable gameplay parameter of one difficulty variant.
// Distances are logical field units, times are seconds.
type Rules struct {
	Variant string `yaml:"variant"`

	Field      FieldRules      `yaml:"field"`
	Craft      CraftRules      `yaml:"craft"`
	Projectile ProjectileRules `yaml:"projectile"`
	Enemy      EnemyRules      `yaml:"enemy"`
	PowerUp    PowerUpRules    `yaml:"power_up"`
	Fall       FallRules       `yaml:"fall"`
	Score      ScoreRules      `yaml:"score"`

	// MaxFrameDelta caps the elapsed time fed to a single step.
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

// FieldRules is the play field size.
type FieldRules struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CraftRules describes the player craft. Speed is units per step.
type CraftRules struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	MaxHealth    float64 `yaml:"max_health"`
	BottomMargin float64 `yaml:"bottom_margin"` // distance from the craft top to the field bottom
	Color        string  `yaml:"color"`
}

// ProjectileRules describes the auto-fired projectiles. Speed is units per step.
type ProjectileRules struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Interval float64 `yaml:"interval"`
	Color    string  `yaml:"color"`
}

// EnemyRules describes descending enemies.
type EnemyRules struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	HitPoints   int     `yaml:"hit_points"`
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	Color       string  `yaml:"color"`
}

// PowerUpRules describes falling power-ups.
type PowerUpRules struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Heal        float64 `yaml:"heal"`
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	Color       string  `yaml:"color"`
}

// FallRules is the vertical speed rule shared by enemies and power-ups.
// Speed is BaseSpeed * min(1 + score/ScoreScale, MaxSpeed/BaseSpeed) units per second.
type FallRules struct {
	BaseSpeed  float64 `yaml:"base_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	ScoreScale float64 `yaml:"score_scale"`
}

// ScoreRules controls score accrual.
type ScoreRules struct {
	PerSecond float64 `yaml:"per_second"`
	KillBonus float64 `yaml:"kill_bonus"`
}

// MaxSpeedRatio is the cap applied to the fall speed multiplier.
func (f FallRules) MaxSpeedRatio() float64 {
	return f.MaxSpeed / f.BaseSpeed
}

// Classic returns the default rule set with score-scaled difficulty.
func Classic() Rules {
	const width, height = 480, 640
	return Rules{
		Variant: VariantClassic,
		Field:   FieldRules{Width: width, Height: height},
		Craft: CraftRules{
			Width:        80,
			Height:       30,
			Speed:        5,
			MaxHealth:    5,
			BottomMargin: 60,
			Color:        "#1e50ff",
		},
		Projectile: ProjectileRules{
			Width:    5,
			Height:   10,
			Speed:    10,
			Interval: 0.2,
			Color:    "#ffe600",
		},
		Enemy: EnemyRules{
			Width:       40,
			Height:      40,
			HitPoints:   1,
			MinInterval: 0.1,
			MaxInterval: 2.1,
			Color:       "#ff2a2a",
		},
		PowerUp: PowerUpRules{
			Width:       20,
			Height:      20,
			Heal:        0.5,
			MinInterval: 8,
			MaxInterval: 15,
			Color:       "#2adf4a",
		},
		Fall: FallRules{
			BaseSpeed:  height / 4,
			MaxSpeed:   height / 0.1,
			ScoreScale: 50000,
		},
		Score: ScoreRules{
			PerSecond: 10,
			KillBonus: 500,
		},
		MaxFrameDelta: 1,
	}
}

// Relaxed returns the alternate tuning: sparser enemies, more frequent and
// stronger power-ups, and no speed ramp.
func Relaxed() Rules {
	r := Classic()
	r.Variant = VariantRelaxed
	r.Enemy.MinInterval = 0.5
	r.Enemy.MaxInterval = 3.5
	r.PowerUp.MinInterval = 5
	r.PowerUp.MaxInterval = 10
	r.PowerUp.Heal = 1
	r.Fall.MaxSpeed = r.Fall.BaseSpeed
	return r
}

// Variant returns the built-in rule set with the given name.
func Variant(name string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", VariantClassic:
		return Classic(), nil
	case VariantRelaxed:
		return Relaxed(), nil
	default:
		return Rules{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// Parse decodes YAML rules. Fields absent from the document keep the values
// of the variant it names (classic when it names none).
func Parse(data []byte) (Rules, error) {
	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	rules, err := Variant(head.Variant)
	if err != nil {
		return Rules{}, err
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules: %w", err)
	}
	return rules, nil
}

// Load reads and parses a YAML rules file.
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	return Parse(data)
}

// Resolve interprets name as a variant name, falling back to a file path
// when it names no built-in variant.
func Resolve(name string) (Rules, error) {
	rules, err := Variant(name)
	if err == nil {
		return rules, nil
	}
	if !errors.Is(err, ErrUnknownVariant) {
		return Rules{}, err
	}
	if _, statErr := os.Stat(name); statErr != nil {
		return Rules{}, err
	}
	return Load(name)
}

// Validate reports every inconsistent field.
func (r Rules) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	interval := func(name string, lo, hi float64) {
		if lo < 0 || hi < lo {
			errs = append(errs, fmt.Errorf("%s interval [%v, %v) is invalid", name, lo, hi))
		}
	}
	hex := func(name, value string) {
		if _, err := colorful.Hex(value); err != nil {
			errs = append(errs, fmt.Errorf("%s color %q: %w", name, value, err))
		}
	}

	positive("field.width", r.Field.Width)
	positive("field.height", r.Field.Height)
	positive("craft.width", r.Craft.Width)
	positive("craft.height", r.Craft.Height)
	positive("craft.speed", r.Craft.Speed)
	positive("craft.max_health", r.Craft.MaxHealth)
	positive("projectile.width", r.Projectile.Width)
	positive("projectile.height", r.Projectile.Height)
	positive("projectile.speed", r.Projectile.Speed)
	positive("projectile.interval", r.Projectile.Interval)
	positive("enemy.width", r.Enemy.Width)
	positive("enemy.height", r.Enemy.Height)
	positive("power_up.width", r.PowerUp.Width)
	positive("power_up.height", r.PowerUp.Height)
	positive("fall.base_speed", r.Fall.BaseSpeed)
	positive("fall.score_scale", r.Fall.ScoreScale)
	positive("max_frame_delta", r.MaxFrameDelta)

	if r.Enemy.HitPoints < 1 {
		errs = append(errs, fmt.Errorf("enemy.hit_points must be at least 1, got %d", r.Enemy.HitPoints))
	}
	if r.Fall.MaxSpeed < r.Fall.BaseSpeed {
		errs = append(errs, fmt.Errorf("fall.max_speed %v is below fall.base_speed %v", r.Fall.MaxSpeed, r.Fall.BaseSpeed))
	}
	if r.Craft.Width > r.Field.Width {
		errs = append(errs, fmt.Errorf("craft.width %v exceeds field.width %v", r.Craft.Width, r.Field.Width))
	}
	if r.Score.PerSecond < 0 || r.Score.KillBonus < 0 {
		errs = append(errs, errors.New("score rates must not be negative"))
	}
	interval("enemy", r.Enemy.MinInterval, r.Enemy.MaxInterval)
	interval("power_up", r.PowerUp.MinInterval, r.PowerUp.MaxInterval)

	hex("craft", r.Craft.Color)
	hex("projectile", r.Projectile.Color)
	hex("enemy", r.Enemy.Color)
	hex("power_up", r.PowerUp.Color)

	return errors.Join(errs...)
}
