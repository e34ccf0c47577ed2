package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltInVariantsAreValid(t *testing.T) {
	for _, name := range []string{VariantClassic, VariantRelaxed} {
		t.Run(name, func(t *testing.T) {
			r, err := Variant(name)
			if err != nil {
				t.Fatalf("Variant(%q) failed: %v", name, err)
			}
			if err := r.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if r.Variant != name {
				t.Errorf("Variant = %q, want %q", r.Variant, name)
			}
		})
	}
}

func TestClassicSpeedCap(t *testing.T) {
	r := Classic()
	if got := r.Fall.MaxSpeedRatio(); got != 40 {
		t.Errorf("MaxSpeedRatio() = %v, want 40", got)
	}
	if got := Relaxed().Fall.MaxSpeedRatio(); got != 1 {
		t.Errorf("relaxed MaxSpeedRatio() = %v, want 1", got)
	}
}

func TestVariantUnknown(t *testing.T) {
	_, err := Variant("nightmare")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestParseOverlaysVariant(t *testing.T) {
	doc := []byte(`
variant: relaxed
power_up:
  heal: 2
score:
  kill_bonus: 100
`)
	r, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.PowerUp.Heal != 2 {
		t.Errorf("PowerUp.Heal = %v, want 2", r.PowerUp.Heal)
	}
	if r.Score.KillBonus != 100 {
		t.Errorf("Score.KillBonus = %v, want 100", r.Score.KillBonus)
	}
	// Untouched fields come from the relaxed variant.
	if r.Enemy.MinInterval != Relaxed().Enemy.MinInterval {
		t.Errorf("Enemy.MinInterval = %v, want %v", r.Enemy.MinInterval, Relaxed().Enemy.MinInterval)
	}
	if r.Field != Classic().Field {
		t.Errorf("Field = %+v, want %+v", r.Field, Classic().Field)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative width", "field:\n  width: -1\n"},
		{"inverted interval", "enemy:\n  min_interval: 3\n  max_interval: 1\n"},
		{"bad color", "craft:\n  color: blue\n"},
		{"zero hit points", "enemy:\n  hit_points: 0\n"},
		{"max below base", "fall:\n  max_speed: 1\n"},
		{"malformed yaml", "field: [\n"},
		{"unknown variant", "variant: nightmare\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.doc)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	r, err := Resolve("")
	if err != nil || r.Variant != VariantClassic {
		t.Fatalf("Resolve(\"\") = %q, %v", r.Variant, err)
	}

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("score:\n  per_second: 20\n"), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	r, err = Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(file) failed: %v", err)
	}
	if r.Score.PerSecond != 20 {
		t.Errorf("Score.PerSecond = %v, want 20", r.Score.PerSecond)
	}

	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Resolve(missing) = %v, want ErrUnknownVariant", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SKYRAID_TEST_KEY", "value")
	if got := GetEnv("SKYRAID_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("SKYRAID_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}
