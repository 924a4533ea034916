package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"github.com/milk9111/ping/physics"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaultArena(t *testing.T) {
	spec, err := LoadArenaSpec("")
	if err != nil {
		t.Fatalf("LoadArenaSpec: %v", err)
	}
	if spec.Name != "ping" || spec.Width != 640 || spec.Height != 480 {
		t.Fatalf("unexpected spec %+v", spec)
	}
	if len(spec.Palette) != 4 || spec.Background == nil {
		t.Fatalf("expected a background and four palette colors")
	}

	cfg, err := spec.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.BodyCount != 20 || cfg.ImageCount != 2 || cfg.Step != 0.01 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	arena, err := physics.NewArena(cfg, physics.NewRand(7))
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	if arena.Len() != 20 {
		t.Fatalf("expected 20 bodies, got %d", arena.Len())
	}
}

func TestImageTotal(t *testing.T) {
	spec := ArenaSpec{ImageCount: 3}
	if spec.ImageTotal() != 3 {
		t.Fatalf("expected image_count when no files are listed")
	}
	spec.Images = []string{"a.png", "b.png"}
	if spec.ImageTotal() != 2 {
		t.Fatalf("listed files win over image_count")
	}
}

func TestConfigRejectsUnknownMotion(t *testing.T) {
	spec := ArenaSpec{Fixtures: []FixtureSpec{{Motion: "orbit"}}}
	if _, err := spec.Config(); !errors.Is(err, physics.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#ff8000"`, color.NRGBA{R: 255, G: 128, A: 255}, false},
		{"rgba", `"#10203040"`, color.NRGBA{R: 16, G: 32, B: 48, A: 64}, false},
		{"no_hash", `"000000"`, color.NRGBA{A: 255}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#gg0000"`, color.NRGBA{}, true},
		{"sequence", `[1, 2]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"fireballs":                       "scripts/fireballs.tengo",
		"fireballs.tengo":                 "scripts/fireballs.tengo",
		"scripts/fireballs.tengo":         "scripts/fireballs.tengo",
		"prefabs/scripts/fireballs.tengo": "scripts/fireballs.tengo",
		"prefabs/crowded":                 "scripts/crowded.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}
