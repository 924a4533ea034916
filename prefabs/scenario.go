package prefabs

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"gopkg.in/yaml.v3"
)

var errNoScenario = errors.New("script declares neither 'arena' nor 'fixtures'")

// LoadScenario runs scripts/<name>.tengo and applies what it declares on top
// of base. A scenario declares an 'arena' map whose keys are ArenaSpec yaml
// keys, a 'fixtures' array replacing the base fixtures, or both. The base
// spec is visible to the script as 'base'. base itself is not modified.
func LoadScenario(name string, base *ArenaSpec) (*ArenaSpec, error) {
	if base == nil {
		return nil, fmt.Errorf("prefabs: scenario %s: nil base spec", name)
	}
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load scenario %s: %w", name, err)
	}
	spec, err := runScenario(src, base)
	if err != nil {
		return nil, fmt.Errorf("prefabs: scenario %s: %w", name, err)
	}
	return spec, nil
}

func runScenario(src []byte, base *ArenaSpec) (*ArenaSpec, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("base", map[string]any{
		"width":        base.Width,
		"height":       base.Height,
		"bodies":       base.Bodies,
		"min_diameter": base.MinDiameter,
		"max_diameter": base.MaxDiameter,
		"image_count":  base.ImageTotal(),
	}); err != nil {
		return nil, err
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}
	return applyScenario(compiled, base)
}

func applyScenario(compiled *tengo.Compiled, base *ArenaSpec) (*ArenaSpec, error) {
	if compiled == nil {
		return nil, fmt.Errorf("script compile returned nil program")
	}

	arena := compiled.Get("arena")
	fixtures := compiled.Get("fixtures")
	hasArena := arena != nil && !arena.IsUndefined()
	hasFixtures := fixtures != nil && !fixtures.IsUndefined()
	if !hasArena && !hasFixtures {
		return nil, errNoScenario
	}

	spec := *base
	if spec.Background != nil {
		bg := *spec.Background
		spec.Background = &bg
	}
	if hasArena {
		raw, ok := arena.Value().(map[string]any)
		if !ok {
			return nil, fmt.Errorf("script global 'arena' must be a map")
		}
		if err := decodeOnto(raw, &spec); err != nil {
			return nil, fmt.Errorf("arena: %w", err)
		}
	}
	if hasFixtures {
		raw, ok := fixtures.Value().([]any)
		if !ok {
			return nil, fmt.Errorf("script global 'fixtures' must be an array")
		}
		decoded, err := DecodeSpec[[]FixtureSpec](raw)
		if err != nil {
			return nil, fmt.Errorf("fixtures: %w", err)
		}
		spec.Fixtures = decoded
	}
	return &spec, nil
}

// DecodeSpec converts loosely typed values, as produced by scripts or
// generic yaml maps, into a typed spec by way of its yaml tags.
func DecodeSpec[T any](raw any) (T, error) {
	var out T
	if raw == nil {
		return out, nil
	}
	err := decodeOnto(raw, &out)
	return out, err
}

// decodeOnto overwrites only the fields of out that raw mentions.
func decodeOnto(raw any, out any) error {
	b, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}
