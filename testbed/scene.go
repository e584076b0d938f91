package testbed

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/geom3/engine/core"
)

// Scalar kinds a scene can be evaluated with.
const (
	ScalarFloat32 = "float32"
	ScalarFloat64 = "float64"
	ScalarFixed32 = "fixed32"
	ScalarFixed64 = "fixed64"
)

// RotationEntry asks for the rotation between From and To, which is then
// applied to every vector in Apply.
type RotationEntry struct {
	Name  string       `toml:"name"`
	From  [3]float64   `toml:"from"`
	To    [3]float64   `toml:"to"`
	Apply [][3]float64 `toml:"apply"`
}

// TriangleEntry describes a triangle that is optionally moved by Translate
// and then turned to face Direction.
type TriangleEntry struct {
	Name      string        `toml:"name"`
	Points    [3][3]float64 `toml:"points"`
	Direction *[3]float64   `toml:"direction"`
	Translate *[3]float64   `toml:"translate"`
}

type Scene struct {
	Config    core.Config     `toml:"config"`
	Scalar    string          `toml:"scalar"`
	Rotations []RotationEntry `toml:"rotation"`
	Triangles []TriangleEntry `toml:"triangle"`
}

// ParseScene decodes a TOML scene. Entries without a name get a random one
// so they can be told apart in the logs.
func ParseScene(data []byte) (*Scene, error) {
	scene := &Scene{
		Config: core.DefaultConfig(),
		Scalar: ScalarFloat32,
	}
	if err := toml.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	switch scene.Scalar {
	case ScalarFloat32, ScalarFloat64, ScalarFixed32, ScalarFixed64:
	default:
		return nil, fmt.Errorf("scalar %q: %w", scene.Scalar, core.ErrUnknownScalar)
	}
	if err := scene.Config.Validate(); err != nil {
		return nil, err
	}

	for i := range scene.Rotations {
		if scene.Rotations[i].Name == "" {
			scene.Rotations[i].Name = uuid.NewString()
		}
	}
	for i := range scene.Triangles {
		if scene.Triangles[i].Name == "" {
			scene.Triangles[i].Name = uuid.NewString()
		}
	}

	return scene, nil
}

func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	return ParseScene(data)
}
