package traffic

import (
	"errors"
	"fmt"

	"github.com/kaienlin/tcgsim/config"
)

// ErrUnknownGenerator indicates New was asked for a generator name with no
// registered constructor.
var ErrUnknownGenerator = errors.New("traffic: unknown generator")

// ErrMissingKwarg indicates a generator's required kwarg was absent.
var ErrMissingKwarg = errors.New("traffic: missing required kwarg")

// Generator produces a traffic description for a run. seed is accepted by
// every implementation for a uniform signature even though a deterministic
// generator (FileGenerator) ignores it.
type Generator interface {
	Generate(seed int64) ([]config.VehicleSpec, error)
}

// FileGenerator is the one required Generator: it replays a fixed JSON
// traffic file (config.LoadTraffic) regardless of seed.
type FileGenerator struct {
	Path string
}

// Generate ignores seed and loads Path.
func (g FileGenerator) Generate(seed int64) ([]config.VehicleSpec, error) {
	return config.LoadTraffic(g.Path)
}

// New resolves a generator by name against the kwargs a CLI flag parser
// would hand it, per spec.md §6's "traffic-generator name + kwargs".
// Currently registered: "file" (kwarg "path").
func New(name string, kwargs map[string]string) (Generator, error) {
	switch name {
	case "file":
		path, ok := kwargs["path"]
		if !ok || path == "" {
			return nil, fmt.Errorf("%w: path", ErrMissingKwarg)
		}
		return FileGenerator{Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}
