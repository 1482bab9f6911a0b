package analysis

import (
	_ "embed"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed heuristics.yaml
var heuristicsYAML []byte

// Principle is one entry of the embedded Nielsen principle catalog.
// The catalog drives both the heuristic prompt and the score mapping
// of the parsed response.
type Principle struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
	Hint string `yaml:"hint"`
}

type principleCatalog struct {
	Principles []Principle `yaml:"principles"`
}

var (
	catalogOnce sync.Once
	catalog     []Principle
	catalogErr  error
)

// Principles returns the ten Nielsen principles from the embedded
// catalog, in evaluation order.
func Principles() ([]Principle, error) {
	catalogOnce.Do(func() {
		var c principleCatalog
		if err := yaml.Unmarshal(heuristicsYAML, &c); err != nil {
			catalogErr = eris.Wrap(err, "analysis: parse heuristic catalog")
			return
		}
		catalog = c.Principles
	})
	return catalog, catalogErr
}
