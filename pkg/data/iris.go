package data

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Species is the Iris class, indexed 0..2 in the order below.
type Species int

const (
	Setosa Species = iota
	Versicolor
	Virginica
)

var speciesNames = [...]string{"setosa", "versicolor", "virginica"}

var ErrUnknownSpecies = errors.New("data: unknown species")

func (s Species) String() string {
	if s < 0 || int(s) >= len(speciesNames) {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// ParseSpecies matches the species names case-insensitively, with or without
// an "Iris-" prefix.
func ParseSpecies(name string) (Species, error) {
	n := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "iris-")
	for i, s := range speciesNames {
		if s == n {
			return Species(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
}

func (s Species) MarshalJSON() ([]byte, error) {
	if s < 0 || int(s) >= len(speciesNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpecies, int(s))
	}
	return json.Marshal(speciesNames[s])
}

func (s *Species) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	v, err := ParseSpecies(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IrisSample is one record of the two-feature Iris table.
type IrisSample struct {
	SepalLength float64 `json:"sepalLength"`
	SepalWidth  float64 `json:"sepalWidth"`
	Species     Species `json:"species"`
}

//go:embed iris.json
var irisJSON []byte

// LoadIris decodes a JSON array of IrisSample records.
func LoadIris(r io.Reader) ([]IrisSample, error) {
	var out []IrisSample
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("data: decode iris: %w", err)
	}
	return out, nil
}

// Iris returns a fresh copy of the embedded 150-row dataset.
func Iris() []IrisSample {
	out, err := LoadIris(bytes.NewReader(irisJSON))
	if err != nil {
		panic(err)
	}
	return out
}

// IrisXY splits samples into [sepalLength, sepalWidth] rows and class indices.
func IrisXY(samples []IrisSample) ([][]float64, []int) {
	X := make([][]float64, len(samples))
	y := make([]int, len(samples))
	for i, s := range samples {
		X[i] = []float64{s.SepalLength, s.SepalWidth}
		y[i] = int(s.Species)
	}
	return X, y
}
