// Package config loads split plans from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kbolino/ufrac"
	"github.com/pelletier/go-toml"
)

type Part struct {
	Name      string         `toml:"name"`
	Weight    ufrac.Fraction `toml:"-"`
	WeightStr string         `toml:"weight"`
}

type Plan struct {
	Total uint64 `toml:"total"`
	Parts []Part `toml:"part"`
}

func Initialize(file string) (*Plan, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(f)
}

func Parse(data []byte) (*Plan, error) {
	var plan Plan
	err := toml.Unmarshal(data, &plan)
	if err != nil {
		return nil, err
	}
	if len(plan.Parts) == 0 {
		return nil, errors.New("config: plan has no parts")
	}
	seen := make(map[string]bool, len(plan.Parts))
	for i := range plan.Parts {
		p := &plan.Parts[i]
		if p.Name == "" {
			return nil, fmt.Errorf("config: part %d has no name", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("config: duplicate part %s", p.Name)
		}
		seen[p.Name] = true
		p.Weight, err = ufrac.Parse(p.WeightStr)
		if err != nil {
			return nil, fmt.Errorf("config: part %s weight %q: %w", p.Name, p.WeightStr, err)
		}
	}
	return &plan, nil
}

func (p *Plan) Names() []string {
	names := make([]string, len(p.Parts))
	for i, part := range p.Parts {
		names[i] = part.Name
	}
	return names
}

func (p *Plan) Weights() []ufrac.Fraction {
	weights := make([]ufrac.Fraction, len(p.Parts))
	for i, part := range p.Parts {
		weights[i] = part.Weight
	}
	return weights
}
