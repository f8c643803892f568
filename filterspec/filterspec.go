// Package filterspec parses user-supplied filter documents into engine
// filter specs.
//
// The wire format is YAML (JSON is accepted too, being a YAML subset). Every
// key is optional; an absent key means "no filter on this dimension", while
// an explicitly empty selection list is preserved as such and excludes every
// row. Labels and value domains are validated against the code dictionaries
// up front, so a typo in a region name fails loudly at the boundary instead
// of silently matching nothing.
package filterspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/natal-org/natal/codes"
	"github.com/natal-org/natal/engine"
)

// Document is the filter wire format. Pointer fields distinguish an absent
// key from an explicitly empty or zero value.
type Document struct {
	Year             *int      `yaml:"year"`
	Regions          *[]string `yaml:"regions"`
	Genders          *[]string `yaml:"genders"`
	Months           *[]int    `yaml:"months"`
	MultiplicityType *string   `yaml:"multiplicity_type"`
	MaritalType      *string   `yaml:"marital_type"`
	WeightMin        *float64  `yaml:"weight_min"`
	WeightMax        *float64  `yaml:"weight_max"`
	DropMissing      *bool     `yaml:"drop_missing"`
}

// Parse reads a filter document and converts it into an engine.FilterSpec.
// Unknown keys are rejected. An empty document yields the all-pass spec.
func Parse(data []byte) (engine.FilterSpec, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return engine.FilterSpec{}, fmt.Errorf("filterspec: parse: %w", err)
	}
	return doc.ToSpec()
}

// ParseFile reads a filter document from disk.
func ParseFile(path string) (engine.FilterSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.FilterSpec{}, fmt.Errorf("filterspec: read %s: %w", path, err)
	}
	return Parse(data)
}

// ToSpec validates the document and builds the engine spec. All validation
// problems are reported together.
func (d Document) ToSpec() (engine.FilterSpec, error) {
	var errs []error

	spec := engine.FilterSpec{Year: d.Year}

	if d.Regions != nil {
		for _, name := range *d.Regions {
			if _, ok := codes.Region.Code(name); !ok {
				errs = append(errs, fmt.Errorf("unknown region %q", name))
			}
		}
		spec.Regions = *d.Regions
	}
	if d.Genders != nil {
		for _, g := range *d.Genders {
			if _, ok := codes.Gender.Code(g); !ok {
				errs = append(errs, fmt.Errorf("unknown gender %q", g))
			}
		}
		spec.Genders = *d.Genders
	}
	if d.Months != nil {
		for _, m := range *d.Months {
			if m < 1 || m > 12 {
				errs = append(errs, fmt.Errorf("month %d out of range 1..12", m))
			}
		}
		spec.Months = *d.Months
	}
	if d.MultiplicityType != nil {
		if _, ok := codes.MultiplicityType.Code(*d.MultiplicityType); !ok {
			errs = append(errs, fmt.Errorf("unknown multiplicity type %q", *d.MultiplicityType))
		}
		spec.MultiplicityType = *d.MultiplicityType
	}
	if d.MaritalType != nil {
		if _, ok := codes.Marital.Code(*d.MaritalType); !ok {
			errs = append(errs, fmt.Errorf("unknown marital type %q", *d.MaritalType))
		}
		spec.MaritalType = *d.MaritalType
	}

	switch {
	case d.WeightMin != nil && d.WeightMax != nil:
		if *d.WeightMin > *d.WeightMax {
			errs = append(errs, fmt.Errorf("weight_min %.2f exceeds weight_max %.2f", *d.WeightMin, *d.WeightMax))
		} else {
			spec.Weight = &engine.WeightRange{Min: *d.WeightMin, Max: *d.WeightMax}
		}
	case d.WeightMin != nil || d.WeightMax != nil:
		errs = append(errs, errors.New("weight_min and weight_max must be given together"))
	}

	if d.DropMissing != nil {
		spec.DropMissingCore = *d.DropMissing
	}

	if len(errs) > 0 {
		return engine.FilterSpec{}, fmt.Errorf("filterspec: %w", errors.Join(errs...))
	}
	return spec, nil
}
