package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sonderlabs/sonder/internal/survey"
)

// catalogFile is the on-disk shape of an alternate catalog. YAML and
// JSON are both accepted (JSON is a YAML subset).
type catalogFile struct {
	Models []modelSpec `yaml:"models"`
}

type modelSpec struct {
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description"`
	DimensionAliases map[string]string `yaml:"dimension_aliases"`
	Questions        []questionSpec    `yaml:"questions"`
}

type questionSpec struct {
	Prompt        string `yaml:"prompt"`
	Dimension     string `yaml:"dimension"`
	ReverseScored bool   `yaml:"reverse_scored"`
	ScaleMin      int    `yaml:"scale_min"`
	ScaleMax      int    `yaml:"scale_max"`
}

// Load reads an alternate model catalog from a YAML or JSON file and
// validates its structural invariants. Questions with no explicit
// scale default to the standard 1-5 range.
func Load(path string) ([]survey.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(file.Models) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no models", path)
	}

	seen := make(map[string]bool, len(file.Models))
	models := make([]survey.Model, 0, len(file.Models))
	for _, spec := range file.Models {
		model, err := buildModel(spec)
		if err != nil {
			return nil, err
		}
		if seen[model.Name] {
			return nil, fmt.Errorf("duplicate model name %q in catalog", model.Name)
		}
		seen[model.Name] = true
		models = append(models, model)
	}
	return models, nil
}

func buildModel(spec modelSpec) (survey.Model, error) {
	if spec.Name == "" {
		return survey.Model{}, fmt.Errorf("catalog model is missing a name")
	}
	if len(spec.Questions) == 0 {
		return survey.Model{}, fmt.Errorf("model %q has no questions", spec.Name)
	}

	questions := make([]survey.Question, 0, len(spec.Questions))
	for i, qs := range spec.Questions {
		if qs.Prompt == "" {
			return survey.Model{}, fmt.Errorf("model %q question %d is missing a prompt", spec.Name, i+1)
		}
		if qs.Dimension == "" {
			return survey.Model{}, fmt.Errorf("model %q question %d is missing a dimension", spec.Name, i+1)
		}
		if qs.ScaleMin == 0 && qs.ScaleMax == 0 {
			qs.ScaleMin = defaultScaleMin
			qs.ScaleMax = defaultScaleMax
		}
		if qs.ScaleMin >= qs.ScaleMax {
			return survey.Model{}, fmt.Errorf(
				"model %q question %d has an invalid scale [%d, %d]",
				spec.Name, i+1, qs.ScaleMin, qs.ScaleMax,
			)
		}
		questions = append(questions, survey.Question{
			Prompt:        qs.Prompt,
			Dimension:     qs.Dimension,
			ReverseScored: qs.ReverseScored,
			ScaleMin:      qs.ScaleMin,
			ScaleMax:      qs.ScaleMax,
		})
	}

	return survey.Model{
		Name:             spec.Name,
		Description:      spec.Description,
		Questions:        questions,
		DimensionAliases: spec.DimensionAliases,
	}, nil
}
