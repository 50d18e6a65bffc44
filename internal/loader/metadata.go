package loader

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/daryltucker/solver-bench/internal/model"
	"github.com/daryltucker/solver-bench/internal/output"
)

var metaValidate = validator.New()

type metadataFile struct {
	Benchmarks model.MetaData `yaml:"benchmarks"`
}

// ReadMetadata parses the benchmark metadata YAML. Entries that fail
// validation (an unknown problem class or size bucket, a size without a name)
// are logged and left out.
func ReadMetadata(r io.Reader) (model.MetaData, error) {
	log := output.New("loader")

	var f metadataFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	out := make(model.MetaData, len(f.Benchmarks))
	for name, entry := range f.Benchmarks {
		if err := metaValidate.Struct(entry); err != nil {
			log.Warn("Skipping invalid metadata entry", "benchmark", name, "error", err)
			continue
		}
		out[name] = entry
	}
	return out, nil
}
