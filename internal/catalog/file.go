package catalog

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type fileDocument struct {
	Institutions []map[string]any `yaml:"institutions"`
}

// LoadFile reads a YAML or JSON document with a top-level "institutions" list.
// Rows that cannot be decoded are logged and skipped.
func LoadFile(path string, logger *zap.Logger) (*Memory, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog file %q: %w", path, err)
	}

	items := make([]*Institution, 0, len(doc.Institutions))
	for idx, row := range doc.Institutions {
		inst, err := decodeRow(row)
		if err != nil {
			logger.Warn("skipping malformed catalog row",
				zap.String("path", path),
				zap.Int("row", idx),
				zap.Any("name", row["name"]),
				zap.Error(err),
			)
			continue
		}
		items = append(items, inst)
	}

	logger.Debug("catalog file loaded",
		zap.String("path", path),
		zap.Int("rows", len(doc.Institutions)),
		zap.Int("institutions", len(items)),
	)

	return NewMemory(items), nil
}

func decodeRow(row map[string]any) (*Institution, error) {
	inst := &Institution{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           inst,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(row); err != nil {
		return nil, err
	}

	if inst.ID == 0 {
		return nil, fmt.Errorf("institution id is required")
	}

	return inst, nil
}
