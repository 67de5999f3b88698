package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS reads a contract document from fsys. JSON and YAML are accepted.
func LoadFS(fsys fs.FS, name string) (Contract, error) {
	if fsys == nil {
		return Contract{}, errors.New("schema: filesystem is nil")
	}
	if !isContractFile(name) {
		return Contract{}, fmt.Errorf("schema: unsupported contract file %q", name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Contract{}, fmt.Errorf("schema: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a JSON or YAML contract, normalises it and validates it.
// source is only used in error messages.
func Parse(data []byte, source string) (Contract, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Contract{}, fmt.Errorf("schema: file %s is empty", source)
	}

	var contract Contract
	if err := json.Unmarshal(data, &contract); err != nil {
		contract = Contract{}
		if err := yaml.Unmarshal(data, &contract); err != nil {
			return Contract{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
		}
	}

	contract.Normalize()
	if err := contract.Validate(); err != nil {
		return Contract{}, fmt.Errorf("%w (file %s)", err, source)
	}
	return contract, nil
}

func isContractFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
