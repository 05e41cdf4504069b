package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// TOMLParser adapts BurntSushi/toml to koanf.Parser.
type TOMLParser struct{}

// TOML returns a koanf parser for TOML documents.
func TOML() *TOMLParser {
	return &TOMLParser{}
}

// Unmarshal parses b into a nested map.
func (p *TOMLParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Marshal encodes m as TOML.
func (p *TOMLParser) Marshal(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
