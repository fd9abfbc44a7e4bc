package scenario

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte, name string) ([]Scenario, error) {
	if isBlank(data) {
		return []Scenario{}, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var scenarios []Scenario
	if err := dec.Decode(&scenarios); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if scenarios == nil {
		scenarios = []Scenario{}
	}
	return scenarios, nil
}
