package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nvandessel/eurodiff/internal/models"
)

//go:embed scenarios.schema.json
var schemaSource string

const schemaURL = "https://github.com/nvandessel/eurodiff/scenarios.schema.json"

// scenarioSchema validates the structure of JSON scenario documents before
// they are decoded: required keys, integer non-negative coordinates, no
// stray fields.
var scenarioSchema = jsonschema.MustCompileString(schemaURL, schemaSource)

func decodeJSON(data []byte, name string) ([]Scenario, error) {
	if isBlank(data) {
		return []Scenario{}, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if err := checkDuplicateKeys(json.NewDecoder(bytes.NewReader(data)), "$"); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrInvalidInput, name, err)
	}
	if err := scenarioSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s does not match the scenario schema: %v", models.ErrInvalidInput, name, err)
	}

	var scenarios []Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return scenarios, nil
}

// checkDuplicateKeys walks one JSON value and fails if any object declares
// the same key twice. encoding/json keeps only the last value, which would
// silently drop a country. path locates the value in error messages.
func checkDuplicateKeys(dec *json.Decoder, path string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		seen := make(map[string]bool)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			if seen[key] {
				return fmt.Errorf("%s: key %q declared twice", path, key)
			}
			seen[key] = true
			if err := checkDuplicateKeys(dec, path+"."+key); err != nil {
				return err
			}
		}
	case '[':
		for i := 0; dec.More(); i++ {
			if err := checkDuplicateKeys(dec, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}

	// Closing delimiter.
	_, err = dec.Token()
	return err
}
