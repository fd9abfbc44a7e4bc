package constants

// OutputFormat selects how scenario results are rendered.
type OutputFormat string

const (
	// FormatText prints a "Case Number" header followed by one line per country.
	FormatText OutputFormat = "text"

	// FormatJSON prints one JSON document covering every scenario.
	FormatJSON OutputFormat = "json"
)

// Valid returns true if the format is a recognized value.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	}
	return false
}

// String returns the string representation of the format.
func (f OutputFormat) String() string {
	return string(f)
}
