package search

// Mode selects between exact and approximate search
type Mode int

const (
	// ModeApproximate explores the edit operation tree under the
	// configured budgets
	ModeApproximate Mode = iota
	// ModeExact forbids any error budget
	ModeExact
)

// Field flags select which result fields the engine populates
type Field int

const (
	FieldQueryID Field = 1 << iota
	FieldCursor
	FieldRefID
	FieldRefBegin
)

const allFields = FieldQueryID | FieldCursor | FieldRefID | FieldRefBegin

// DefaultFields is the selection used when none is configured
const DefaultFields = FieldQueryID | FieldRefID | FieldRefBegin

// Config describes the error budget, the search mode and the output
// shape of a search
type Config struct {
	MaxSubstitution int
	MaxInsertion    int
	MaxDeletion     int
	MaxTotal        int
	Mode            Mode
	Fields          Field
}

// Check validates the configuration, returning a ConfigurationError
// for inconsistent requests
func (c Config) Check() error {
	if c.MaxSubstitution < 0 || c.MaxInsertion < 0 || c.MaxDeletion < 0 || c.MaxTotal < 0 {
		return ConfigurationError{Reason: "negative error budget"}
	}
	if c.MaxTotal > 0 {
		if c.MaxSubstitution > c.MaxTotal || c.MaxInsertion > c.MaxTotal || c.MaxDeletion > c.MaxTotal {
			return ConfigurationError{Reason: "per error budget exceeds total budget"}
		}
	}
	if c.Mode != ModeApproximate && c.Mode != ModeExact {
		return ConfigurationError{Reason: "unknown search mode"}
	}
	if c.Mode == ModeExact &&
		(c.MaxSubstitution > 0 || c.MaxInsertion > 0 || c.MaxDeletion > 0 || c.MaxTotal > 0) {
		return ConfigurationError{Reason: "exact mode with non zero error budget"}
	}
	if c.Fields&^allFields != 0 {
		return ConfigurationError{Reason: "unknown output field"}
	}
	return nil
}

// normalized fills derived budget values: a missing total defaults to
// the sum of the per kind budgets, a lone total spreads to every kind
func (c Config) normalized() Config {
	if c.Fields == 0 {
		c.Fields = DefaultFields
	}
	if c.Mode == ModeExact {
		return c
	}
	kinds := c.MaxSubstitution + c.MaxInsertion + c.MaxDeletion
	if c.MaxTotal == 0 && kinds > 0 {
		c.MaxTotal = kinds
	} else if c.MaxTotal > 0 && kinds == 0 {
		c.MaxSubstitution = c.MaxTotal
		c.MaxInsertion = c.MaxTotal
		c.MaxDeletion = c.MaxTotal
	}
	return c
}
