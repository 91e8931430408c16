package config

// RulesConfig holds settings passed on to the move arbiter.
type RulesConfig struct {
	// DetectCheckmate makes the arbiter search for a legal reply after every
	// checking move and flag checkmate when there is none.
	DetectCheckmate bool
}

// NewRulesConfig creates a RulesConfig with default values.
// Checkmate detection is off: only check is reported.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
