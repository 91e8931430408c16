package config

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Colour enables ANSI colours for squares and pieces
	Colour bool

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool

	// ShowBoard prints the board after every committed move
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour:      true,
		Coordinates: true,
		ShowBoard:   true,
	}
}
