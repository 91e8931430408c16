package output

import (
	"fmt"
)

// JSONPosition represents a probed position in JSON format.
type JSONPosition struct {
	Number     int      `json:"number"`
	FEN        string   `json:"fen"`
	ToMove     string   `json:"toMove,omitempty"`
	Check      bool     `json:"check"`
	Threat     string   `json:"threat,omitempty"`
	Checkmate  bool     `json:"checkmate"`
	Stalemate  bool     `json:"stalemate"`
	LegalMoves []string `json:"legalMoves"`
	Hash       string   `json:"hash,omitempty"`
	SameAs     int      `json:"sameAs,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// JSONReport holds every position of a batch.
type JSONReport struct {
	Positions []JSONPosition `json:"positions"`
}

// EntryToJSON converts a report entry to JSON form. Positions that could not
// be read carry only their number, FEN and error.
func EntryToJSON(e Entry) JSONPosition {
	pos := JSONPosition{
		Number: e.Index + 1,
		FEN:    e.FEN,
	}
	if e.Err != nil {
		pos.Error = e.Err.Error()
		return pos
	}

	pos.ToMove = e.ToMove.String()
	pos.Check = e.Checked
	pos.Threat = e.Threat
	pos.Checkmate = e.Checkmate
	pos.Stalemate = e.Stalemate
	pos.LegalMoves = make([]string, len(e.LegalMoves))
	for i, mv := range e.LegalMoves {
		pos.LegalMoves[i] = mv.String()
	}
	pos.Hash = fmt.Sprintf("%016x", e.Hash)
	pos.SameAs = e.SameAs
	return pos
}
