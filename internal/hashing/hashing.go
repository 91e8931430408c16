// Package hashing provides Zobrist hashing of positions and duplicate
// position detection.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	// pieceKeys is indexed by [colour][piece type][row*8+col].
	pieceKeys   [chess.NumColours][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	unmovedKeys [chess.NumColours][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	blackToMove uint64
)

func init() {
	state := uint64(zobristSeed)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for c := range pieceKeys {
		for t := range pieceKeys[c] {
			for sq := range pieceKeys[c][t] {
				pieceKeys[c][t][sq] = next()
				unmovedKeys[c][t][sq] = next()
			}
		}
	}
	blackToMove = next()
}

// GenerateZobristHash hashes the piece placement and side to move. Kings and
// rooks that have never moved hash differently from moved ones, so positions
// differing only in castling availability are distinct.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := board.At(chess.Sq(row, col))
			if !ok {
				continue
			}
			idx := row*chess.BoardSize + col
			hash ^= pieceKeys[p.Colour][p.Type][idx]
			if !p.HasMoved && (p.Type == chess.King || p.Type == chess.Rook) {
				hash ^= unmovedKeys[p.Colour][p.Type][idx]
			}
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// DuplicateDetector remembers the first index at which each position hash
// was seen.
type DuplicateDetector struct {
	// hashTable maps a hash to the index it was first seen at
	hashTable map[uint64]int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64]int),
	}
}

// CheckAndAdd records hash at index. If the hash was already recorded it
// returns the earlier index and true.
func (d *DuplicateDetector) CheckAndAdd(hash uint64, index int) (int, bool) {
	if first, ok := d.hashTable[hash]; ok {
		d.duplicateCount++
		return first, true
	}
	d.hashTable[hash] = index
	return index, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions seen.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.hashTable)
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64]int)
	d.duplicateCount = 0
}
