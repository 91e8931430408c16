package worker

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Probe decodes job.FEN and reports the check state and legal moves of the
// side to move.
func Probe(job Job) Result {
	res := Result{Index: job.Index, FEN: job.FEN}

	board, toMove, err := engine.NewBoardFromFEN(job.FEN)
	if err != nil {
		res.Err = errors.Wrapf(err, "position %d", job.Index+1)
		return res
	}
	res.ToMove = toMove
	res.Hash = hashing.GenerateZobristHash(board, toMove)

	if king, ok := board.FindKing(toMove); ok {
		if out := engine.IsKingSafe(king, toMove, board); !out.Valid {
			res.Checked = true
			res.Threat = out.Message
		}
	}

	res.LegalMoves = engine.LegalMoves(board, engine.NewGameStatus(board), toMove)
	if len(res.LegalMoves) == 0 {
		res.Checkmate = res.Checked
		res.Stalemate = !res.Checked
	}
	return res
}

// Collect probes every position on a pool of workers and returns the results
// in input order.
func Collect(fens []string, workers int) []Result {
	pool := NewPool(Probe, WithWorkers(workers), WithQueueSize(len(fens)))
	pool.Start()

	go func() {
		for i, fen := range fens {
			pool.Submit(Job{Index: i, FEN: fen})
		}
		pool.Close()
	}()

	results := make([]Result, len(fens))
	for res := range pool.Results() {
		results[res.Index] = res
	}
	return results
}
