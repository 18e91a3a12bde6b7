package engine

import (
	"errors"

	"credence/game"
)

// MaxTurns bounds a playout so a game whose rules never terminate fails instead of hanging.
const MaxTurns = 10000

var (
	ErrIllegalMove    = errors.New("agent returned an illegal move")
	ErrAgentCount     = errors.New("number of agents does not match the game")
	ErrNoInitialState = errors.New("no initial state passes the filter")
	ErrTooManyTurns   = errors.New("game did not terminate")
)

// Agent is one seat at the table. The turn loop calls Initialize once, then per
// ply RequestMove, ReceivePercept for each percept and ReceiveClaims exactly
// once (possibly with no claims).
type Agent interface {
	Initialize(g game.Game, index int, starts []game.Outcome) error
	RequestMove(legal []game.Move) (game.Move, error)
	ReceivePercept(percept game.Percept) error
	ReceiveClaims(claims []game.Claim) error
}

// Result is the outcome of one playout.
type Result struct {
	Initial   game.State
	Final     game.State
	Utilities []int
}
