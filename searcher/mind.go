package searcher

import (
	"credence/engine"
	"credence/game"
)

// Mind is what a reasoning agent knows: its belief and the signature of the
// events that led to it. It implements engine.Agent except for RequestMove,
// which is left to the agent choosing among BestMoves.
type Mind struct {
	solver    *Solver
	index     int
	belief    Belief
	signature Signature
}

func NewMind(s *Solver) *Mind {
	return &Mind{solver: s}
}

func (m *Mind) Initialize(_ game.Game, index int, starts []game.Outcome) error {
	m.index = index
	m.belief = NewBelief(starts)
	m.signature = NewSignature(starts)
	return nil
}

func (m *Mind) Index() int {
	return m.index
}

func (m *Mind) Belief() Belief {
	return m.belief
}

func (m *Mind) Signature() Signature {
	return m.signature
}

// BestMoves must not be modified by the caller.
func (m *Mind) BestMoves(legal []game.Move) ([]game.Move, error) {
	return m.solver.BestMoves(m.index, legal, m.signature, m.belief)
}

// Commit records move as played.
func (m *Mind) Commit(move game.Move) {
	m.signature = m.signature.WithMove(move)
	m.belief = Advance(m.solver.game, m.belief, m.index, move)
}

func (m *Mind) ReceivePercept(percept game.Percept) error {
	m.signature = m.signature.With(percept.ID)
	belief, err := m.belief.Filter(percept.Holds)
	if err != nil {
		return err
	}
	m.belief = belief
	return nil
}

func (m *Mind) ReceiveClaims(claims []game.Claim) error {
	if len(claims) == 0 {
		return nil
	}
	m.signature = m.signature.WithClaims(claims)
	belief, err := m.solver.Revise(m.index, claims, m.signature, m.belief)
	if err != nil {
		return err
	}
	m.belief = belief
	return nil
}

// replayer plays the only move it is offered.
type replayer struct {
	*Mind
}

func (r replayer) RequestMove(legal []game.Move) (game.Move, error) {
	r.Commit(legal[0])
	return legal[0], nil
}

func replay(g game.Game, state game.State, agent int, mind *Mind) error {
	return engine.Replay(g, state, agent, replayer{mind})
}
