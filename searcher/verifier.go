package searcher

import (
	"errors"
	"fmt"
	"math/big"

	"credence/game"
	"credence/utils"

	"github.com/rs/zerolog/log"
)

// Revise updates believer's belief after hearing claims.
//
// A claim is rationalisable in a world when the sender's actual move is among
// its best moves there, under the assumption that the believer takes the claim
// at face value. Worlds where it is not are discounted. A claim rationalisable
// nowhere is taken literally instead: the worlds where it holds are boosted.
// Claims already assumed true by an enclosing verification are accepted as is.
func (s *Solver) Revise(believer int, claims []game.Claim, signature Signature, belief Belief) (Belief, error) {
	if len(claims) == 0 {
		return belief, nil
	}
	if s.literal {
		return accept(belief, claims)
	}

	var key string
	if signature != nil && s.cacheable() {
		key = signature.key(believer)
		if revised, ok := s.revisions[key]; ok {
			s.metrics.AddCacheHit()
			return revised, nil
		}
		s.metrics.AddCacheMiss()
	}

	turn, err := belief.Turn()
	if err != nil {
		return nil, err
	}

	var overridden, pending []game.Claim
	for _, claim := range claims {
		if s.overridden(override{turn: turn, sender: claim.Sender, receiver: believer}) {
			overridden = append(overridden, claim)
		} else {
			pending = append(pending, claim)
		}
	}

	revised := belief
	if len(overridden) > 0 {
		if revised, err = accept(revised, overridden); err != nil {
			return nil, err
		}
	}

	if len(pending) > 0 {
		s.metrics.AddRevision()
		revised = revised.clone()
		for _, claim := range pending {
			if err := s.verify(believer, claim, turn, revised); err != nil {
				return nil, err
			}
		}
	}

	if key != "" {
		s.revisions[key] = revised
	}
	return revised, nil
}

// verify reweights the worlds of belief in place according to one claim.
func (s *Solver) verify(believer int, claim game.Claim, turn int, belief Belief) error {
	rationalisable := false
	for i, world := range belief {
		history := s.game.History(world.State)
		if turn < 1 || len(history) < turn {
			return fmt.Errorf("claim %d at turn %d in a world at turn %d", claim.ID, turn, len(history))
		}
		actual := history[turn-1].Move[claim.Sender]
		previous := game.PreviousState(s.game, world.State, turn)

		var best []game.Move
		err := s.assuming(override{turn: turn, sender: claim.Sender, receiver: believer}, func() (err error) {
			best, err = s.BestMoves(claim.Sender, previous.LegalMoves()[claim.Sender], nil, Certain(previous))
			return err
		})
		if err != nil {
			return err
		}

		if utils.Contains(best, actual) {
			rationalisable = true
			continue
		}
		s.metrics.AddDiscount()
		belief[i].Weight = new(big.Rat).Quo(world.Weight, s.discount)
	}

	if rationalisable {
		return nil
	}
	log.Trace().Msgf("claim %d from agent %d is rationalisable nowhere, taking it literally", claim.ID, claim.Sender)
	for i, world := range belief {
		if claim.Holds(world.State) {
			belief[i].Weight = new(big.Rat).Mul(world.Weight, s.discount)
		}
	}
	return nil
}

// accept filters belief by the conjunction of claims. A set of claims that
// contradicts every world is disregarded rather than emptying the belief.
func accept(belief Belief, claims []game.Claim) (Belief, error) {
	predicates := make([]game.Predicate, len(claims))
	for i, claim := range claims {
		predicates[i] = claim.Holds
	}
	filtered, err := belief.Filter(game.Conjunction(predicates...))
	if errors.Is(err, ErrEmptyBeliefState) {
		log.Trace().Msgf("disregarding %d claims contradicting every world", len(claims))
		return belief, nil
	}
	return filtered, err
}
