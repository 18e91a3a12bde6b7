package searcher

import (
	"sort"
	"strconv"
	"strings"

	"credence/game"
)

// Signature is the sequence of event ids one agent has observed: its sorted
// starting ids, then -1-move for each own move, percept ids and claim ids.
// Agents with equal signatures hold equal beliefs.
type Signature []int

func NewSignature(starts []game.Outcome) Signature {
	s := make(Signature, 0, len(starts))
	for _, start := range starts {
		s = append(s, start.ID)
	}
	sort.Ints(s)
	return s
}

// With returns a new signature extended by ids. The receiver is not modified.
func (s Signature) With(ids ...int) Signature {
	extended := make(Signature, len(s), len(s)+len(ids))
	copy(extended, s)
	return append(extended, ids...)
}

func (s Signature) WithMove(move game.Move) Signature {
	return s.With(-1 - int(move))
}

func (s Signature) WithClaims(claims []game.Claim) Signature {
	ids := make([]int, len(claims))
	for i, claim := range claims {
		ids[i] = claim.ID
	}
	return s.With(ids...)
}

// key identifies the signature as seen by agent.
func (s Signature) key(agent int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(agent))
	sb.WriteByte(':')
	for i, id := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}
