package game

import (
	"strconv"
	"strings"
)

// Path is the immutable history of a state since its root. Extend never
// modifies the receiver, so states may share the prefix of their parent.
type Path struct {
	steps []Step
}

// Extend returns a new path with one more step.
func (p Path) Extend(move CombinedMove, next State) Path {
	steps := make([]Step, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	moveCopy := make(CombinedMove, len(move))
	copy(moveCopy, move)
	return Path{steps: append(steps, Step{Move: moveCopy, Next: next})}
}

func (p Path) Len() int {
	return len(p.steps)
}

// Steps returns a copy of the recorded steps.
func (p Path) Steps() []Step {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	return steps
}

// Move returns the combined move played at the given ply (0-based).
func (p Path) Move(ply int) CombinedMove {
	return p.steps[ply].Move
}

// Last returns the most recent combined move. Panics on an empty path.
func (p Path) Last() CombinedMove {
	return p.steps[len(p.steps)-1].Move
}

// Key builds a state key from a description of the hidden facts and the moves
// played so far.
func (p Path) Key(facts string) StateKey {
	var sb strings.Builder
	sb.WriteString(facts)
	for _, step := range p.steps {
		sb.WriteByte('|')
		for i, move := range step.Move {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(move)))
		}
	}
	return StateKey(sb.String())
}
