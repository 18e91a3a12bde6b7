package searcher

import (
	"errors"
	"math/big"

	"credence/experiments/metrics"
	"credence/game"

	"github.com/rs/zerolog/log"
)

const (
	DefaultDiscount = 1000
	DefaultMaxDepth = 4096
)

var (
	ErrUnsupportedSimultaneousChoice = errors.New("more than one agent has a choice in the same ply")
	ErrDepthExceeded                 = errors.New("lookahead exceeded the maximum depth")
)

type Option func(s *Solver)

// WithDiscount sets the factor by which the weight of a world is divided when a
// claim is not rationalisable in it.
func WithDiscount(discount int64) Option {
	return func(s *Solver) {
		if discount > 1 {
			s.discount = big.NewRat(discount, 1)
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *Solver) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithoutCaches disables memoisation. Results are unchanged, only slower.
func WithoutCaches() Option {
	return func(s *Solver) {
		s.caching = false
	}
}

// WithLiteralClaims makes agents accept every claim at face value.
func WithLiteralClaims() Option {
	return func(s *Solver) {
		s.literal = true
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Solver) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

type moveKey struct {
	state game.StateKey
	agent int
	move  game.Move
}

type beliefKey struct {
	state game.StateKey
	agent int
}

// override assumes claims from sender to receiver at turn are true.
type override struct {
	turn, sender, receiver int
}

// Solver values moves and revises beliefs for every agent of one game. Its
// caches live as long as the solver and must not be shared between goroutines.
type Solver struct {
	game     game.Game
	discount *big.Rat
	maxDepth int
	caching  bool
	literal  bool
	metrics  metrics.Collector

	moveValues map[moveKey][]*big.Rat
	beliefs    map[beliefKey]Belief
	bestMoves  map[string][]game.Move
	revisions  map[string]Belief

	overrides []override
	depth     int
}

func NewSolver(g game.Game, options ...Option) *Solver {
	s := &Solver{ // Default values
		game:       g,
		discount:   big.NewRat(DefaultDiscount, 1),
		maxDepth:   DefaultMaxDepth,
		caching:    true,
		metrics:    metrics.NewDummyCollector(),
		moveValues: make(map[moveKey][]*big.Rat),
		beliefs:    make(map[beliefKey]Belief),
		bestMoves:  make(map[string][]game.Move),
		revisions:  make(map[string]Belief),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Solver) Game() game.Game {
	return s.game
}

// hypothetical reports whether some claim is currently assumed true.
func (s *Solver) hypothetical() bool {
	return len(s.overrides) > 0
}

// cacheable reports whether results may be read from and written to the caches.
// Results computed under an assumption must never reach them.
func (s *Solver) cacheable() bool {
	return s.caching && !s.hypothetical()
}

func (s *Solver) overridden(o override) bool {
	for _, active := range s.overrides {
		if active == o {
			return true
		}
	}
	return false
}

// assuming runs fn with o pushed on the override stack.
func (s *Solver) assuming(o override, fn func() error) error {
	s.overrides = append(s.overrides, o)
	defer func() { s.overrides = s.overrides[:len(s.overrides)-1] }()
	return fn()
}

// Replay reconstructs the belief agent would hold in state, having seen only
// its own observations since the root.
func (s *Solver) Replay(state game.State, agent int) (Belief, error) {
	s.metrics.AddReplay()
	mind := NewMind(s)
	if err := replay(s.game, state, agent, mind); err != nil {
		return nil, err
	}
	return mind.Belief(), nil
}

// beliefAt is Replay, memoised by state and agent.
func (s *Solver) beliefAt(state game.State, agent int) (Belief, error) {
	key := beliefKey{state: state.Key(), agent: agent}
	if s.cacheable() {
		if belief, ok := s.beliefs[key]; ok {
			s.metrics.AddCacheHit()
			return belief, nil
		}
		s.metrics.AddCacheMiss()
	}

	belief, err := s.Replay(state, agent)
	if err != nil {
		return nil, err
	}

	if s.cacheable() {
		s.beliefs[key] = belief
	}
	log.Trace().Msgf("agent %d believes %s in %s", agent, belief, state.Key())
	return belief, nil
}
