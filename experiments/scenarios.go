package experiments

import (
	"credence/agent"
	"credence/game"
	"credence/games/envelope"
	"credence/games/goodorevil"
	"credence/games/investigation"
	"credence/games/sharedenvelope"
	"credence/games/spies"
	"credence/utils"
)

// Scenario is a table of matchups played on one game.
type Scenario struct {
	Name     string
	Game     game.Game
	Matchups [][]string // Archetype per seat
	// Filter restricts the initial states drawn, nil for the full prior
	Filter game.Predicate
}

// Roster pairs every candidate of each seat with every candidate of the others.
func Roster(seats ...[]string) [][]string {
	return utils.CartesianProduct(seats)
}

var (
	guessers = []string{agent.Random, agent.Trusting, agent.Proposed}
	advisors = []string{agent.Random, agent.Truthful, agent.Proposed}
)

// DefaultScenarios returns one table of matchups per shipped game.
func DefaultScenarios() []Scenario {
	notCooperative := func(s game.State) bool { return !sharedenvelope.IsCooperative(s) }

	var suspects [][]string
	for i, first := range advisors {
		for _, second := range advisors[i:] {
			suspects = append(suspects, []string{first, second})
		}
	}
	var investigations [][]string
	for _, detective := range guessers {
		for _, pair := range suspects {
			investigations = append(investigations, []string{detective, pair[0], pair[1]})
		}
	}

	return []Scenario{
		{Name: "good-or-evil", Game: goodorevil.New(), Matchups: Roster(guessers, advisors)},
		{Name: "weighted-good-or-evil", Game: goodorevil.NewWeighted(), Matchups: Roster(guessers, advisors)},
		{Name: "cooperative-spies", Game: spies.New(), Matchups: Roster(guessers, advisors)},
		{Name: "envelope", Game: envelope.New(), Matchups: Roster(guessers, advisors)},
		{
			Name:     "probable-shared-envelope",
			Game:     sharedenvelope.New(),
			Matchups: Roster(advisors, []string{agent.Random}, guessers),
		},
		{
			Name:     "probable-shared-envelope-sabotaged",
			Game:     sharedenvelope.New(),
			Matchups: Roster(advisors, guessers, []string{agent.Random}),
			Filter:   notCooperative,
		},
		{Name: "one-shot-investigation", Game: investigation.New(), Matchups: investigations},
	}
}

// Select keeps the scenarios played on one of the named games, or all of them
// when no names are given.
func Select(scenarios []Scenario, games []string) []Scenario {
	if len(games) == 0 {
		return scenarios
	}
	var selected []Scenario
	for _, scenario := range scenarios {
		if utils.Contains(games, scenario.Game.Name()) {
			selected = append(selected, scenario)
		}
	}
	return selected
}
