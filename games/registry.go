// Package games registers the shipped games by name.
package games

import (
	"errors"
	"fmt"
	"sort"

	"credence/game"
	"credence/games/envelope"
	"credence/games/goodorevil"
	"credence/games/investigation"
	"credence/games/sharedenvelope"
	"credence/games/spies"
)

var ErrUnknownGame = errors.New("unknown game")

var registry = map[string]func() game.Game{
	"envelope":                 func() game.Game { return envelope.New() },
	"envelope-0-100":           func() game.Game { return envelope.NewWithAmounts(0, 100) },
	"good-or-evil":             func() game.Game { return goodorevil.New() },
	"weighted-good-or-evil":    func() game.Game { return goodorevil.NewWeighted() },
	"cooperative-spies":        func() game.Game { return spies.New() },
	"one-shot-investigation":   func() game.Game { return investigation.New() },
	"probable-shared-envelope": func() game.Game { return sharedenvelope.New() },
}

// Lookup returns a fresh instance of the named game.
func Lookup(name string) (game.Game, error) {
	create, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, name)
	}
	return create(), nil
}

// Names lists the registered games in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
