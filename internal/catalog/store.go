package catalog

import (
	"context"
	"errors"
	"strings"
)

// ErrGameNotFound is returned when a game id is not in the catalog.
var ErrGameNotFound = errors.New("game not found")

// Store is read-only access to the game and prop catalog.
type Store interface {
	// GamesFor returns the slate for a sport in catalog order. Unknown
	// sports yield an empty slice.
	GamesFor(ctx context.Context, sport string) ([]Game, error)
	// Game looks up one game by id.
	Game(ctx context.Context, id string) (Game, error)
	// AllGames returns the games offered in the analyzer and parlay builder
	// (NBA then NHL).
	AllGames(ctx context.Context) ([]Game, error)
	// FilterProps matches query against player names (case-insensitive
	// substring, empty matches all) AND sport (AllSports matches all).
	FilterProps(ctx context.Context, query, sport string) ([]Prop, error)
	Close() error
}

// MemoryStore serves the fixtures directly.
type MemoryStore struct{}

// NewMemoryStore returns a store over the built-in fixtures.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (MemoryStore) GamesFor(_ context.Context, sport string) ([]Game, error) {
	games := fixtureGames(sport)
	out := make([]Game, len(games))
	copy(out, games)
	return out, nil
}

func (MemoryStore) Game(_ context.Context, id string) (Game, error) {
	for _, g := range fixtureAll() {
		if g.ID == id {
			return g, nil
		}
	}
	return Game{}, ErrGameNotFound
}

func (MemoryStore) AllGames(_ context.Context) ([]Game, error) {
	board := make([]Game, 0, len(nbaGames)+len(nhlGames))
	board = append(board, nbaGames...)
	return append(board, nhlGames...), nil
}

func (MemoryStore) FilterProps(_ context.Context, query, sport string) ([]Prop, error) {
	out := []Prop{}
	for _, p := range props {
		if matchProp(p, query, sport) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (MemoryStore) Close() error { return nil }

func matchProp(p Prop, query, sport string) bool {
	if query != "" && !strings.Contains(strings.ToLower(p.Player), strings.ToLower(query)) {
		return false
	}
	if sport != AllSports && p.Sport != sport {
		return false
	}
	return true
}
