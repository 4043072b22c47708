package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// stores returns every Store implementation so each test runs against both.
func stores(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}
}

func TestGamesFor(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			nba, err := s.GamesFor(ctx, SportNBA)
			if err != nil {
				t.Fatalf("GamesFor(NBA): %v", err)
			}
			if len(nba) != 5 {
				t.Fatalf("GamesFor(NBA) returned %d games, want 5", len(nba))
			}
			if nba[0].Label() != "Lakers @ Celtics" || nba[4].Label() != "Pacers @ Knicks" {
				t.Errorf("NBA order not preserved: first=%s last=%s", nba[0].Label(), nba[4].Label())
			}

			nhl, _ := s.GamesFor(ctx, SportNHL)
			if len(nhl) != 3 {
				t.Errorf("GamesFor(NHL) returned %d games, want 3", len(nhl))
			}

			mlb, err := s.GamesFor(ctx, "MLB")
			if err != nil {
				t.Fatalf("GamesFor(MLB) should not error: %v", err)
			}
			if len(mlb) != 0 {
				t.Errorf("GamesFor(MLB) returned %d games, want 0", len(mlb))
			}
		})
	}
}

func TestGameLookup(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			g, err := s.Game(ctx, "nba-5")
			if err != nil {
				t.Fatalf("Game(nba-5): %v", err)
			}
			if g.HomeTeam != "Knicks" || g.Grade != "A" || g.Gut != "strong" {
				t.Errorf("Game(nba-5) = %+v", g)
			}

			if _, err := s.Game(ctx, "nba-99"); !errors.Is(err, ErrGameNotFound) {
				t.Errorf("Game(nba-99) err = %v, want ErrGameNotFound", err)
			}
		})
	}
}

func TestAllGames(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			board, err := s.AllGames(ctx)
			if err != nil {
				t.Fatalf("AllGames: %v", err)
			}
			if len(board) != 8 {
				t.Fatalf("AllGames returned %d games, want 8", len(board))
			}
			if board[5].Sport != SportNHL || board[4].Sport != SportNBA {
				t.Errorf("AllGames should list NBA before NHL")
			}
		})
	}
}

func TestFilterProps(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		query string
		sport string
		want  []string
	}{
		{"jokic", AllSports, []string{"prop-1"}},
		{"JOKIC", AllSports, []string{"prop-1"}},
		{"", AllSports, []string{"prop-1", "prop-2", "prop-3", "prop-4", "prop-5", "prop-6"}},
		{"", SportNHL, []string{"prop-6"}},
		{"on", SportNBA, []string{"prop-2", "prop-3", "prop-4", "prop-5"}},
		{"on", AllSports, []string{"prop-2", "prop-3", "prop-4", "prop-5", "prop-6"}},
		{"mcdavid", SportNBA, nil},
		{"nobody", AllSports, nil},
	}

	for name, s := range stores(t) {
		for _, tt := range tests {
			t.Run(name+"/"+tt.query+"/"+tt.sport, func(t *testing.T) {
				got, err := s.FilterProps(ctx, tt.query, tt.sport)
				if err != nil {
					t.Fatalf("FilterProps: %v", err)
				}
				ids := make([]string, 0, len(got))
				for _, p := range got {
					ids = append(ids, p.ID)
				}
				if strings.Join(ids, ",") != strings.Join(tt.want, ",") {
					t.Errorf("FilterProps(%q, %q) = %v, want %v", tt.query, tt.sport, ids, tt.want)
				}
			})
		}
	}
}

func TestSports(t *testing.T) {
	sports := Sports()
	if len(sports) != 4 {
		t.Fatalf("Sports() returned %d entries, want 4", len(sports))
	}
	for _, s := range sports {
		wantOff := s.Sport == SportNFL || s.Sport == SportCFB
		if s.Offseason != wantOff {
			t.Errorf("%s offseason = %v, want %v", s.Sport, s.Offseason, wantOff)
		}
	}
}

func TestSQLiteReopenReseeds(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	for i := 0; i < 2; i++ {
		s, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("OpenSQLite #%d: %v", i+1, err)
		}
		games, props, err := s.Counts(ctx)
		s.Close()
		if err != nil {
			t.Fatalf("Counts: %v", err)
		}
		if games != 10 || props != 6 {
			t.Errorf("open #%d: %d games, %d props, want 10 and 6", i+1, games, props)
		}
	}
}
