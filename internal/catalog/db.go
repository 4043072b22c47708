package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"edgefinder/internal/edge"
)

// SQLiteStore serves the catalog from a SQLite database seeded with the
// fixtures. The position column keeps catalog order stable.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the catalog database at dbPath and
// reseeds it from the fixtures. ":memory:" keeps it in process.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}
	// Every :memory: connection is its own database.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := seed(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		sport TEXT NOT NULL,
		away_team TEXT NOT NULL,
		home_team TEXT NOT NULL,
		spread TEXT NOT NULL,
		total TEXT NOT NULL,
		ml_away TEXT NOT NULL,
		ml_home TEXT NOT NULL,
		start_time TEXT NOT NULL,
		grade TEXT NOT NULL,
		edge_reason TEXT NOT NULL,
		bull_case TEXT NOT NULL,
		bear_case TEXT NOT NULL,
		gut TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS props (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		player TEXT NOT NULL,
		sport TEXT NOT NULL,
		team TEXT NOT NULL,
		prop_type TEXT NOT NULL,
		line TEXT NOT NULL,
		grade TEXT NOT NULL,
		reasoning TEXT NOT NULL,
		recommendation TEXT NOT NULL,
		matchup TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_games_sport ON games(sport, position);
	CREATE INDEX IF NOT EXISTS idx_props_sport ON props(sport, position);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

func seed(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting seed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM games; DELETE FROM props;"); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	for i, g := range fixtureAll() {
		_, err := tx.Exec(`
			INSERT INTO games (id, position, sport, away_team, home_team, spread, total, ml_away, ml_home,
				start_time, grade, edge_reason, bull_case, bear_case, gut)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, g.ID, i, g.Sport, g.AwayTeam, g.HomeTeam, g.Spread, g.Total, g.MoneylineAway, g.MoneylineHome,
			g.StartTime, string(g.Grade), g.EdgeReason, g.BullCase, g.BearCase, string(g.Gut))
		if err != nil {
			return fmt.Errorf("inserting game %s: %w", g.ID, err)
		}
	}

	for i, p := range props {
		_, err := tx.Exec(`
			INSERT INTO props (id, position, player, sport, team, prop_type, line, grade, reasoning, recommendation, matchup)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, i, p.Player, p.Sport, p.Team, p.PropType, p.Line, string(p.Grade), p.Reasoning, p.Recommendation, p.Matchup)
		if err != nil {
			return fmt.Errorf("inserting prop %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const gameColumns = `id, sport, away_team, home_team, spread, total, ml_away, ml_home,
	start_time, grade, edge_reason, bull_case, bear_case, gut`

func (s *SQLiteStore) GamesFor(ctx context.Context, sport string) ([]Game, error) {
	return s.queryGames(ctx, `SELECT `+gameColumns+` FROM games WHERE sport = ? ORDER BY position`, sport)
}

func (s *SQLiteStore) AllGames(ctx context.Context) ([]Game, error) {
	return s.queryGames(ctx, `SELECT `+gameColumns+` FROM games WHERE sport IN (?, ?) ORDER BY position`, SportNBA, SportNHL)
}

func (s *SQLiteStore) Game(ctx context.Context, id string) (Game, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Game{}, ErrGameNotFound
	}
	if err != nil {
		return Game{}, fmt.Errorf("scanning game: %w", err)
	}
	return g, nil
}

func (s *SQLiteStore) queryGames(ctx context.Context, query string, args ...any) ([]Game, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning game row: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(sc scanner) (Game, error) {
	var g Game
	var grade, gut string
	err := sc.Scan(&g.ID, &g.Sport, &g.AwayTeam, &g.HomeTeam, &g.Spread, &g.Total,
		&g.MoneylineAway, &g.MoneylineHome, &g.StartTime, &grade, &g.EdgeReason,
		&g.BullCase, &g.BearCase, &gut)
	g.Grade = edge.Grade(grade)
	g.Gut = edge.Gut(gut)
	return g, err
}

func (s *SQLiteStore) FilterProps(ctx context.Context, query, sport string) ([]Prop, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player, sport, team, prop_type, line, grade, reasoning, recommendation, matchup
		FROM props
		WHERE (? = '' OR instr(lower(player), lower(?)) > 0)
		  AND (? = ? OR sport = ?)
		ORDER BY position
	`, query, query, sport, AllSports, sport)
	if err != nil {
		return nil, fmt.Errorf("querying props: %w", err)
	}
	defer rows.Close()

	out := []Prop{}
	for rows.Next() {
		var p Prop
		var grade string
		if err := rows.Scan(&p.ID, &p.Player, &p.Sport, &p.Team, &p.PropType, &p.Line,
			&grade, &p.Reasoning, &p.Recommendation, &p.Matchup); err != nil {
			return nil, fmt.Errorf("scanning prop row: %w", err)
		}
		p.Grade = edge.Grade(grade)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Counts reports how many games and props the database holds.
func (s *SQLiteStore) Counts(ctx context.Context) (games, props int, err error) {
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&games); err != nil {
		return 0, 0, fmt.Errorf("counting games: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM props`).Scan(&props); err != nil {
		return 0, 0, fmt.Errorf("counting props: %w", err)
	}
	return games, props, nil
}
