package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the table read by PostgresSource.
const Schema = `CREATE TABLE IF NOT EXISTS rentwise_neighborhoods (
	name               TEXT PRIMARY KEY,
	position           INT NOT NULL DEFAULT 0,
	safety             DOUBLE PRECISION,
	transit            DOUBLE PRECISION,
	convenience        DOUBLE PRECISION,
	parking            DOUBLE PRECISION,
	environment        DOUBLE PRECISION,
	perception         JSONB NOT NULL DEFAULT '{}',
	reddit_sample_size INT NOT NULL DEFAULT 0,
	tradeoff_note      TEXT NOT NULL DEFAULT ''
)`

const neighborhoodColumns = `name, safety, transit, convenience, parking, environment,
	perception, reddit_sample_size, tradeoff_note`

// PostgresSource loads the catalog from a Postgres table. Objective columns
// are nullable; NULL means the dimension is unknown.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresSource{pool: pool}, nil
}

func (s *PostgresSource) Close() error {
	s.pool.Close()
	return nil
}

// EnsureSchema creates the catalog table if it does not exist.
func (s *PostgresSource) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Seed upserts every neighborhood of c, keeping c's declaration order.
func (s *PostgresSource) Seed(ctx context.Context, c *Catalog) error {
	batch := &pgx.Batch{}
	for i, n := range c.All() {
		perceptionJSON, err := json.Marshal(n.Perception)
		if err != nil {
			return fmt.Errorf("encode perception for %q: %w", n.Name, err)
		}
		batch.Queue(`
			INSERT INTO rentwise_neighborhoods (name, position, safety, transit, convenience,
				parking, environment, perception, reddit_sample_size, tradeoff_note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (name) DO UPDATE SET
				position = EXCLUDED.position,
				safety = EXCLUDED.safety,
				transit = EXCLUDED.transit,
				convenience = EXCLUDED.convenience,
				parking = EXCLUDED.parking,
				environment = EXCLUDED.environment,
				perception = EXCLUDED.perception,
				reddit_sample_size = EXCLUDED.reddit_sample_size,
				tradeoff_note = EXCLUDED.tradeoff_note`,
			n.Name, i,
			toPtr(n.Metric(Safety)), toPtr(n.Metric(Transit)), toPtr(n.Metric(Convenience)),
			toPtr(n.Metric(Parking)), toPtr(n.Metric(Environment)),
			perceptionJSON, n.RedditSampleSize, n.TradeoffNote,
		)
	}
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for i, n := 0, c.Len(); i < n; i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("seed neighborhoods: %w", err)
		}
	}
	return nil
}

// Load reads every row, ordered by position then name.
func (s *PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+neighborhoodColumns+`
		FROM rentwise_neighborhoods ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query neighborhoods: %w", err)
	}
	defer rows.Close()

	var items []Neighborhood
	for rows.Next() {
		n, err := scanNeighborhood(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate neighborhoods: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	return New(items)
}

func scanNeighborhood(row pgx.Row) (Neighborhood, error) {
	var n Neighborhood
	var safety, transit, convenience, parking, environment *float64
	var perceptionJSON []byte
	if err := row.Scan(&n.Name, &safety, &transit, &convenience, &parking, &environment,
		&perceptionJSON, &n.RedditSampleSize, &n.TradeoffNote); err != nil {
		return Neighborhood{}, fmt.Errorf("scan neighborhood: %w", err)
	}
	n.Objective = map[Dimension]Metric{
		Safety:      FromPtr(safety),
		Transit:     FromPtr(transit),
		Convenience: FromPtr(convenience),
		Parking:     FromPtr(parking),
		Environment: FromPtr(environment),
	}
	if len(perceptionJSON) > 0 {
		if err := json.Unmarshal(perceptionJSON, &n.Perception); err != nil {
			return Neighborhood{}, fmt.Errorf("decode perception for %q: %w", n.Name, err)
		}
	}
	return n, nil
}

func toPtr(m Metric) *float64 {
	v, ok := m.Value()
	if !ok {
		return nil
	}
	return &v
}
