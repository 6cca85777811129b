package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ragstack/ragview/internal/db"
)

// Entry records one answered question.
type Entry struct {
	ID           string    `json:"id"`
	AskedAt      time.Time `json:"asked_at"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	Model        string    `json:"model"`
	Sources      []string  `json:"sources"`
	ChartCount   int       `json:"chart_count"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
}

// Store provides persistence for ask history.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save inserts a new history entry. If entry.ID is empty a UUID is generated.
func (s *Store) Save(ctx context.Context, entry Entry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	sources, err := json.Marshal(entry.Sources)
	if err != nil {
		return "", fmt.Errorf("marshalling sources: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ask_history (
			id, question, answer, model, sources,
			chart_count, input_tokens, output_tokens
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Question,
		entry.Answer,
		entry.Model,
		string(sources),
		entry.ChartCount,
		entry.InputTokens,
		entry.OutputTokens,
	)
	if err != nil {
		return "", fmt.Errorf("inserting history entry: %w", err)
	}
	return entry.ID, nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, asked_at, question, answer, model, sources,
			   chart_count, input_tokens, output_tokens
		FROM ask_history
		ORDER BY asked_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var sources string
		if err := rows.Scan(
			&e.ID, &e.AskedAt, &e.Question, &e.Answer, &e.Model, &sources,
			&e.ChartCount, &e.InputTokens, &e.OutputTokens,
		); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		if err := json.Unmarshal([]byte(sources), &e.Sources); err != nil {
			return nil, fmt.Errorf("unmarshalling sources: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of history entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM ask_history`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return n, nil
}
