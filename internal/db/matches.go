package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertMatchScore stores or refreshes the cached overall compatibility for
// an ordered (profile, candidate) pair.
func (db *DB) UpsertMatchScore(ctx context.Context, profileID, candidateID uuid.UUID, overall int) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO match_scores (profile_id, candidate_id, overall)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (profile_id, candidate_id) DO UPDATE SET overall = $3, created_at = NOW()`,
		profileID, candidateID, overall,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match score: %w", err)
	}
	return nil
}

// GetMatchScore retrieves the cached score for a pair. Returns (nil, nil)
// when the pair has never been scored.
func (db *DB) GetMatchScore(ctx context.Context, profileID, candidateID uuid.UUID) (*MatchScore, error) {
	var m MatchScore
	err := db.pool.QueryRow(ctx,
		`SELECT profile_id, candidate_id, overall, created_at
		 FROM match_scores WHERE profile_id = $1 AND candidate_id = $2`,
		profileID, candidateID,
	).Scan(&m.ProfileID, &m.CandidateID, &m.Overall, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match score: %w", err)
	}
	return &m, nil
}
