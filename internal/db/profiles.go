package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, name, birth_date, bio_age, stamina, location, profession, image_url, interests, created_at, updated_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.Name, &p.BirthDate, &p.BioAge, &p.Stamina,
		&p.Location, &p.Profession, &p.ImageURL, &p.Interests, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile inserts a new profile record and returns its ID.
func (db *DB) CreateProfile(ctx context.Context, p *Profile) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (name, birth_date, bio_age, stamina, location, profession, image_url, interests)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		p.Name, p.BirthDate, p.BioAge, p.Stamina, p.Location, p.Profession, p.ImageURL, p.Interests,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return id, nil
}

// GetProfile retrieves a profile by ID. Returns (nil, nil) when absent.
func (db *DB) GetProfile(ctx context.Context, profileID uuid.UUID) (*Profile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, profileID)
	p, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// ListProfiles retrieves all profiles, newest first.
func (db *DB) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return profiles, nil
}

// UpdateProfile updates a profile record in place.
func (db *DB) UpdateProfile(ctx context.Context, p *Profile) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE profiles
		 SET name = $1, birth_date = $2, bio_age = $3, stamina = $4,
		     location = $5, profession = $6, image_url = $7, interests = $8,
		     updated_at = NOW()
		 WHERE id = $9`,
		p.Name, p.BirthDate, p.BioAge, p.Stamina, p.Location, p.Profession, p.ImageURL, p.Interests, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", p.ID)
	}
	return nil
}

// DeleteProfile removes a profile and its cached match scores.
func (db *DB) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	if _, err := db.pool.Exec(ctx,
		`DELETE FROM match_scores WHERE profile_id = $1 OR candidate_id = $1`, profileID); err != nil {
		return fmt.Errorf("failed to delete match scores: %w", err)
	}

	tag, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", profileID)
	}
	return nil
}
