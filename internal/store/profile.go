// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// ProfileStore manages author profiles in the database.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore returns a new ProfileStore.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

const profileColumns = `id, user_id, display_name, bio, avatar_url, created_at, updated_at`

// FindByUserID retrieves the profile owned by the given user.
// Returns nil if the user has no profile yet.
func (s *ProfileStore) FindByUserID(userID uuid.UUID) (*models.Profile, error) {
	p := &models.Profile{}
	err := s.db.QueryRow(`
		SELECT `+profileColumns+` FROM profiles WHERE user_id = $1
	`, userID).Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by user id: %w", err)
	}
	return p, nil
}

// Upsert returns the profile for the given user, creating it with the
// supplied display name on first use. The unique constraint on user_id
// resolves concurrent creation attempts: the conflict arm is a no-op
// write that lets RETURNING yield the existing row, so an existing
// display name is never overwritten.
func (s *ProfileStore) Upsert(userID uuid.UUID, displayName string) (*models.Profile, error) {
	p := &models.Profile{}
	err := s.db.QueryRow(`
		INSERT INTO profiles (user_id, display_name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING `+profileColumns,
		userID, displayName,
	).Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return p, nil
}
