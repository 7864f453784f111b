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

// CommentStore manages reader comments in the database.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `id, post_id, author_name, author_email, content, status, created_at`

// ListApprovedByPost returns the approved comments for a post, oldest
// first. Pending and rejected comments stay out of public view.
func (s *CommentStore) ListApprovedByPost(postID uuid.UUID) ([]models.Comment, error) {
	rows, err := s.db.Query(`
		SELECT `+commentColumns+`
		FROM comments
		WHERE post_id = $1 AND status = 'approved'
		ORDER BY created_at ASC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments by post: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.AuthorName, &c.AuthorEmail,
			&c.Content, &c.Status, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Create inserts a new comment. Status is forced to pending regardless
// of what the caller supplied — every comment goes through moderation.
func (s *CommentStore) Create(c *models.Comment) (*models.Comment, error) {
	result := &models.Comment{}
	err := s.db.QueryRow(`
		INSERT INTO comments (post_id, author_name, author_email, content, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING `+commentColumns,
		c.PostID, c.AuthorName, c.AuthorEmail, c.Content,
	).Scan(
		&result.ID, &result.PostID, &result.AuthorName, &result.AuthorEmail,
		&result.Content, &result.Status, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return result, nil
}
