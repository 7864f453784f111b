// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/slug"
)

// PostInput carries caller-supplied fields for creating or updating a
// post. Category is a category slug; the category row is created on
// first reference. A nil Tags list on update leaves the existing
// associations untouched, while an empty one clears them.
type PostInput struct {
	Title           string
	Slug            string
	Excerpt         *string
	Content         string
	FeaturedImage   *string
	Category        string
	Status          models.PostStatus
	ScheduledAt     *time.Time
	PublishedAt     *time.Time
	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    []string
	Tags            []string
}

// CommentInput carries caller-supplied fields for a new comment.
type CommentInput struct {
	PostID      uuid.UUID
	AuthorName  string
	AuthorEmail string
	Content     string
}

// CreatePost creates a post on behalf of the authenticated caller.
// It resolves or creates the caller's profile, then the category (when
// supplied), inserts the post, and finally resolves and attaches tags.
// A missing identity fails with ErrNotAuthenticated before any write.
// Only the profile and post writes are fatal; category and tag steps
// are best-effort.
func (r *Repository) CreatePost(ident *Identity, in PostInput) (*models.Post, error) {
	if ident == nil {
		return nil, ErrNotAuthenticated
	}

	profile, err := r.profiles.Upsert(ident.UserID, displayNameFor(ident.Email))
	if err != nil {
		slog.Error("resolve profile failed", "error", err, "user_id", ident.UserID)
		return nil, fmt.Errorf("resolve profile: %w", err)
	}

	categoryID := r.resolveCategory(in.Category)

	status := in.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	postSlug := in.Slug
	if postSlug == "" {
		postSlug = slug.Generate(in.Title)
	}

	post := &models.Post{
		Title:            in.Title,
		Slug:             postSlug,
		Excerpt:          in.Excerpt,
		Content:          in.Content,
		FeaturedImageURL: in.FeaturedImage,
		AuthorID:         profile.ID,
		CategoryID:       categoryID,
		Status:           status,
		ScheduledAt:      in.ScheduledAt,
		MetaTitle:        in.MetaTitle,
		MetaDescription:  in.MetaDescription,
		MetaKeywords:     in.MetaKeywords,
	}

	created, err := r.posts.Create(post)
	if err != nil {
		slog.Error("create post failed", "error", err, "slug", postSlug)
		return nil, err
	}

	if len(in.Tags) > 0 {
		r.applyTags(created.ID, in.Tags)
	}
	return created, nil
}

// UpdatePost overwrites every field of the post with the given id.
// The publish time is recomputed: the supplied value (or now) when the
// post is published, null otherwise. When a tag list is supplied the
// post's entire association set is rewritten.
func (r *Repository) UpdatePost(id uuid.UUID, in PostInput) (*models.Post, error) {
	categoryID := r.resolveCategory(in.Category)

	var publishedAt *time.Time
	if in.Status == models.PostStatusPublished {
		publishedAt = in.PublishedAt
		if publishedAt == nil {
			now := time.Now()
			publishedAt = &now
		}
	}

	post := &models.Post{
		ID:               id,
		Title:            in.Title,
		Slug:             in.Slug,
		Excerpt:          in.Excerpt,
		Content:          in.Content,
		FeaturedImageURL: in.FeaturedImage,
		CategoryID:       categoryID,
		Status:           in.Status,
		ScheduledAt:      in.ScheduledAt,
		PublishedAt:      publishedAt,
		MetaTitle:        in.MetaTitle,
		MetaDescription:  in.MetaDescription,
		MetaKeywords:     in.MetaKeywords,
	}

	updated, err := r.posts.Update(post)
	if err != nil {
		slog.Error("update post failed", "error", err, "id", id)
		return nil, err
	}

	if in.Tags != nil {
		r.applyTags(id, in.Tags)
	}
	return updated, nil
}

// DeletePost removes a post by id. Association rows and comments go with
// it via the storage layer's cascade rules. Deleting an id that does not
// exist is a no-op.
func (r *Repository) DeletePost(id uuid.UUID) error {
	if err := r.posts.Delete(id); err != nil {
		slog.Error("delete post failed", "error", err, "id", id)
		return err
	}
	return nil
}

// CreateComment inserts a comment into the moderation queue. The content
// is sanitized before storage and the status is always pending, whatever
// the caller sent.
func (r *Repository) CreateComment(in CommentInput) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:      in.PostID,
		AuthorName:  in.AuthorName,
		AuthorEmail: in.AuthorEmail,
		Content:     r.sanitizer.Sanitize(in.Content),
	}

	created, err := r.comments.Create(comment)
	if err != nil {
		slog.Error("create comment failed", "error", err, "post_id", in.PostID)
		return nil, err
	}
	return created, nil
}

// resolveCategory resolves a category slug to a row id, creating the
// category on first reference. An empty slug means uncategorized.
// Resolution failure is logged and the post proceeds without a category.
func (r *Repository) resolveCategory(categorySlug string) *uuid.UUID {
	if categorySlug == "" {
		return nil
	}

	category, err := r.categories.Ensure(
		categoryNameFromSlug(categorySlug),
		categorySlug,
		"Posts about "+categorySlug,
	)
	if err != nil {
		slog.Error("resolve category failed", "error", err, "slug", categorySlug)
		return nil
	}
	return &category.ID
}

// applyTags resolves each tag name to a row (creating it on first use)
// and rewrites the post's association set with the resolved ids.
// Individual tag failures are logged and skipped; the post keeps the
// tags that resolved.
func (r *Repository) applyTags(postID uuid.UUID, tagNames []string) {
	var tagIDs []uuid.UUID
	seen := make(map[string]bool)

	for _, name := range tagNames {
		tagSlug := slug.Generate(name)
		if tagSlug == "" || seen[tagSlug] {
			continue
		}
		seen[tagSlug] = true

		tag, err := r.tags.Ensure(name, tagSlug)
		if err != nil {
			slog.Error("resolve tag failed", "error", err, "tag", name)
			continue
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	if err := r.tags.ReplaceForPost(postID, tagIDs); err != nil {
		slog.Error("rewrite post tags failed", "error", err, "post_id", postID)
	}
}

// displayNameFor derives a default display name from a contact address:
// the local part before the @, or "Anonymous" when there is none.
func displayNameFor(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "Anonymous"
	}
	return local
}

// categoryNameFromSlug derives a human-readable name from a category
// slug: the first hyphen becomes a space and the first letter of every
// word is upper-cased. "tech-news" becomes "Tech News";
// "tech-news-daily" becomes "Tech News-Daily", since only the first
// hyphen is replaced.
func categoryNameFromSlug(categorySlug string) string {
	name := strings.Replace(categorySlug, "-", " ", 1)

	runes := []rune(name)
	boundary := true
	for i, r := range runes {
		if boundary && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
		}
		boundary = !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return string(runes)
}
