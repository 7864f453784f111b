// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkwell/internal/content"
)

// Public groups handlers for the public-facing read API. Read operations
// never fail outward: the repository masks storage errors into empty
// results, so these handlers only distinguish found from not found.
type Public struct {
	repo *content.Repository
}

// NewPublic creates a new Public handler group.
func NewPublic(repo *content.Repository) *Public {
	return &Public{repo: repo}
}

// ListPosts returns all published posts, most recently published first.
func (p *Public) ListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.repo.AllPosts())
}

// RecentPosts returns the most recently published posts. The optional
// limit query parameter bounds the list.
func (p *Public) RecentPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	writeJSON(w, http.StatusOK, p.repo.RecentPosts(limit))
}

// FeaturedPost returns the most recently published post.
func (p *Public) FeaturedPost(w http.ResponseWriter, r *http.Request) {
	post := p.repo.FeaturedPost()
	if post == nil {
		writeError(w, http.StatusNotFound, "no published posts")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// GetPost returns a published post by slug.
func (p *Public) GetPost(w http.ResponseWriter, r *http.Request) {
	post := p.repo.PostBySlug(chi.URLParam(r, "slug"))
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// ListCategories returns all categories ordered by name.
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.repo.Categories())
}

// GetCategory returns a category by slug.
func (p *Public) GetCategory(w http.ResponseWriter, r *http.Request) {
	category := p.repo.CategoryBySlug(chi.URLParam(r, "slug"))
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// PostsByCategory returns the published posts in a category.
func (p *Public) PostsByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.repo.PostsByCategory(chi.URLParam(r, "slug")))
}

// ListComments returns the approved comments for a post.
func (p *Public) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	writeJSON(w, http.StatusOK, p.repo.CommentsForPost(postID))
}

// commentRequest is the JSON body for creating a comment. Any status the
// caller tries to smuggle in is rejected by the unknown-field check.
type commentRequest struct {
	PostID      uuid.UUID `json:"postId"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	Content     string    `json:"content"`
}

// CreateComment inserts a comment into the moderation queue.
func (p *Public) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateComment(req.AuthorName, req.AuthorEmail, req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	comment, err := p.repo.CreateComment(content.CommentInput{
		PostID:      req.PostID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create comment")
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
