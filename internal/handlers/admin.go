// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkwell/internal/content"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
)

// Admin groups the authenticated post-management handlers.
type Admin struct {
	repo *content.Repository
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(repo *content.Repository) *Admin {
	return &Admin{repo: repo}
}

// postRequest is the JSON body for creating or updating a post. Tags is
// a pointer-free slice: absent means leave associations alone on update,
// present-but-empty clears them.
type postRequest struct {
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Excerpt         *string           `json:"excerpt"`
	Content         string            `json:"content"`
	FeaturedImage   *string           `json:"featuredImage"`
	Category        string            `json:"category"`
	Status          models.PostStatus `json:"status"`
	ScheduledAt     *time.Time        `json:"scheduledAt"`
	PublishedAt     *time.Time        `json:"publishedAt"`
	MetaTitle       *string           `json:"metaTitle"`
	MetaDescription *string           `json:"metaDescription"`
	MetaKeywords    []string          `json:"metaKeywords"`
	Tags            []string          `json:"tags"`
}

// input maps the request body onto the repository's input type.
func (req *postRequest) input() content.PostInput {
	return content.PostInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		Category:        req.Category,
		Status:          req.Status,
		ScheduledAt:     req.ScheduledAt,
		PublishedAt:     req.PublishedAt,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		Tags:            req.Tags,
	}
}

// ListPosts returns every post regardless of status as compact rows.
func (a *Admin) ListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.repo.AdminPosts())
}

// GetPost returns a post by primary key regardless of status.
func (a *Admin) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post := a.repo.AdminPostByID(id)
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// CreatePost creates a post on behalf of the session user.
func (a *Admin) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validatePost(req.Title, req.Slug, req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var ident *content.Identity
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		ident = &content.Identity{UserID: sess.UserID, Email: sess.Email}
	}

	post, err := a.repo.CreatePost(ident, req.input())
	if errors.Is(err, content.ErrNotAuthenticated) {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create post")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// UpdatePost overwrites a post by id.
func (a *Admin) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validatePost(req.Title, req.Slug, req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	post, err := a.repo.UpdatePost(id, req.input())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not update post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// DeletePost removes a post by id. Deleting an id that does not exist is
// a no-op and still returns 204.
func (a *Admin) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := a.repo.DeletePost(id); err != nil {
		writeError(w, http.StatusInternalServerError, "could not delete post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
