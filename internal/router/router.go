// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Inkwell API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Session auth rides on a cookie, so every state-changing API
		// route needs CSRF protection. Public GETs issue the token.
		r.Use(middleware.CSRF)
		// Public content — published posts, categories, comments.
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", public.ListPosts)
			r.Get("/recent", public.RecentPosts)
			r.Get("/featured", public.FeaturedPost)
			r.Get("/{slug}", public.GetPost)
			r.Get("/{id}/comments", public.ListComments)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", public.ListCategories)
			r.Get("/{slug}", public.GetCategory)
			r.Get("/{slug}/posts", public.PostsByCategory)
		})

		// Comment submission — open, moderated through the pending queue.
		r.Post("/comments", public.CreateComment)

		// Session management. Login gets a per-IP throttle against
		// password guessing.
		loginLimiter := middleware.NewRateLimiter(10, time.Minute)
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Middleware).Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
		})

		// Admin area — requires an authenticated session.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", admin.ListPosts)
				r.Post("/", admin.CreatePost)
				r.Get("/{id}", admin.GetPost)
				r.Put("/{id}", admin.UpdatePost)
				r.Delete("/{id}", admin.DeletePost)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
