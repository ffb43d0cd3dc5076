// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogapp/internal/handlers"
	"blogapp/internal/middleware"
	"blogapp/internal/session"
	"blogapp/web"
)

// Deps carries everything the router needs.
type Deps struct {
	Sessions *session.Store
	Public   *handlers.Public
	Admin    *handlers.Admin
	Auth     *handlers.Auth
}

// New builds the chi router with the full route table. The returned rate
// limiter guards the login endpoint and must be stopped on shutdown.
func New(deps Deps) (chi.Router, *middleware.RateLimiter) {
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.HTTPMetrics)
	r.Use(middleware.LoadSession(deps.Sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	// The embedded FS is rooted at the package directory, so the URL path
	// /static/... maps straight onto it without stripping.
	r.Handle("/static/*", http.FileServerFS(web.StaticFS))

	r.Get("/", deps.Public.Home)
	r.Get("/postagem/{slug}", deps.Public.Post)
	r.Get("/categorias", deps.Public.Categories)
	r.Get("/categorias/{slug}", deps.Public.CategoryPosts)
	r.Get("/404", deps.Public.NotFound)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		r.Get("/registro", deps.Auth.RegisterForm)
		r.Post("/registro", deps.Auth.Register)
		r.Get("/login", deps.Auth.LoginForm)
		r.With(loginLimiter.Middleware).Post("/login", deps.Auth.Login)
		r.Get("/logout", deps.Auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(deps.Sessions))

			r.Get("/", deps.Admin.Dashboard)

			r.Get("/categorias", deps.Admin.Categories)
			r.Get("/categorias/add", deps.Admin.AddCategoryForm)
			r.Post("/categorias/nova", deps.Admin.CreateCategory)
			r.Get("/categorias/edit/{id}", deps.Admin.EditCategoryForm)
			r.Post("/categorias/edit", deps.Admin.UpdateCategory)
			r.Post("/categorias/deletar", deps.Admin.DeleteCategory)

			r.Get("/postagens", deps.Admin.Posts)
			r.Get("/postagens/add", deps.Admin.AddPostForm)
			r.Post("/postagens/nova", deps.Admin.CreatePost)
			r.Get("/postagens/edit/{id}", deps.Admin.EditPostForm)
			r.Post("/postagens/edit", deps.Admin.UpdatePost)
			r.Post("/postagens/deletar", deps.Admin.DeletePost)
		})
	})

	return r, loginLimiter
}
