// Package handlers contains the HTTP handlers for the blog. Handlers are
// grouped by concern (public, admin, auth) and receive their dependencies
// through the handler struct. Every store or validation failure is
// converted into a flash message plus redirect — domain failures never
// surface as raw server errors.
package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blogapp/internal/markdown"
	"blogapp/internal/render"
	"blogapp/internal/session"
	"blogapp/internal/store"
)

// Public groups handlers for the public-facing site.
type Public struct {
	renderer      *render.Renderer
	sessions      *session.Store
	postStore     *store.PostStore
	categoryStore *store.CategoryStore
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, sessions *session.Store, postStore *store.PostStore, categoryStore *store.CategoryStore) *Public {
	return &Public{
		renderer:      renderer,
		sessions:      sessions,
		postStore:     postStore,
		categoryStore: categoryStore,
	}
}

// Home lists all posts, newest first, with categories populated.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := p.postStore.List()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		p.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao carregar as postagens")
		http.Redirect(w, r, "/404", http.StatusSeeOther)
		return
	}

	p.renderer.Page(w, r, "index", &render.PageData{
		Title: "Home",
		Data:  map[string]any{"Posts": posts},
	})
}

// Post shows a single post looked up by slug, with its body rendered
// from Markdown/HTML.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	post, err := p.postStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find post by slug failed", "error", err, "slug", slugParam)
		p.sessions.AddFlash(r.Context(), w, r, session.FlashError, "houve um erro interno")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if post == nil {
		p.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Postagem não encontrada!")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	bodyHTML, err := markdown.ToHTML(post.Body)
	if err != nil {
		slog.Error("render post body failed", "error", err, "slug", slugParam)
		p.sessions.AddFlash(r.Context(), w, r, session.FlashError, "houve um erro interno")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	p.renderer.Page(w, r, "postagem", &render.PageData{
		Title: post.Title,
		Data: map[string]any{
			"Post":     post,
			"BodyHTML": template.HTML(bodyHTML),
		},
	})
}

// Categories lists all categories.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := p.categoryStore.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		p.sessions.AddFlash(r.Context(), w, r, session.FlashError, "houve um erro ao carregar as categorias")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	p.renderer.Page(w, r, "categorias", &render.PageData{
		Title: "Categorias",
		Data:  map[string]any{"Categories": categories},
	})
}

// CategoryPosts shows a category looked up by slug and its posts.
// The two reads are sequential: the category must resolve before its
// posts are listed.
func (p *Public) CategoryPosts(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	category, err := p.categoryStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find category by slug failed", "error", err, "slug", slugParam)
		p.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao carregar a pagina interna da categoria")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if category == nil {
		p.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Essa categoria não existe")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	posts, err := p.postStore.ListByCategory(category.ID)
	if err != nil {
		slog.Error("list posts by category failed", "error", err, "category", category.ID)
		p.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao listar os posts")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	p.renderer.Page(w, r, "categoria_postagens", &render.PageData{
		Title: category.Name,
		Data: map[string]any{
			"Category": category,
			"Posts":    posts,
		},
	})
}

// NotFound serves the static error page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Erro 404!"))
}
