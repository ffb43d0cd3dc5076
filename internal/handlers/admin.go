package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blogapp/internal/models"
	"blogapp/internal/render"
	"blogapp/internal/session"
	"blogapp/internal/slug"
	"blogapp/internal/store"
	"blogapp/internal/validate"
)

// Admin groups the handlers behind the admin area.
type Admin struct {
	renderer      *render.Renderer
	sessions      *session.Store
	postStore     *store.PostStore
	categoryStore *store.CategoryStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, postStore *store.PostStore, categoryStore *store.CategoryStore) *Admin {
	return &Admin{
		renderer:      renderer,
		sessions:      sessions,
		postStore:     postStore,
		categoryStore: categoryStore,
	}
}

// Dashboard shows the admin landing page with entity counts.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	postCount, err := a.postStore.Count()
	if err != nil {
		slog.Error("count posts failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao carregar o painel")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	categoryCount, err := a.categoryStore.Count()
	if err != nil {
		slog.Error("count categories failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao carregar o painel")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin_index", &render.PageData{
		Title: "Painel",
		Data: map[string]any{
			"PostCount":     postCount,
			"CategoryCount": categoryCount,
		},
	})
}

// Categories lists all categories for the admin.
func (a *Admin) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categoryStore.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "houve um erro ao listar as categorias")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin_categorias", &render.PageData{
		Title: "Categorias",
		Data:  map[string]any{"Categories": categories},
	})
}

// AddCategoryForm renders the new-category form.
func (a *Admin) AddCategoryForm(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "admin_addcategoria", &render.PageData{
		Title: "Nova categoria",
		Data:  map[string]any{"Nome": "", "Slug": ""},
	})
}

// CreateCategory validates the submitted form and inserts a category.
// Validation failures re-render the form with the submitted values kept.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	nome := r.PostFormValue("nome")
	slugField := r.PostFormValue("slug")

	if errs := validate.Category(nome, slugField); len(errs) > 0 {
		a.renderer.Page(w, r, "admin_addcategoria", &render.PageData{
			Title:  "Nova categoria",
			Errors: errs,
			Data:   map[string]any{"Nome": nome, "Slug": slugField},
		})
		return
	}

	_, err := a.categoryStore.Create(&models.Category{
		Name: nome,
		Slug: slug.Generate(slugField),
	})
	if err != nil {
		slog.Error("create category failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao salvar a categoria, tente novamente!")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.sessions.AddFlash(r.Context(), w, r, session.FlashSuccess, "Categoria criada com sucesso!")
	http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
}

// EditCategoryForm renders the edit form for one category.
func (a *Admin) EditCategoryForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Categoria inexistente!")
		http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
		return
	}

	category, err := a.categoryStore.FindByID(id)
	if err != nil {
		slog.Error("find category failed", "error", err, "id", id)
	}
	if err != nil || category == nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Categoria inexistente!")
		http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin_editcategoria", &render.PageData{
		Title: "Editar categoria",
		Data: map[string]any{
			"ID":   category.ID,
			"Nome": category.Name,
			"Slug": category.Slug,
		},
	})
}

// UpdateCategory validates the submitted form and overwrites the category.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	idField := r.PostFormValue("id")
	nome := r.PostFormValue("nome")
	slugField := r.PostFormValue("slug")

	if errs := validate.Category(nome, slugField); len(errs) > 0 {
		a.renderer.Page(w, r, "admin_editcategoria", &render.PageData{
			Title:  "Editar categoria",
			Errors: errs,
			Data:   map[string]any{"ID": idField, "Nome": nome, "Slug": slugField},
		})
		return
	}

	id, err := uuid.Parse(idField)
	if err != nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao editar a categoria")
		http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
		return
	}

	err = a.categoryStore.Update(&models.Category{
		ID:   id,
		Name: nome,
		Slug: slug.Generate(slugField),
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao editar a categoria")
		http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
	case err != nil:
		slog.Error("update category failed", "error", err, "id", id)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao editar a categoria!")
		http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
	default:
		a.sessions.AddFlash(r.Context(), w, r, session.FlashSuccess, "Categoria editada com sucesso!")
		http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
	}
}

// DeleteCategory removes a category. Posts pointing at it survive with
// their category reference cleared.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PostFormValue("id"))
	if err == nil {
		err = a.categoryStore.Delete(id)
	}
	if err != nil {
		slog.Error("delete category failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao deletar a categoria, tente novamente!")
		http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
		return
	}

	a.sessions.AddFlash(r.Context(), w, r, session.FlashSuccess, "Categoria deletada com sucesso!")
	http.Redirect(w, r, "/admin/categorias", http.StatusSeeOther)
}

// Posts lists all posts for the admin, categories populated.
func (a *Admin) Posts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.postStore.List()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "houve um erro ao carregar as postagens")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin_postagens", &render.PageData{
		Title: "Postagens",
		Data:  map[string]any{"Posts": posts},
	})
}

// AddPostForm renders the new-post form with category choices.
func (a *Admin) AddPostForm(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categoryStore.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao carregar o formulário")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin_addpostagem", &render.PageData{
		Title: "Nova postagem",
		Data: map[string]any{
			"Categories": categories,
			"Titulo":     "",
			"Slug":       "",
			"Descricao":  "",
			"Conteudo":   "",
			"Selected":   validate.CategoryNone,
		},
	})
}

// CreatePost validates the submitted form and inserts a post. Validation
// failures re-render the form with the category choices refetched.
func (a *Admin) CreatePost(w http.ResponseWriter, r *http.Request) {
	titulo := r.PostFormValue("titulo")
	slugField := r.PostFormValue("slug")
	descricao := r.PostFormValue("descricao")
	conteudo := r.PostFormValue("conteudo")
	categoria := r.PostFormValue("categoria")

	if errs := validate.Post(titulo, slugField, descricao, conteudo, categoria); len(errs) > 0 {
		categories, err := a.categoryStore.List()
		if err != nil {
			slog.Error("list categories failed", "error", err)
			a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao carregar o formulário")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		a.renderer.Page(w, r, "admin_addpostagem", &render.PageData{
			Title:  "Nova postagem",
			Errors: errs,
			Data: map[string]any{
				"Categories": categories,
				"Titulo":     titulo,
				"Slug":       slugField,
				"Descricao":  descricao,
				"Conteudo":   conteudo,
				"Selected":   categoria,
			},
		})
		return
	}

	categoryID, err := uuid.Parse(categoria)
	if err != nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao salvar a postagem, tente novamente!")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	_, err = a.postStore.Create(&models.Post{
		Title:      titulo,
		Slug:       slug.Generate(slugField),
		Summary:    descricao,
		Body:       conteudo,
		CategoryID: &categoryID,
	})
	if err != nil {
		slog.Error("create post failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao salvar a postagem, tente novamente!")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.sessions.AddFlash(r.Context(), w, r, session.FlashSuccess, "Postagem criada com sucesso!")
	http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
}

// EditPostForm renders the edit form for one post with category choices.
func (a *Admin) EditPostForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Postagem inexistente!")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
		return
	}

	post, err := a.postStore.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "error", err, "id", id)
	}
	if err != nil || post == nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Postagem inexistente!")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
		return
	}

	categories, err := a.categoryStore.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao carregar as categorias!")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
		return
	}

	selected := validate.CategoryNone
	if post.CategoryID != nil {
		selected = post.CategoryID.String()
	}

	a.renderer.Page(w, r, "admin_editpostagem", &render.PageData{
		Title: "Editar postagem",
		Data: map[string]any{
			"ID":         post.ID,
			"Categories": categories,
			"Titulo":     post.Title,
			"Slug":       post.Slug,
			"Descricao":  post.Summary,
			"Conteudo":   post.Body,
			"Selected":   selected,
		},
	})
}

// UpdatePost validates the submitted form and overwrites the post.
func (a *Admin) UpdatePost(w http.ResponseWriter, r *http.Request) {
	idField := r.PostFormValue("id")
	titulo := r.PostFormValue("titulo")
	slugField := r.PostFormValue("slug")
	descricao := r.PostFormValue("descricao")
	conteudo := r.PostFormValue("conteudo")
	categoria := r.PostFormValue("categoria")

	if errs := validate.Post(titulo, slugField, descricao, conteudo, categoria); len(errs) > 0 {
		categories, err := a.categoryStore.List()
		if err != nil {
			slog.Error("list categories failed", "error", err)
			a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao carregar as categorias!")
			http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
			return
		}
		a.renderer.Page(w, r, "admin_editpostagem", &render.PageData{
			Title:  "Editar postagem",
			Errors: errs,
			Data: map[string]any{
				"ID":         idField,
				"Categories": categories,
				"Titulo":     titulo,
				"Slug":       slugField,
				"Descricao":  descricao,
				"Conteudo":   conteudo,
				"Selected":   categoria,
			},
		})
		return
	}

	id, err := uuid.Parse(idField)
	if err != nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao salvar a edição")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
		return
	}

	categoryID, err := uuid.Parse(categoria)
	if err != nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao salvar a edição")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
		return
	}

	err = a.postStore.Update(&models.Post{
		ID:         id,
		Title:      titulo,
		Slug:       slug.Generate(slugField),
		Summary:    descricao,
		Body:       conteudo,
		CategoryID: &categoryID,
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao salvar a edição")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
	case err != nil:
		slog.Error("update post failed", "error", err, "id", id)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "erro interno")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
	default:
		a.sessions.AddFlash(r.Context(), w, r, session.FlashSuccess, "Postagem editada com sucesso!")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
	}
}

// DeletePost removes a post.
func (a *Admin) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PostFormValue("id"))
	if err == nil {
		err = a.postStore.Delete(id)
	}
	if err != nil {
		slog.Error("delete post failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Erro ao deletar a postagem, tente novamente!")
		http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
		return
	}

	a.sessions.AddFlash(r.Context(), w, r, session.FlashSuccess, "Postagem deletada com sucesso!")
	http.Redirect(w, r, "/admin/postagens", http.StatusSeeOther)
}
