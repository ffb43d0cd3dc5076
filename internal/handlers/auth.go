package handlers

import (
	"log/slog"
	"net/http"

	"blogapp/internal/render"
	"blogapp/internal/session"
	"blogapp/internal/store"
	"blogapp/internal/validate"
)

// Auth groups the registration, login and logout handlers.
type Auth struct {
	renderer  *render.Renderer
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		renderer:  renderer,
		sessions:  sessions,
		userStore: userStore,
	}
}

// RegisterForm renders the registration form.
func (a *Auth) RegisterForm(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "registro", &render.PageData{
		Title: "Registro",
		Data:  map[string]any{"Nome": "", "Email": ""},
	})
}

// Register validates the submitted form and creates a regular user.
// Accounts created here never carry admin rights.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	nome := r.PostFormValue("nome")
	email := r.PostFormValue("email")
	senha := r.PostFormValue("senha")
	senha2 := r.PostFormValue("senha2")

	if errs := validate.Registration(nome, email, senha, senha2); len(errs) > 0 {
		a.renderer.Page(w, r, "registro", &render.PageData{
			Title:  "Registro",
			Errors: errs,
			Data:   map[string]any{"Nome": nome, "Email": email},
		})
		return
	}

	existing, err := a.userStore.FindByEmail(email)
	if err != nil {
		slog.Error("find user by email failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro interno")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if existing != nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Email ja registrado!")
		http.Redirect(w, r, "/admin/registro", http.StatusSeeOther)
		return
	}

	if _, err := a.userStore.Create(nome, email, senha); err != nil {
		slog.Error("create user failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro ao salvar seu usuário")
		http.Redirect(w, r, "/admin/registro", http.StatusSeeOther)
		return
	}

	a.sessions.AddFlash(r.Context(), w, r, session.FlashSuccess, "Usuário criado com sucesso!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LoginForm renders the login form.
func (a *Auth) LoginForm(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Login",
		Data:  map[string]any{"Email": ""},
	})
}

// Login checks the submitted credentials and opens a session. Unknown
// account and wrong password get distinct messages, both redirecting
// back to the form.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	senha := r.PostFormValue("senha")

	user, err := a.userStore.FindByEmail(email)
	if err != nil {
		slog.Error("find user by email failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro interno")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	if user == nil {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Essa conta não existe")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	if !a.userStore.CheckPassword(user, senha) {
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Senha incorreta")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		slog.Error("create session failed", "error", err)
		a.sessions.AddFlash(r.Context(), w, r, session.FlashError, "Houve um erro interno")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the current session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("destroy session failed", "error", err)
	}
	a.sessions.AddFlash(r.Context(), w, r, session.FlashSuccess, "Deslogado com sucesso!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
