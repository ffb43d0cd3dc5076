// Package validate checks form submissions for category, post and
// registration writes. Each function returns the full ordered list of
// failed-rule messages; every rule is evaluated independently so the form
// can show all problems at once. An empty result means the write may
// proceed.
package validate

import (
	"strings"
	"unicode/utf8"
)

// CategoryNone is the <select> sentinel for "no category selected".
const CategoryNone = "0"

// Minimum lengths for the guarded rules below.
const (
	minNameLen     = 2
	minPasswordLen = 4
)

// Category validates a category form submission.
func Category(nome, slug string) []string {
	var errs []string

	if missing(nome) {
		errs = append(errs, "nome inválido")
	}
	if missing(slug) {
		errs = append(errs, "slug inválido")
	}
	// Length is only measured when the field is present; an absent name
	// already failed the rule above.
	if !missing(nome) && utf8.RuneCountInString(nome) < minNameLen {
		errs = append(errs, "Nome da categoria muito pequeno")
	}

	return errs
}

// Post validates a post form submission. The category value must be a
// real selection, not the placeholder option.
func Post(titulo, slug, descricao, conteudo, categoria string) []string {
	var errs []string

	if missing(titulo) {
		errs = append(errs, "Titulo inválido")
	}
	if missing(slug) {
		errs = append(errs, "slug inválido")
	}
	if missing(descricao) {
		errs = append(errs, "Descrição inválida")
	}
	if missing(conteudo) {
		errs = append(errs, "Conteúdo inválido")
	}
	if missing(categoria) || categoria == CategoryNone {
		errs = append(errs, "Categoria inválido")
	}
	if !missing(titulo) && utf8.RuneCountInString(titulo) < minNameLen {
		errs = append(errs, "Titulo da postagem muito pequeno")
	}

	return errs
}

// Registration validates the new-user form, including password
// confirmation equality and minimum password length.
func Registration(nome, email, senha, senha2 string) []string {
	var errs []string

	if missing(nome) {
		errs = append(errs, "Nome inválido")
	}
	if missing(email) {
		errs = append(errs, "email inválido")
	}
	if missing(senha) {
		errs = append(errs, "senha inválida")
	}
	if senha != senha2 {
		errs = append(errs, "As senhas não combinam, tente novamente!")
	}
	if !missing(senha) && utf8.RuneCountInString(senha) < minPasswordLen {
		errs = append(errs, "Senha muito pequena")
	}

	return errs
}

// missing reports whether a required text field is absent or blank.
func missing(v string) bool {
	return strings.TrimSpace(v) == ""
}
