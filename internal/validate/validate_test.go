package validate

import (
	"reflect"
	"testing"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name string
		nome string
		slug string
		want []string
	}{
		{"valid", "Tecnologia", "tecnologia", nil},
		{"empty nome", "", "tecnologia", []string{"nome inválido"}},
		{"whitespace nome", "   ", "tecnologia", []string{"nome inválido"}},
		{"empty slug", "Tecnologia", "", []string{"slug inválido"}},
		{"short nome", "T", "t", []string{"Nome da categoria muito pequeno"}},
		{"both empty", "", "", []string{"nome inválido", "slug inválido"}},
		{"two-rune nome ok", "Aí", "ai", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Category(tt.nome, tt.slug)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPost(t *testing.T) {
	tests := []struct {
		name      string
		titulo    string
		slug      string
		descricao string
		conteudo  string
		categoria string
		want      []string
	}{
		{"valid", "Minha Postagem", "minha-postagem", "resumo", "corpo", "b3c9", nil},
		{"empty titulo", "", "s", "d", "c", "b3c9", []string{"Titulo inválido"}},
		{"empty slug", "Titulo", "", "d", "c", "b3c9", []string{"slug inválido"}},
		{"empty descricao", "Titulo", "s", "", "c", "b3c9", []string{"Descrição inválida"}},
		{"empty conteudo", "Titulo", "s", "d", "", "b3c9", []string{"Conteúdo inválido"}},
		{"placeholder categoria", "Titulo", "s", "d", "c", CategoryNone, []string{"Categoria inválido"}},
		{"empty categoria", "Titulo", "s", "d", "c", "", []string{"Categoria inválido"}},
		{"short titulo", "T", "s", "d", "c", "b3c9", []string{"Titulo da postagem muito pequeno"}},
		{
			"everything empty", "", "", "", "", "",
			[]string{"Titulo inválido", "slug inválido", "Descrição inválida", "Conteúdo inválido", "Categoria inválido"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Post(tt.titulo, tt.slug, tt.descricao, tt.conteudo, tt.categoria)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistration(t *testing.T) {
	tests := []struct {
		name   string
		nome   string
		email  string
		senha  string
		senha2 string
		want   []string
	}{
		{"valid", "Maria", "maria@example.com", "segredo", "segredo", nil},
		{"empty nome", "", "m@x.com", "segredo", "segredo", []string{"Nome inválido"}},
		{"empty email", "Maria", "", "segredo", "segredo", []string{"email inválido"}},
		{
			"empty senha", "Maria", "m@x.com", "", "",
			[]string{"senha inválida"},
		},
		{
			"mismatch", "Maria", "m@x.com", "segredo", "outra",
			[]string{"As senhas não combinam, tente novamente!"},
		},
		{
			"short senha", "Maria", "m@x.com", "abc", "abc",
			[]string{"Senha muito pequena"},
		},
		{
			"short and mismatched", "Maria", "m@x.com", "abc", "abcd",
			[]string{"As senhas não combinam, tente novamente!", "Senha muito pequena"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Registration(tt.nome, tt.email, tt.senha, tt.senha2)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
