package chat

import "time"

type Server struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Short string `json:"short,omitempty" validate:"max=2"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

type Channel struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Topic string `json:"topic"`
}

type Message struct {
	ID      string     `json:"id" validate:"required"`
	User    string     `json:"user" validate:"required"`
	Avatar  string     `json:"avatar"`
	Text    string     `json:"text"`
	Created *time.Time `json:"created,omitempty"`
}

// Data is everything that gets persisted. Selection is deliberately not part of it.
type Data struct {
	Servers  []Server             `json:"servers" validate:"required,unique=ID,dive"`
	Channels map[string][]Channel `json:"channels" validate:"required,dive,dive"`
	Messages map[string][]Message `json:"messages" validate:"dive,dive"`
}

// Author is the identity used for messages typed into the composer.
type Author struct {
	Name   string
	Avatar string
}

// DefaultAuthor is the local "you" identity.
var DefaultAuthor = Author{Name: "Você", Avatar: "V"}

func NewAuthor(name string) Author {
	if name == "" {
		return DefaultAuthor
	}
	return Author{Name: name, Avatar: firstRune(name)}
}

// Seed returns a fresh copy of the bundled example dataset.
func Seed() Data {
	return Data{
		Servers: []Server{
			{ID: "s1", Name: "Rizz Hub", Short: "RH", Color: "#6ee7b7"},
			{ID: "s2", Name: "Estudo", Short: "ES", Color: "#9ad3f5"},
			{ID: "s3", Name: "Lazer", Short: "LZ", Color: "#f6c179"},
		},
		Channels: map[string][]Channel{
			"s1": {
				{ID: "c1", Name: "geral", Topic: "Bate-papo geral"},
				{ID: "c2", Name: "anuncios", Topic: "Novidades e avisos"},
				{ID: "c3", Name: "projetos", Topic: "Projetos em andamento"},
			},
			"s2": {
				{ID: "c4", Name: "aulas", Topic: "Aulas e materiais"},
				{ID: "c5", Name: "duvidas", Topic: "Tira-dúvidas"},
			},
			"s3": {
				{ID: "c6", Name: "música", Topic: "Compartilhe músicas"},
				{ID: "c7", Name: "memes", Topic: "Memes e diversão"},
			},
		},
		Messages: map[string][]Message{
			"c1": {
				{ID: "m1", User: "Lia", Avatar: "L", Text: "Bem-vind@s ao canal geral do Rizz!"},
				{ID: "m2", User: "Bruno", Avatar: "B", Text: "Olá pessoal — testando o chat."},
			},
			"c2": {
				{ID: "m3", User: "Admin", Avatar: "A", Text: "Lançamos a versão 1.0 do Rizz."},
			},
			"c4": {
				{ID: "m4", User: "Profª Ana", Avatar: "A", Text: "A aula começa às 19h."},
			},
		},
	}
}
