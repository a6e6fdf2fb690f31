package entities

import "time"

type Usuario struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	Nome         string    `json:"nome"`
	SenhaHash    string    `json:"-"`
	Ativo        bool      `json:"ativo"`
	CriadoEm     time.Time `json:"criado_em"`
}
