package entities

import "github.com/aarondl/null/v8"

// Equipe é o cadastro de equipes no banco, referenciado por UUID a partir
// dos acionamentos mais novos.
type Equipe struct {
	IDEquipe        string      `json:"id_equipe"`
	NomeEquipe      string      `json:"nome_equipe"`
	Linha           null.String `json:"linha"` // texto livre: "LV", "linha morta", ...
	EncarregadoNome null.String `json:"encarregado_nome"`
	Ativa           bool        `json:"ativa"`
}

// AcionamentoEquipe liga um acionamento a uma equipe adicional, com o
// papel que ela cumpriu (usado na inferência de modalidade).
type AcionamentoEquipe struct {
	ID              uint64      `json:"id"`
	IDAcionamento   string      `json:"id_acionamento"`
	IDEquipe        null.String `json:"id_equipe"`
	Papel           null.String `json:"papel"`
	EncarregadoNome null.String `json:"encarregado_nome"`
}
