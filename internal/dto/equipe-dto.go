package dto

// EquipeOpcao é uma candidata a equipe responsável pela medição de uma
// modalidade, já com a linha inferida e o texto de exibição resolvido
// (nunca um UUID cru).
type EquipeOpcao struct {
	Valor       string `json:"valor"`
	Label       string `json:"label"`
	Linha       string `json:"linha"` // LM | LV | "" quando desconhecida
	Encarregado string `json:"encarregado,omitempty"`
	Origem      string `json:"origem"` // campo do acionamento ou vínculo que gerou a opção
}

// OpcoesEquipeResponse agrupa as candidatas e a seleção padrão por
// modalidade suportada pelo acionamento.
type OpcoesEquipeResponse struct {
	Opcoes    []EquipeOpcao `json:"opcoes"`
	PadraoLM  string        `json:"padrao_lm,omitempty"`
	PadraoLV  string        `json:"padrao_lv,omitempty"`
	SuportaLM bool          `json:"suporta_lm"`
	SuportaLV bool          `json:"suporta_lv"`
}
