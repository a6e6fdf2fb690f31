package dto

import "acionamento-system/internal/entities"

// SalvarMedicaoRequest substitui o rascunho de medição do acionamento.
type SalvarMedicaoRequest struct {
	ItensLM     []entities.MedicaoItem `json:"itens_lm" validate:"dive"`
	ItensLV     []entities.MedicaoItem `json:"itens_lv" validate:"dive"`
	ForaHorario bool                   `json:"fora_horario"`
	ValorUpsLM  *float64               `json:"valor_ups_lm"`
	ValorUpsLV  *float64               `json:"valor_ups_lv"`
}

type AdicionarItemMedicaoRequest struct {
	Linha  string `json:"linha" validate:"required,oneof=LM LV"`
	Codigo string `json:"codigo" validate:"required"`
}

type RemoverItemMedicaoRequest struct {
	Linha    string `json:"linha" validate:"required,oneof=LM LV"`
	Codigo   string `json:"codigo" validate:"required"`
	Operacao string `json:"operacao"`
}

type AjustarQuantidadeRequest struct {
	Linha      string  `json:"linha" validate:"required,oneof=LM LV"`
	Codigo     string  `json:"codigo" validate:"required"`
	Operacao   string  `json:"operacao"`
	Quantidade float64 `json:"quantidade"`
}

// RegistrarMedicaoRequest fecha a etapa de medição: informa a equipe
// responsável de cada modalidade suportada pelo acionamento.
type RegistrarMedicaoRequest struct {
	EquipeLM string `json:"equipe_lm"`
	EquipeLV string `json:"equipe_lv"`
}

// ItemCalculado é uma linha do orçamento com o subtotal já resolvido.
type ItemCalculado struct {
	Codigo     string  `json:"codigo"`
	Descricao  string  `json:"descricao"`
	Unidade    string  `json:"unidade"`
	ValorUps   float64 `json:"valorUps"`
	Quantidade float64 `json:"quantidade"`
	Operacao   string  `json:"operacao"`
	Subtotal   float64 `json:"subtotal"`
}

// ResumoMaoDeObra é o fechamento financeiro de uma modalidade: itens
// calculados, total base, adicional emergencial e total final.
type ResumoMaoDeObra struct {
	Linha               string          `json:"linha"`
	Itens               []ItemCalculado `json:"itens"`
	TotalBase           float64         `json:"total_base"`
	ForaHorario         bool            `json:"fora_horario"`
	CodigoAdicional     string          `json:"codigo_adicional"`
	DescricaoAdicional  string          `json:"descricao_adicional"`
	PercentualAdicional float64         `json:"percentual_adicional"`
	ValorAdicional      float64         `json:"valor_adicional"`
	TotalFinal          float64         `json:"total_final"`
}

// BuscarCodigosRequest filtra o catálogo de mão de obra para o seletor
// de itens da medição.
type BuscarCodigosRequest struct {
	Busca string `query:"busca"`
	Tipo  string `query:"tipo" validate:"omitempty,oneof=LM LV"`
	Limit uint64 `query:"limit"`
}
