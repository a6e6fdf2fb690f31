package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MedicaoItem é uma linha de mão de obra selecionada do catálogo para a
// medição de uma modalidade. Serializado como JSONB no rascunho.
type MedicaoItem struct {
	Codigo     string  `json:"codigo"`
	Descricao  string  `json:"descricao"`
	Unidade    string  `json:"unidade"`
	ValorUps   float64 `json:"valorUps"`
	Quantidade float64 `json:"quantidade"`
	Operacao   string  `json:"operacao"`
	Tipo       string  `json:"tipo"` // LM | LV
}

// MedicaoOrcamento é o rascunho de medição/orçamento de um acionamento,
// um por acionamento (upsert por id_acionamento). Os totais gravados são
// apenas cache do cálculo; a fonte de verdade é o cálculo puro.
type MedicaoOrcamento struct {
	IDAcionamento string        `json:"id_acionamento"`
	ItensLM       []MedicaoItem `json:"itens_lm"`
	ItensLV       []MedicaoItem `json:"itens_lv"`
	ForaHorario   bool          `json:"fora_horario"`
	ValorUpsLM    float64       `json:"valor_ups_lm"`
	ValorUpsLV    float64       `json:"valor_ups_lv"`
	TotalBaseLM   float64       `json:"total_base_lm"`
	TotalBaseLV   float64       `json:"total_base_lv"`
	TotalFinalLM  float64       `json:"total_final_lm"`
	TotalFinalLV  float64       `json:"total_final_lv"`
	AtualizadoPor null.Uint64   `json:"atualizado_por"`
	AtualizadoEm  time.Time     `json:"atualizado_em"`
}

// Itens devolve a lista da modalidade pedida.
func (m *MedicaoOrcamento) Itens(linha string) []MedicaoItem {
	if linha == "LV" {
		return m.ItensLV
	}
	return m.ItensLM
}

// ValorUps devolve o valor monetário por unidade UPS da modalidade.
func (m *MedicaoOrcamento) ValorUps(linha string) float64 {
	if linha == "LV" {
		return m.ValorUpsLV
	}
	return m.ValorUpsLM
}
