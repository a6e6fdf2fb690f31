package dto

import "acionamento-system/internal/entities"

// OrcamentoContexto é o snapshot completo que alimenta os geradores de
// documento (PDF de orçamento e planilha de medição). Montado uma vez
// pelo serviço para que os geradores não toquem banco.
type OrcamentoContexto struct {
	Linha string `json:"linha"` // LM | LV

	CodigoAcionamento string `json:"codigo_acionamento"`
	Modalidade        string `json:"modalidade"`
	Municipio         string `json:"municipio"`
	Endereco          string `json:"endereco"`
	NumeroOS          string `json:"numero_os"`
	NumeroObra        string `json:"numero_obra"`
	Descricao         string `json:"descricao"`

	// Texto de exibição da equipe responsável, já resolvido pelo
	// resolvedor (sigla, nunca UUID).
	EquipeDisplay string `json:"equipe_display"`
	Encarregado   string `json:"encarregado"`

	DataDespacho string `json:"data_despacho"` // dd/mm/aaaa hh:mm ou "--"
	DataExecucao string `json:"data_execucao"`
	DataEmissao  string `json:"data_emissao"`

	Execucao *entities.Execucao `json:"execucao,omitempty"`

	Resumo  ResumoMaoDeObra       `json:"resumo"`
	Consumo []entities.ConsumoItem `json:"consumo"`
	Sucata  []entities.SucataItem  `json:"sucata"`
}
