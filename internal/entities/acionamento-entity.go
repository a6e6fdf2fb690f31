package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Acionamento é a unidade de trabalho do fluxo: uma ordem de serviço de
// manutenção despachada para campo e acompanhada pelas 10 etapas.
type Acionamento struct {
	IDAcionamento     string `json:"id_acionamento"`
	CodigoAcionamento string `json:"codigo_acionamento"`
	Prioridade        string `json:"prioridade"` // emergencial | programado
	Modalidade        string `json:"modalidade"` // LM | LV | LM+LV
	EtapaAtual        int    `json:"etapa_atual"`
	Status            string `json:"status"` // aberto | despachado | em_execucao | concluido | cancelado

	ElementoID null.String `json:"elemento_id"`

	// Referências de equipe: o dado histórico chega por vários campos
	// (código direto, nome livre, UUID da tabela equipes).
	IDEquipe      null.String `json:"id_equipe"`
	CodigoEquipe  null.String `json:"codigo_equipe"`
	Equipe        null.String `json:"equipe"`
	NomeEquipe    null.String `json:"nome_equipe"`
	EquipeLM      null.String `json:"equipe_lm"`
	EquipeLV      null.String `json:"equipe_lv"`
	Encarregado   null.String `json:"encarregado"`
	EncarregadoLM null.String `json:"encarregado_lm"`
	EncarregadoLV null.String `json:"encarregado_lv"`
	Tecnico       null.String `json:"tecnico"`

	Descricao   null.String `json:"descricao"`
	Observacoes null.String `json:"observacoes"`

	Municipio  null.String `json:"municipio"`
	Endereco   null.String `json:"endereco"`
	Logradouro null.String `json:"logradouro"`
	Numero     null.String `json:"numero"`
	Bairro     null.String `json:"bairro"`
	UF         null.String `json:"uf"`

	DataAbertura         time.Time `json:"data_abertura"`
	DataDespacho         null.Time `json:"data_despacho"`
	AlmoxConferidoEm     null.Time `json:"almox_conferido_em"`
	ExecucaoFinalizadaEm null.Time `json:"execucao_finalizada_em"`
	MedicaoRegistradaEm  null.Time `json:"medicao_registrada_em"`

	NumeroOS               null.String `json:"numero_os"`
	OSCriadaEm             null.Time   `json:"os_criada_em"`
	BookEnviadoEm          null.Time   `json:"book_enviado_em"`
	BookDestinatario       null.String `json:"book_destinatario"`
	BookMensagem           null.String `json:"book_mensagem"`
	NumeroObra             null.String `json:"numero_obra"`
	NumeroObraAtualizadoEm null.Time   `json:"numero_obra_atualizado_em"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm null.Time `json:"atualizado_em"`
}

// SuportaLM indica se o acionamento exige medição de linha morta.
func (a *Acionamento) SuportaLM() bool { return a.Modalidade != "LV" }

// SuportaLV indica se o acionamento exige medição de linha viva.
func (a *Acionamento) SuportaLV() bool { return a.Modalidade != "LM" }
