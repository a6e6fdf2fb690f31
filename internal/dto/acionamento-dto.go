package dto

import "acionamento-system/internal/entities"

// ListarAcionamentosRequest filtra o quadro por etapa, com busca textual
// opcional sobre número, cidade e equipe.
type ListarAcionamentosRequest struct {
	Etapa  int    `query:"etapa" validate:"required,min=1,max=10"`
	Busca  string `query:"busca"`
	Limit  uint64 `query:"limit"`
	Offset uint64 `query:"offset"`
}

type CriarAcionamentoRequest struct {
	NumeroAcionamento string `json:"numero_acionamento" validate:"required"`
	Modalidade        string `json:"modalidade" validate:"required,oneof=LM LV LM+LV"`
	Municipio         string `json:"municipio"`
	Descricao         string `json:"descricao"`
	Equipe            string `json:"equipe"`
	CodigoEquipe      string `json:"codigo_equipe"`
}

// AtualizarAcionamentoRequest cobre os campos editáveis fora dos fluxos
// dedicados (despacho, execução, medição). Ponteiros distinguem "não
// enviado" de "limpar".
type AtualizarAcionamentoRequest struct {
	Municipio    *string `json:"municipio"`
	Descricao    *string `json:"descricao"`
	Equipe       *string `json:"equipe"`
	CodigoEquipe *string `json:"codigo_equipe"`
	EquipeLM     *string `json:"equipe_lm"`
	EquipeLV     *string `json:"equipe_lv"`
	Observacoes  *string `json:"observacoes"`
}

type DespacharRequest struct {
	DataDespacho   string `json:"data_despacho" validate:"required"`
	Status         string `json:"status"`
	AlmoxConferido bool   `json:"almox_conferido"`
}

type RegistrarOSRequest struct {
	NumeroOS string `json:"numero_os" validate:"required"`
}

// MarcarBookRequest acompanha o registro de envio do book; os dois
// campos são opcionais e guardam o e-mail enviado à fiscalização.
type MarcarBookRequest struct {
	Destinatario string `json:"destinatario"`
	Mensagem     string `json:"mensagem"`
}

type RegistrarObraRequest struct {
	NumeroObra string `json:"numero_obra" validate:"required"`
}

// ContagemEtapa alimenta os contadores do quadro de etapas.
type ContagemEtapa struct {
	Etapa int   `json:"etapa"`
	Total int64 `json:"total"`
}

// QuadroEtapa é uma estação do quadro: o registro estático da etapa
// mais o total de acionamentos parados nela.
type QuadroEtapa struct {
	Etapa     int    `json:"etapa"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Rota      string `json:"rota"`
	Total     int64  `json:"total"`
}

// AcionamentoDetalhe junta o acionamento às suas listas filhas para a
// tela de detalhe.
type AcionamentoDetalhe struct {
	Acionamento entities.Acionamento         `json:"acionamento"`
	Execucao    *entities.Execucao           `json:"execucao,omitempty"`
	PreLista    []entities.PreListaItem      `json:"pre_lista"`
	Consumo     []entities.ConsumoItem       `json:"consumo"`
	Sucata      []entities.SucataItem        `json:"sucata"`
	Equipes     []entities.AcionamentoEquipe `json:"equipes"`
}
