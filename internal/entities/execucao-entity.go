package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Execucao guarda os fatos de campo de um acionamento (um registro por
// acionamento). Os campos obrigatórios liberam a etapa 2→3.
type Execucao struct {
	IDAcionamento string `json:"id_acionamento"`

	KmInicial null.Float64 `json:"km_inicial"`
	KmFinal   null.Float64 `json:"km_final"`
	KmTotal   null.Float64 `json:"km_total"`

	SaidaBase      null.Time `json:"saida_base"`
	InicioServico  null.Time `json:"inicio_servico"`
	RetornoServico null.Time `json:"retorno_servico"`
	RetornoBase    null.Time `json:"retorno_base"`

	Alimentador         null.String `json:"alimentador"`
	Subestacao          null.String `json:"subestacao"`
	NumeroTransformador null.String `json:"numero_transformador"`
	IDPoste             null.String `json:"id_poste"`

	TrocaTransformador bool `json:"troca_transformador"`

	TrafoRetPotencia         null.String `json:"trafo_ret_potencia"`
	TrafoRetMarca            null.String `json:"trafo_ret_marca"`
	TrafoRetAno              null.String `json:"trafo_ret_ano"`
	TrafoRetTensaoPrimaria   null.String `json:"trafo_ret_tensao_primaria"`
	TrafoRetTensaoSecundaria null.String `json:"trafo_ret_tensao_secundaria"`
	TrafoRetNumeroSerie      null.String `json:"trafo_ret_numero_serie"`
	TrafoRetPatrimonio       null.String `json:"trafo_ret_patrimonio"`

	TrafoInstPotencia         null.String `json:"trafo_inst_potencia"`
	TrafoInstMarca            null.String `json:"trafo_inst_marca"`
	TrafoInstAno              null.String `json:"trafo_inst_ano"`
	TrafoInstTensaoPrimaria   null.String `json:"trafo_inst_tensao_primaria"`
	TrafoInstTensaoSecundaria null.String `json:"trafo_inst_tensao_secundaria"`
	TrafoInstNumeroSerie      null.String `json:"trafo_inst_numero_serie"`
	TrafoInstPatrimonio       null.String `json:"trafo_inst_patrimonio"`

	TensaoAN null.String `json:"tensao_an"`
	TensaoBN null.String `json:"tensao_bn"`
	TensaoCN null.String `json:"tensao_cn"`
	TensaoAB null.String `json:"tensao_ab"`
	TensaoBC null.String `json:"tensao_bc"`
	TensaoCA null.String `json:"tensao_ca"`

	OSTablet          null.String `json:"os_tablet"`
	SSNota            null.String `json:"ss_nota"`
	NumeroIntervencao null.String `json:"numero_intervencao"`
	Observacoes       null.String `json:"observacoes"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm null.Time `json:"atualizado_em"`
}
