package dto

// SalvarExecucaoRequest recebe os fatos de campo da etapa de execução.
// Strings vazias significam "não preenchido"; a validação de domínio
// (campos obrigatórios, trafos, tensões) fica no serviço, porque depende
// do acionamento.
type SalvarExecucaoRequest struct {
	KmInicial *float64 `json:"km_inicial"`
	KmFinal   *float64 `json:"km_final"`

	SaidaBase      string `json:"saida_base"`
	InicioServico  string `json:"inicio_servico"`
	RetornoServico string `json:"retorno_servico"`
	RetornoBase    string `json:"retorno_base"`

	Alimentador         string `json:"alimentador"`
	Subestacao          string `json:"subestacao"`
	NumeroTransformador string `json:"numero_transformador"`
	IDPoste             string `json:"id_poste"`

	TrocaTransformador bool `json:"troca_transformador"`

	TrafoRetPotencia         string `json:"trafo_ret_potencia"`
	TrafoRetMarca            string `json:"trafo_ret_marca"`
	TrafoRetAno              string `json:"trafo_ret_ano"`
	TrafoRetTensaoPrimaria   string `json:"trafo_ret_tensao_primaria"`
	TrafoRetTensaoSecundaria string `json:"trafo_ret_tensao_secundaria"`
	TrafoRetNumeroSerie      string `json:"trafo_ret_numero_serie"`
	TrafoRetPatrimonio       string `json:"trafo_ret_patrimonio"`

	TrafoInstPotencia         string `json:"trafo_inst_potencia"`
	TrafoInstMarca            string `json:"trafo_inst_marca"`
	TrafoInstAno              string `json:"trafo_inst_ano"`
	TrafoInstTensaoPrimaria   string `json:"trafo_inst_tensao_primaria"`
	TrafoInstTensaoSecundaria string `json:"trafo_inst_tensao_secundaria"`
	TrafoInstNumeroSerie      string `json:"trafo_inst_numero_serie"`
	TrafoInstPatrimonio       string `json:"trafo_inst_patrimonio"`

	TensaoAN string `json:"tensao_an"`
	TensaoBN string `json:"tensao_bn"`
	TensaoCN string `json:"tensao_cn"`
	TensaoAB string `json:"tensao_ab"`
	TensaoBC string `json:"tensao_bc"`
	TensaoCA string `json:"tensao_ca"`

	OSTablet          string `json:"os_tablet"`
	SSNota            string `json:"ss_nota"`
	NumeroIntervencao string `json:"numero_intervencao"`
	Observacoes       string `json:"observacoes"`

	// Quando true, além de salvar, tenta concluir a execução e avançar o
	// acionamento para a etapa de medição.
	Finalizar bool `json:"finalizar"`
}

// Tensoes devolve as seis leituras na ordem fixa usada na validação
// tudo-ou-nada e nos documentos.
func (r *SalvarExecucaoRequest) Tensoes() []string {
	return []string{r.TensaoAN, r.TensaoBN, r.TensaoCN, r.TensaoAB, r.TensaoBC, r.TensaoCA}
}
