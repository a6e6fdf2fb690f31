package services

// Etapa descreve uma estação do fluxo de acionamentos. O fluxo é linear
// e só anda para frente.
type Etapa struct {
	Numero    int    `json:"numero"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Rota      string `json:"rota"`
}

var Etapas = []Etapa{
	{1, "Acionamentos recebidos", "Despacho, pré-lista de materiais e conferência do almoxarifado", "/acionamentos"},
	{2, "Acionamentos executados", "Registro da execução em campo", "/acionamentos"},
	{3, "Medir serviços executados", "Medição, orçamento e planilha", "/medicoes"},
	{4, "Criar OS no sistema", "Abertura da ordem de serviço na concessionária", "/medicoes"},
	{5, "Enviar Book / Aguardando Obra", "Envio do book e registro do número da obra", "/medicoes"},
	{6, "Aprovação Fiscal", "Aguardando o aceite da fiscalização", "/obras"},
	{7, "Obra criada (TCI)", "Obra registrada no sistema da concessionária", "/obras"},
	{8, "Aprovação da medição", "Medição conferida e aprovada", "/obras"},
	{9, "Geração de lote", "Acionamento incluído no lote de faturamento", "/obras"},
	{10, "Emissão de NF", "Nota fiscal emitida", "/obras"},
}

const UltimaEtapa = 10

// EtapaValida diz se o número corresponde a uma estação do fluxo.
func EtapaValida(numero int) bool {
	return numero >= 1 && numero <= UltimaEtapa
}
