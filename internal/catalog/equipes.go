package catalog

import (
	"regexp"
	"strings"
)

// Linha é a modalidade de trabalho de uma equipe: linha morta (rede
// desenergizada) ou linha viva.
type Linha string

const (
	LinhaLM Linha = "LM"
	LinhaLV Linha = "LV"
)

// EquipeCard é uma entrada do catálogo estático de equipes de campo.
type EquipeCard struct {
	Codigo      string
	Encarregado string
	Membros     []string
	Telefone    string
	Linha       Linha
	Ativa       bool
}

// InfoEquipe é o resultado da resolução de um código contra o catálogo.
type InfoEquipe struct {
	Nome        string
	Linha       Linha
	Encarregado string
	Label       string
}

// Catálogo das equipes próprias. Mantido em código como na operação:
// muda junto com o contrato, não com os dados.
var equipesCatalogo = []EquipeCard{
	{Codigo: "E14", Encarregado: "VICENTE BRAZ DE OLIVEIRA", Membros: []string{"JOCINEI BISPO DE OLIVEIRA", "JOELSON SANTANA DE OLIVEIRA", "JOELIELSON FERNANDO", "ARQUIMEDES TRINDADE SIQUEIRA"}, Telefone: "(65) 9 9268-6468", Linha: LinhaLM, Ativa: true},
	{Codigo: "E24", Encarregado: "GUSTAVO SAMPAIO SILVA", Membros: []string{"RAFAEL LUCAS SAMPAIO MORAIS", "ANDRE LUIZ VIEIRA MARQUES SILVA", "PAULO RICARDO ALVES CASSANDRE", "LUCAS RENNER DA SILVA MESQUITA", "CARLOS ALBERTO RODRIGUES CARVALHO"}, Telefone: "(65) 9 9636-7665", Linha: LinhaLM},
	{Codigo: "E25", Encarregado: "FAUSTINO DE MORAES", Membros: []string{"LUCAS CARNEIRO ARAUJO"}, Telefone: "(65) 9 9982-8233", Linha: LinhaLM},
	{Codigo: "E29", Encarregado: "EURIPEDES DE MORAES", Membros: []string{"KLEBERSON ALMEIDA DE MORAES", "PEDRO ANDERSON DA SILVA SANTOS", "WALTER DA SILVA CAMPOS", "MAGNO JUNIOR DA SILVA CHAGAS"}, Telefone: "(65) 9 9927-1772", Linha: LinhaLM},
	{Codigo: "E34", Encarregado: "VALDINEI BENEDITO DE OLIVEIRA", Membros: []string{"MILQUIA DE ALMEIDA DE OLIVEIRA", "RAULCINEAR DE ARAUJO MARQUES", "CARLITO GONCALO DA ROSA", "MARCOS ANTONIO MACHADO DE OLIVEIRA"}, Telefone: "(65) 9 9616-9161", Linha: LinhaLM},
	{Codigo: "E35", Encarregado: "VANDERLEI CARLOS JULIANOT", Membros: []string{"BRUNO GABRIEL ROLIM DE JESUS", "JULIANO COSME AMORIM DO NASCIMENTO", "NILMAR LEONILTON DA SILVA", "LUCAS ZANATO DE MATOS"}, Telefone: "(65) 9 9613-9139", Linha: LinhaLM},
	{Codigo: "E67", Encarregado: "JOSE VINICIUS DA SILVA", Membros: []string{"LUCAS FUENTES VACA MONJES", "GABRIEL OLIVEIRA DA SILVA", "JUNIOR GONCALVES DE OLIVEIRA"}, Telefone: "(65) 9 9981-9768", Linha: LinhaLM},
	{Codigo: "E91", Encarregado: "MAURO CESAR FRANCA E SILVA", Telefone: "(65) 9 9947-9683", Linha: LinhaLM},
	{Codigo: "E92", Encarregado: "JOAO CARLOS DOS SANTOS OLIVEIRA", Membros: []string{"CLOVIS JOSE DE ALMEIDA", "JOSUE DA SILVA SANTOS", "FRANCINALDO ABREU DA SILVA"}, Telefone: "(65) 9 9293-0304", Linha: LinhaLM},
	{Codigo: "E97", Encarregado: "WELINTON BOM DESPACHO", Membros: []string{"VALDEMIRO KESTRING"}, Telefone: "(65) 9 9290-8218", Linha: LinhaLM},
	{Codigo: "E10", Encarregado: "VALDINEI DA SILVA CORREA ASSUNCAO", Membros: []string{"ALZEMIR OLIVEIRA DE MEDEIROS", "ELVIS COLETRO SILVA"}, Telefone: "(65) 9 9810-7231", Linha: LinhaLV},
	{Codigo: "E36", Encarregado: "ADRIANO MENEZES DO ROSARIO", Membros: []string{"RENATO MENDES DA SILVA", "EVERTON LUIS DA SILVA"}, Telefone: "(65) 9 9684-9721", Linha: LinhaLV},
	{Codigo: "E68", Encarregado: "ELIZEU PINHEIRO DE SOUZA", Membros: []string{"ANDERSON CLAITON VIEIRA DA SILVA", "JOSE RAIMUNDO BARROS BOTELHO"}, Telefone: "(65) 9 9910-8023", Linha: LinhaLV, Ativa: true},
}

var (
	linhaPorCodigo      = map[string]Linha{}
	linhaPorEncarregado = map[string]Linha{}
	cardPorCodigo       = map[string]EquipeCard{}
	cardPorEncarregado  = map[string]EquipeCard{}
)

func init() {
	for _, eq := range equipesCatalogo {
		codigo := strings.ToUpper(eq.Codigo)
		encarregado := strings.ToUpper(eq.Encarregado)
		linhaPorCodigo[codigo] = eq.Linha
		linhaPorEncarregado[encarregado] = eq.Linha
		cardPorCodigo[codigo] = eq
		cardPorEncarregado[encarregado] = eq
	}
}

// InferirLinhaPorCodigo resolve a modalidade de um código contra o
// catálogo estático. Vazio quando o código não é conhecido.
func InferirLinhaPorCodigo(codigo string) Linha {
	if codigo == "" {
		return ""
	}
	return linhaPorCodigo[strings.ToUpper(strings.TrimSpace(codigo))]
}

// InferirLinhaPorEncarregado resolve a modalidade a partir do nome do
// encarregado contra a escala conhecida.
func InferirLinhaPorEncarregado(nome string) Linha {
	if nome == "" {
		return ""
	}
	return linhaPorEncarregado[strings.ToUpper(strings.TrimSpace(nome))]
}

// InfoEquipePorCodigo devolve nome, linha e encarregado de um código do
// catálogo, com o label de exibição "CÓDIGO - ENCARREGADO".
func InfoEquipePorCodigo(codigo string) (InfoEquipe, bool) {
	card, ok := cardPorCodigo[strings.ToUpper(strings.TrimSpace(codigo))]
	if !ok {
		return InfoEquipe{}, false
	}
	info := InfoEquipe{
		Nome:        card.Codigo,
		Linha:       card.Linha,
		Encarregado: card.Encarregado,
		Label:       card.Codigo,
	}
	if card.Encarregado != "" {
		info.Label = card.Codigo + " - " + card.Encarregado
	}
	return info, true
}

// InferirEquipePorEncarregado deduz o código da equipe a partir do nome
// do encarregado.
func InferirEquipePorEncarregado(nome string) (codigo string, linha Linha, ok bool) {
	card, found := cardPorEncarregado[strings.ToUpper(strings.TrimSpace(nome))]
	if !found {
		return "", "", false
	}
	return card.Codigo, card.Linha, true
}

var (
	reLV         = regexp.MustCompile(`(?i)^lv$|linha viva|^viva$`)
	reLM         = regexp.MustCompile(`(?i)^lm$|linha morta|^morta$`)
	reSiglaCodigo = regexp.MustCompile(`[A-Za-z]{1,4}\d{1,4}`)
)

// NormalizarLinha interpreta texto livre ("LV", "linha viva", "morta")
// como modalidade. Mantido como estratégia isolada do pipeline de
// inferência, nunca misturado numa regex única.
func NormalizarLinha(valor string) Linha {
	texto := strings.TrimSpace(valor)
	if texto == "" {
		return ""
	}
	if reLV.MatchString(texto) {
		return LinhaLV
	}
	if reLM.MatchString(texto) {
		return LinhaLM
	}
	return ""
}

// ExtrairSigla reduz um nome de equipe ao código curto ("E68 - FULANO"
// vira "E68").
func ExtrairSigla(nome string) string {
	texto := strings.TrimSpace(nome)
	if texto == "" {
		return ""
	}
	prefixo := texto
	if idx := strings.Index(texto, "-"); idx >= 0 {
		prefixo = strings.TrimSpace(texto[:idx])
	}
	if match := reSiglaCodigo.FindString(prefixo); match != "" {
		return strings.ToUpper(match)
	}
	return strings.ToUpper(prefixo)
}

// FormatarEquipeDisplay monta o texto de equipe para documentos,
// sinalizando quando a equipe é da outra modalidade.
func FormatarEquipeDisplay(nome string, linhaEquipe, modalidade Linha) string {
	if nome == "" {
		return ""
	}
	sigla := ExtrairSigla(nome)
	if linhaEquipe == LinhaLV && modalidade == LinhaLM {
		return "Equipe LV: " + sigla
	}
	if linhaEquipe == LinhaLM && modalidade == LinhaLV {
		return "Equipe LM: " + sigla
	}
	return sigla
}
