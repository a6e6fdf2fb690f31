package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Classificações aceitas para itens de sucata retirados do campo.
var ClassificacoesSucata = []string{"sucata", "reforma", "bom", "descarte"}

// PreListaItem é um par (material, quantidade prevista) da pré-lista
// montada para o almoxarifado na etapa 1. A lista é sempre substituída
// por inteiro ao salvar.
type PreListaItem struct {
	ID             uint64    `json:"id"`
	IDAcionamento  string    `json:"id_acionamento"`
	CodigoMaterial string    `json:"codigo_material"`
	Quantidade     float64   `json:"quantidade"`
	CriadoEm       time.Time `json:"criado_em"`
}

// ConsumoItem registra material efetivamente aplicado na execução.
type ConsumoItem struct {
	ID             uint64      `json:"id"`
	IDAcionamento  string      `json:"id_acionamento"`
	CodigoMaterial string      `json:"codigo_material"`
	Quantidade     float64     `json:"quantidade"`
	Descricao      null.String `json:"descricao"`
	Unidade        null.String `json:"unidade"`
	CriadoEm       time.Time   `json:"criado_em"`
}

// SucataItem registra material retirado do campo com sua classificação.
type SucataItem struct {
	ID                 uint64      `json:"id"`
	IDAcionamento      string      `json:"id_acionamento"`
	CodigoMaterial     string      `json:"codigo_material"`
	QuantidadeRetirada float64     `json:"quantidade_retirada"`
	Classificacao      string      `json:"classificacao"`
	Descricao          null.String `json:"descricao"`
	Unidade            null.String `json:"unidade"`
	CriadoEm           time.Time   `json:"criado_em"`
}

// Material é o cadastro de referência usado para enriquecer as listas com
// descrição e unidade (somente leitura neste subsistema).
type Material struct {
	Codigo    string      `json:"codigo"`
	Descricao string      `json:"descricao"`
	Unidade   null.String `json:"unidade"`
	Ativo     bool        `json:"ativo"`
}
