package documents

import (
	"bytes"
	"testing"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func contextoTeste(linha string) dto.OrcamentoContexto {
	return dto.OrcamentoContexto{
		Linha:             linha,
		CodigoAcionamento: "ACN-2026-0042",
		Modalidade:        "LM+LV",
		Municipio:         "Várzea Grande",
		NumeroOS:          "OS-7781",
		EquipeDisplay:     "E14",
		Encarregado:       "VICENTE BRAZ DE OLIVEIRA",
		DataDespacho:      "10/08/2026 07:12",
		DataExecucao:      "10/08/2026 12:20",
		DataEmissao:       "11/08/2026 09:00",
		Resumo: dto.ResumoMaoDeObra{
			Linha: linha,
			Itens: []dto.ItemCalculado{
				{Codigo: "20101", Descricao: "SUBSTITUIÇÃO DE ELO FUSÍVEL", Unidade: "UD", ValorUps: 8.5, Quantidade: 2, Subtotal: 17},
				{Codigo: "20315", Descricao: "TROCA DE CONECTOR", Unidade: "UD", ValorUps: 3.2, Quantidade: 4, Subtotal: 12.8},
			},
			TotalBase:           29.8,
			CodigoAdicional:     "92525",
			DescricaoAdicional:  "SERV. EMERG. HORÁRIO COMERCIAL – ADICIONAL 12%",
			PercentualAdicional: 0.12,
			ValorAdicional:      3.576,
			TotalFinal:          33.376,
		},
		Consumo: []entities.ConsumoItem{
			{CodigoMaterial: "100233", Quantidade: 3, Descricao: null.StringFrom("CONECTOR CUNHA"), Unidade: null.StringFrom("UD")},
		},
		Sucata: []entities.SucataItem{
			{CodigoMaterial: "100410", QuantidadeRetirada: 1, Classificacao: "sucata", Descricao: null.StringFrom("CHAVE FUSÍVEL")},
		},
	}
}

func TestGerarOrcamentoPDF(t *testing.T) {
	conteudo, err := GerarOrcamentoPDF(contextoTeste("LM"))

	require.NoError(t, err)
	require.NotEmpty(t, conteudo)
	assert.True(t, bytes.HasPrefix(conteudo, []byte("%PDF")))
}

func TestGerarOrcamentoPDFSemMateriais(t *testing.T) {
	contexto := contextoTeste("LV")
	contexto.Consumo = nil
	contexto.Sucata = nil

	conteudo, err := GerarOrcamentoPDF(contexto)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(conteudo, []byte("%PDF")))
}

func TestGerarOrcamentoEmpresaPDF(t *testing.T) {
	conteudo, err := GerarOrcamentoEmpresaPDF(contextoTeste("LV"))

	require.NoError(t, err)
	require.NotEmpty(t, conteudo)
	assert.True(t, bytes.HasPrefix(conteudo, []byte("%PDF")))
}

func TestGerarPlanilhaMedicao(t *testing.T) {
	conteudo, err := GerarPlanilhaMedicao(contextoTeste("LM"))

	require.NoError(t, err)
	require.NotEmpty(t, conteudo)

	f, err := excelize.OpenReader(bytes.NewReader(conteudo))
	require.NoError(t, err)
	defer f.Close()

	titulo, err := f.GetCellValue("Medição", "A1")
	require.NoError(t, err)
	assert.Contains(t, titulo, "LINHA MORTA")

	codigo, err := f.GetCellValue("Medição", "A13")
	require.NoError(t, err)
	assert.Equal(t, "20101", codigo)
}

func TestFormatarMoeda(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", formatarMoeda(1234.56))
	assert.Equal(t, "R$ 0,00", formatarMoeda(0))
	assert.Equal(t, "R$ 999,90", formatarMoeda(999.9))
	assert.Equal(t, "R$ 1.000.000,00", formatarMoeda(1000000))
}

func TestFormatarQuantidade(t *testing.T) {
	assert.Equal(t, "2", formatarQuantidade(2))
	assert.Equal(t, "2,5", formatarQuantidade(2.5))
	assert.Equal(t, "8,5", formatarQuantidade(8.5))
}
