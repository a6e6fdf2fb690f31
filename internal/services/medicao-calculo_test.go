package services

import (
	"testing"

	"acionamento-system/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemTeste(codigo string, ups, quantidade float64) entities.MedicaoItem {
	return entities.MedicaoItem{
		Codigo:     codigo,
		Descricao:  "Serviço " + codigo,
		Unidade:    "UD",
		ValorUps:   ups,
		Quantidade: quantidade,
		Tipo:       "LM",
	}
}

func TestSubtotalItem(t *testing.T) {
	item := itemTeste("20101", 8.5, 2)
	assert.InDelta(t, 17.0, SubtotalItem(item, 1.0), 0.0001)
	assert.InDelta(t, 42.5, SubtotalItem(item, 2.5), 0.0001)
}

func TestCalcularResumoHorarioComercial(t *testing.T) {
	itens := []entities.MedicaoItem{
		itemTeste("A", 10, 40), // 400
		itemTeste("B", 20, 10), // 200
	}

	resumo := CalcularResumo("LM", itens, 1.0, false)

	require.Len(t, resumo.Itens, 2)
	assert.InDelta(t, 600.0, resumo.TotalBase, 0.001)
	assert.Equal(t, CodigoAdicionalComercial, resumo.CodigoAdicional)
	assert.Equal(t, DescricaoAdicionalComercial, resumo.DescricaoAdicional)
	assert.InDelta(t, 72.0, resumo.ValorAdicional, 0.001)
	assert.InDelta(t, 672.0, resumo.TotalFinal, 0.001)
}

func TestCalcularResumoForaHorario(t *testing.T) {
	itens := []entities.MedicaoItem{itemTeste("A", 30, 20)} // 600

	resumo := CalcularResumo("LV", itens, 1.0, true)

	assert.InDelta(t, 600.0, resumo.TotalBase, 0.001)
	assert.Equal(t, CodigoAdicionalForaHorario, resumo.CodigoAdicional)
	assert.InDelta(t, 180.0, resumo.ValorAdicional, 0.001)
	assert.InDelta(t, 780.0, resumo.TotalFinal, 0.001)
}

func TestCalcularResumoSemItensNaoTemAdicional(t *testing.T) {
	resumo := CalcularResumo("LM", nil, 1.0, false)

	assert.Zero(t, resumo.TotalBase)
	assert.Zero(t, resumo.TotalFinal)
	assert.Empty(t, resumo.CodigoAdicional)
	assert.Zero(t, resumo.ValorAdicional)
}

func TestCalcularResumoAdicionalAbaixoDoLimiar(t *testing.T) {
	// base de 1 centavo: adicional de 0,12 centavo fica fora do documento
	itens := []entities.MedicaoItem{itemTeste("A", 0.01, 1)}

	resumo := CalcularResumo("LM", itens, 1.0, false)

	assert.Empty(t, resumo.CodigoAdicional)
	assert.Zero(t, resumo.ValorAdicional)
	// o total final ainda carrega o percentual
	assert.InDelta(t, 0.0112, resumo.TotalFinal, 0.0001)
}

func TestAdicionarItemIncrementaExistente(t *testing.T) {
	itens := []entities.MedicaoItem{itemTeste("A", 10, 2)}

	itens = AdicionarItem(itens, itemTeste("A", 10, 1))

	require.Len(t, itens, 1)
	assert.InDelta(t, 3.0, itens[0].Quantidade, 0.001)
}

func TestAdicionarItemDistingueOperacao(t *testing.T) {
	instalacao := itemTeste("A", 10, 1)
	instalacao.Operacao = "instalacao"
	retirada := itemTeste("A", 10, 1)
	retirada.Operacao = "retirada"

	itens := AdicionarItem(nil, instalacao)
	itens = AdicionarItem(itens, retirada)

	assert.Len(t, itens, 2)
}

func TestRemoverItemPorChaveComposta(t *testing.T) {
	instalacao := itemTeste("A", 10, 1)
	instalacao.Operacao = "instalacao"
	retirada := itemTeste("A", 10, 1)
	retirada.Operacao = "retirada"
	itens := []entities.MedicaoItem{instalacao, retirada}

	itens = RemoverItem(itens, "A", "retirada")

	require.Len(t, itens, 1)
	assert.Equal(t, "instalacao", itens[0].Operacao)
}

func TestAjustarQuantidadeNaoFicaNegativa(t *testing.T) {
	itens := []entities.MedicaoItem{itemTeste("A", 10, 5)}

	itens = AjustarQuantidade(itens, "A", "", -3)

	assert.Zero(t, itens[0].Quantidade)
}

func TestAjustarQuantidadeDefineValorExato(t *testing.T) {
	itens := []entities.MedicaoItem{itemTeste("A", 10, 5)}

	itens = AjustarQuantidade(itens, "A", "", 2.5)

	assert.InDelta(t, 2.5, itens[0].Quantidade, 0.001)
}
