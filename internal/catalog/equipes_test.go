package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizarLinha(t *testing.T) {
	casos := map[string]Linha{
		"LV":           LinhaLV,
		"lv":           LinhaLV,
		"linha viva":   LinhaLV,
		"Linha Viva":   LinhaLV,
		"viva":         LinhaLV,
		"LM":           LinhaLM,
		"linha morta":  LinhaLM,
		"morta":        LinhaLM,
		"":             "",
		"equipe posto": "",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, NormalizarLinha(entrada), "entrada %q", entrada)
	}
}

func TestInferirLinhaPorCodigo(t *testing.T) {
	assert.Equal(t, LinhaLM, InferirLinhaPorCodigo("E14"))
	assert.Equal(t, LinhaLM, InferirLinhaPorCodigo("e14"))
	assert.Equal(t, LinhaLV, InferirLinhaPorCodigo("E68"))
	assert.Equal(t, Linha(""), InferirLinhaPorCodigo("E99"))
	assert.Equal(t, Linha(""), InferirLinhaPorCodigo(""))
}

func TestInferirLinhaPorEncarregado(t *testing.T) {
	assert.Equal(t, LinhaLV, InferirLinhaPorEncarregado("ELIZEU PINHEIRO DE SOUZA"))
	assert.Equal(t, LinhaLV, InferirLinhaPorEncarregado("elizeu pinheiro de souza"))
	assert.Equal(t, LinhaLM, InferirLinhaPorEncarregado("VICENTE BRAZ DE OLIVEIRA"))
	assert.Equal(t, Linha(""), InferirLinhaPorEncarregado("FULANO DE TAL"))
}

func TestInfoEquipePorCodigo(t *testing.T) {
	info, ok := InfoEquipePorCodigo("E68")
	require.True(t, ok)
	assert.Equal(t, "E68", info.Nome)
	assert.Equal(t, LinhaLV, info.Linha)
	assert.Equal(t, "E68 - ELIZEU PINHEIRO DE SOUZA", info.Label)

	_, ok = InfoEquipePorCodigo("E99")
	assert.False(t, ok)
}

func TestInferirEquipePorEncarregado(t *testing.T) {
	codigo, linha, ok := InferirEquipePorEncarregado("GUSTAVO SAMPAIO SILVA")
	require.True(t, ok)
	assert.Equal(t, "E24", codigo)
	assert.Equal(t, LinhaLM, linha)

	_, _, ok = InferirEquipePorEncarregado("NINGUÉM")
	assert.False(t, ok)
}

func TestExtrairSigla(t *testing.T) {
	assert.Equal(t, "E68", ExtrairSigla("E68 - ELIZEU PINHEIRO DE SOUZA"))
	assert.Equal(t, "E14", ExtrairSigla("e14"))
	assert.Equal(t, "E24", ExtrairSigla("Equipe E24"))
	assert.Equal(t, "", ExtrairSigla(""))
}

func TestFormatarEquipeDisplay(t *testing.T) {
	// equipe da própria modalidade sai só com a sigla
	assert.Equal(t, "E14", FormatarEquipeDisplay("E14 - VICENTE", LinhaLM, LinhaLM))
	// equipe emprestada da outra modalidade é sinalizada
	assert.Equal(t, "Equipe LV: E68", FormatarEquipeDisplay("E68", LinhaLV, LinhaLM))
	assert.Equal(t, "Equipe LM: E14", FormatarEquipeDisplay("E14", LinhaLM, LinhaLV))
	assert.Equal(t, "", FormatarEquipeDisplay("", LinhaLM, LinhaLM))
}
