package services

import (
	"testing"

	"acionamento-system/internal/catalog"
	"acionamento-system/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uuidConhecido    = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	uuidDesconhecido = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
)

func TestMontarOpcoesDescartaUUIDSemCadastro(t *testing.T) {
	a := &entities.Acionamento{
		IDAcionamento: "a1",
		Modalidade:    "LM",
		IDEquipe:      null.StringFrom(uuidDesconhecido),
	}

	resposta := MontarOpcoes(a, nil, map[string]entities.Equipe{})

	assert.Empty(t, resposta.Opcoes)
	assert.Empty(t, resposta.PadraoLM)
}

func TestMontarOpcoesResolveUUIDPeloCadastro(t *testing.T) {
	a := &entities.Acionamento{
		IDAcionamento: "a1",
		Modalidade:    "LV",
		IDEquipe:      null.StringFrom(uuidConhecido),
	}
	cadastro := map[string]entities.Equipe{
		uuidConhecido: {
			IDEquipe:        uuidConhecido,
			NomeEquipe:      "E68 - ELIZEU PINHEIRO DE SOUZA",
			Linha:           null.StringFrom("linha viva"),
			EncarregadoNome: null.StringFrom("ELIZEU PINHEIRO DE SOUZA"),
		},
	}

	resposta := MontarOpcoes(a, nil, cadastro)

	require.Len(t, resposta.Opcoes, 1)
	opcao := resposta.Opcoes[0]
	assert.Equal(t, "E68", opcao.Valor)
	assert.Equal(t, "LV", opcao.Linha)
	assert.NotContains(t, opcao.Label, uuidConhecido)
	assert.Equal(t, "E68", resposta.PadraoLV)
}

func TestMontarOpcoesCamposDedicadosImpoemLinha(t *testing.T) {
	a := &entities.Acionamento{
		IDAcionamento: "a1",
		Modalidade:    "LM+LV",
		EquipeLM:      null.StringFrom("E14"),
		EquipeLV:      null.StringFrom("E68"),
	}

	resposta := MontarOpcoes(a, nil, nil)

	require.Len(t, resposta.Opcoes, 2)
	assert.True(t, resposta.SuportaLM)
	assert.True(t, resposta.SuportaLV)
	assert.Equal(t, "E14", resposta.PadraoLM)
	assert.Equal(t, "E68", resposta.PadraoLV)
}

func TestMontarOpcoesInfereLinhaPeloCatalogo(t *testing.T) {
	a := &entities.Acionamento{
		IDAcionamento: "a1",
		Modalidade:    "LM",
		Equipe:        null.StringFrom("E24"),
	}

	resposta := MontarOpcoes(a, nil, nil)

	require.Len(t, resposta.Opcoes, 1)
	assert.Equal(t, "LM", resposta.Opcoes[0].Linha)
	assert.Equal(t, "E24 - GUSTAVO SAMPAIO SILVA", resposta.Opcoes[0].Label)
}

func TestMontarOpcoesVinculoComPapel(t *testing.T) {
	a := &entities.Acionamento{IDAcionamento: "a1", Modalidade: "LM+LV"}
	vinculos := []entities.AcionamentoEquipe{
		{
			IDAcionamento:   "a1",
			Papel:           null.StringFrom("linha viva"),
			EncarregadoNome: null.StringFrom("ELIZEU PINHEIRO DE SOUZA"),
		},
	}

	resposta := MontarOpcoes(a, vinculos, nil)

	require.Len(t, resposta.Opcoes, 1)
	assert.Equal(t, "E68", resposta.Opcoes[0].Valor)
	assert.Equal(t, "LV", resposta.Opcoes[0].Linha)
}

func TestMontarOpcoesDeduplicaPorSigla(t *testing.T) {
	a := &entities.Acionamento{
		IDAcionamento: "a1",
		Modalidade:    "LM",
		CodigoEquipe:  null.StringFrom("E14"),
		Equipe:        null.StringFrom("E14 - VICENTE BRAZ DE OLIVEIRA"),
	}

	resposta := MontarOpcoes(a, nil, nil)

	assert.Len(t, resposta.Opcoes, 1)
}

func TestPadraoCaiParaInferenciaPorEncarregado(t *testing.T) {
	a := &entities.Acionamento{
		IDAcionamento: "a1",
		Modalidade:    "LV",
		Equipe:        null.StringFrom("TURMA NORTE"),
		Encarregado:   null.StringFrom("ELIZEU PINHEIRO DE SOUZA"),
	}

	resposta := MontarOpcoes(a, nil, nil)

	require.Len(t, resposta.Opcoes, 1)
	// a linha vem da escala do encarregado
	assert.Equal(t, "LV", resposta.Opcoes[0].Linha)
	assert.Equal(t, "TURMA NORTE", resposta.PadraoLV)
}

func TestEquipeValidaParaLinha(t *testing.T) {
	a := &entities.Acionamento{
		IDAcionamento: "a1",
		Modalidade:    "LM+LV",
		EquipeLM:      null.StringFrom("E14"),
		EquipeLV:      null.StringFrom("E68"),
	}
	resposta := MontarOpcoes(a, nil, nil)

	assert.True(t, EquipeValidaParaLinha(resposta.Opcoes, "E14", catalog.LinhaLM))
	assert.False(t, EquipeValidaParaLinha(resposta.Opcoes, "E14", catalog.LinhaLV))
	assert.True(t, EquipeValidaParaLinha(resposta.Opcoes, "E68", catalog.LinhaLV))
	assert.False(t, EquipeValidaParaLinha(resposta.Opcoes, "E99", catalog.LinhaLM))
}
