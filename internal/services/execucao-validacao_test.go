package services

import (
	"testing"

	"acionamento-system/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execucaoCompleta() dto.SalvarExecucaoRequest {
	kmInicial := 1000.0
	kmFinal := 1042.5
	return dto.SalvarExecucaoRequest{
		KmInicial:           &kmInicial,
		KmFinal:             &kmFinal,
		SaidaBase:           "2026-08-10T07:30",
		InicioServico:       "2026-08-10T08:15",
		RetornoServico:      "2026-08-10T11:40",
		RetornoBase:         "2026-08-10T12:20",
		Alimentador:         "AL-04",
		Subestacao:          "SE CUIABÁ NORTE",
		NumeroTransformador: "TR-8812",
		IDPoste:             "P-123456",
	}
}

func TestValidarExecucaoCompletaAceitaRequisicaoValida(t *testing.T) {
	assert.NoError(t, ValidarExecucaoCompleta(execucaoCompleta()))
}

func TestValidarExecucaoCompletaExigeCamposBasicos(t *testing.T) {
	req := execucaoCompleta()
	req.Alimentador = ""
	req.KmFinal = nil

	err := ValidarExecucaoCompleta(req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "alimentador")
	assert.Contains(t, err.Error(), "km_final")
}

func TestValidarExecucaoCompletaExigeTrafosQuandoHouveTroca(t *testing.T) {
	req := execucaoCompleta()
	req.TrocaTransformador = true

	err := ValidarExecucaoCompleta(req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trafo_ret_potencia")
	assert.Contains(t, err.Error(), "trafo_inst_tensao_secundaria")
}

func TestValidarExecucaoCompletaTrocaComTrafosPreenchidos(t *testing.T) {
	req := execucaoCompleta()
	req.TrocaTransformador = true
	req.TrafoRetPotencia = "45"
	req.TrafoRetMarca = "WEG"
	req.TrafoRetTensaoPrimaria = "13800"
	req.TrafoRetTensaoSecundaria = "380/220"
	req.TrafoInstPotencia = "75"
	req.TrafoInstTensaoPrimaria = "13800"
	req.TrafoInstTensaoSecundaria = "380/220"

	assert.NoError(t, ValidarExecucaoCompleta(req))
}

func TestValidarExecucaoTensoesTudoOuNada(t *testing.T) {
	req := execucaoCompleta()
	req.TensaoAN = "127"
	req.TensaoBN = "127"

	err := ValidarExecucaoCompleta(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tensão")
}

func TestValidarExecucaoSeisTensoesPreenchidas(t *testing.T) {
	req := execucaoCompleta()
	req.TensaoAN = "127"
	req.TensaoBN = "127"
	req.TensaoCN = "128"
	req.TensaoAB = "220"
	req.TensaoBC = "221"
	req.TensaoCA = "219"

	assert.NoError(t, ValidarExecucaoCompleta(req))
}

func TestMontarExecucaoDerivaKmTotal(t *testing.T) {
	req := execucaoCompleta()

	e, err := montarExecucao("a1", req)

	require.NoError(t, err)
	require.True(t, e.KmTotal.Valid)
	assert.InDelta(t, 42.5, e.KmTotal.Float64, 0.001)
}

func TestMontarExecucaoRejeitaKmInvertido(t *testing.T) {
	req := execucaoCompleta()
	menor := 10.0
	req.KmFinal = &menor

	_, err := montarExecucao("a1", req)

	assert.Error(t, err)
}

func TestMontarExecucaoRejeitaHorarioInvalido(t *testing.T) {
	req := execucaoCompleta()
	req.SaidaBase = "ontem de manhã"

	_, err := montarExecucao("a1", req)

	assert.Error(t, err)
}
