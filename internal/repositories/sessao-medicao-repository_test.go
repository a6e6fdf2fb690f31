package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novaSessaoRepo(t *testing.T) SessaoMedicaoRepositoryInterface {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessaoMedicaoRepository(client, time.Hour)
}

func TestSessaoInexistenteRetornaNil(t *testing.T) {
	repo := novaSessaoRepo(t)

	sessao, err := repo.Buscar(context.Background(), "a1")

	require.NoError(t, err)
	assert.Nil(t, sessao)
}

func TestAbrirSessaoZeraMarcas(t *testing.T) {
	repo := novaSessaoRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.MarcarOrcamento(ctx, "a1", "LM"))
	sessao, err := repo.Buscar(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, sessao)
	assert.True(t, sessao.Gerou("LM"))

	// reabrir invalida o que foi gerado antes
	_, err = repo.Abrir(ctx, "a1")
	require.NoError(t, err)

	sessao, err = repo.Buscar(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, sessao)
	assert.False(t, sessao.Gerou("LM"))
	assert.False(t, sessao.Gerou("LV"))
}

func TestMarcasPorModalidadeSaoIndependentes(t *testing.T) {
	repo := novaSessaoRepo(t)
	ctx := context.Background()

	_, err := repo.Abrir(ctx, "a1")
	require.NoError(t, err)
	require.NoError(t, repo.MarcarPlanilha(ctx, "a1", "LV"))

	sessao, err := repo.Buscar(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, sessao)
	assert.True(t, sessao.Gerou("LV"))
	assert.False(t, sessao.Gerou("LM"))
}

func TestMarcarSemSessaoAbreImplicitamente(t *testing.T) {
	repo := novaSessaoRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.MarcarOrcamento(ctx, "a2", "LV"))

	sessao, err := repo.Buscar(ctx, "a2")
	require.NoError(t, err)
	require.NotNil(t, sessao)
	assert.True(t, sessao.OrcamentoLV)
}
