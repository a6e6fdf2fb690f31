package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const settingsTable = "system_settings"

// Chaves usadas pela medição. O valor monetário da UPS muda por aditivo
// contratual, então vive em configuração e não em código.
const (
	ChaveValorUpsLM = "valor_ups_lm"
	ChaveValorUpsLV = "valor_ups_lv"
)

type SettingsRepositoryInterface interface {
	ValorFloat(ctx context.Context, chave string, padrao float64) (float64, error)
}

type settingsRepository struct{ storage *pgxpool.Pool }

func NewSettingsRepository(storage *pgxpool.Pool) SettingsRepositoryInterface {
	return &settingsRepository{storage: storage}
}

func (r *settingsRepository) ValorFloat(ctx context.Context, chave string, padrao float64) (float64, error) {
	query := fmt.Sprintf("SELECT valor FROM %s WHERE chave = $1", settingsTable)

	var valor string
	err := r.storage.QueryRow(ctx, query, chave).Scan(&valor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return padrao, nil
		}
		return 0, err
	}
	parsed, err := strconv.ParseFloat(valor, 64)
	if err != nil {
		return 0, fmt.Errorf("configuração %s não é numérica: %w", chave, err)
	}
	return parsed, nil
}
