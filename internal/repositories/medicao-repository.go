package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"acionamento-system/internal/entities"
	"acionamento-system/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const medicaoTable = "medicao_orcamentos"

type MedicaoRepositoryInterface interface {
	BuscarPorAcionamento(ctx context.Context, idAcionamento string) (*entities.MedicaoOrcamento, error)
	Salvar(ctx context.Context, m *entities.MedicaoOrcamento) error
}

type medicaoRepository struct{ storage *pgxpool.Pool }

func NewMedicaoRepository(storage *pgxpool.Pool) MedicaoRepositoryInterface {
	return &medicaoRepository{storage: storage}
}

func (r *medicaoRepository) BuscarPorAcionamento(ctx context.Context, idAcionamento string) (*entities.MedicaoOrcamento, error) {
	query := fmt.Sprintf(`
		SELECT id_acionamento, itens_lm, itens_lv, fora_horario,
			valor_ups_lm, valor_ups_lv, total_base_lm, total_base_lv,
			total_final_lm, total_final_lv, atualizado_por, atualizado_em
		FROM %s WHERE id_acionamento = $1`, medicaoTable)

	var m entities.MedicaoOrcamento
	var itensLM, itensLV []byte
	err := r.storage.QueryRow(ctx, query, idAcionamento).Scan(
		&m.IDAcionamento, &itensLM, &itensLV, &m.ForaHorario,
		&m.ValorUpsLM, &m.ValorUpsLV, &m.TotalBaseLM, &m.TotalBaseLV,
		&m.TotalFinalLM, &m.TotalFinalLV, &m.AtualizadoPor, &m.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(itensLM, &m.ItensLM); err != nil {
		return nil, fmt.Errorf("itens_lm inválidos no banco: %w", err)
	}
	if err := json.Unmarshal(itensLV, &m.ItensLV); err != nil {
		return nil, fmt.Errorf("itens_lv inválidos no banco: %w", err)
	}
	return &m, nil
}

// Salvar grava o rascunho inteiro com upsert por acionamento. As listas
// vão como JSONB; listas nulas viram arrays vazios para o front nunca
// receber null.
func (r *medicaoRepository) Salvar(ctx context.Context, m *entities.MedicaoOrcamento) error {
	if m.ItensLM == nil {
		m.ItensLM = []entities.MedicaoItem{}
	}
	if m.ItensLV == nil {
		m.ItensLV = []entities.MedicaoItem{}
	}
	itensLM, err := json.Marshal(m.ItensLM)
	if err != nil {
		return err
	}
	itensLV, err := json.Marshal(m.ItensLV)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id_acionamento, itens_lm, itens_lv, fora_horario,
			valor_ups_lm, valor_ups_lv, total_base_lm, total_base_lv,
			total_final_lm, total_final_lv, atualizado_por, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (id_acionamento) DO UPDATE SET
			itens_lm = EXCLUDED.itens_lm,
			itens_lv = EXCLUDED.itens_lv,
			fora_horario = EXCLUDED.fora_horario,
			valor_ups_lm = EXCLUDED.valor_ups_lm,
			valor_ups_lv = EXCLUDED.valor_ups_lv,
			total_base_lm = EXCLUDED.total_base_lm,
			total_base_lv = EXCLUDED.total_base_lv,
			total_final_lm = EXCLUDED.total_final_lm,
			total_final_lv = EXCLUDED.total_final_lv,
			atualizado_por = EXCLUDED.atualizado_por,
			atualizado_em = NOW()`, medicaoTable)

	_, err = r.storage.Exec(ctx, query,
		m.IDAcionamento, itensLM, itensLV, m.ForaHorario,
		m.ValorUpsLM, m.ValorUpsLV, m.TotalBaseLM, m.TotalBaseLV,
		m.TotalFinalLM, m.TotalFinalLV, m.AtualizadoPor,
	)
	return err
}
