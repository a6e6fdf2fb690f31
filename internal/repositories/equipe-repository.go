package repositories

import (
	"context"
	"fmt"

	"acionamento-system/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	equipeTable            = "equipes"
	acionamentoEquipeTable = "acionamento_equipes"
)

type EquipeRepositoryInterface interface {
	ListarAtivas(ctx context.Context) ([]entities.Equipe, error)
	BuscarPorIDs(ctx context.Context, ids []string) (map[string]entities.Equipe, error)
	ListarVinculos(ctx context.Context, idAcionamento string) ([]entities.AcionamentoEquipe, error)
}

type equipeRepository struct{ storage *pgxpool.Pool }

func NewEquipeRepository(storage *pgxpool.Pool) EquipeRepositoryInterface {
	return &equipeRepository{storage: storage}
}

func (r *equipeRepository) ListarAtivas(ctx context.Context) ([]entities.Equipe, error) {
	query := fmt.Sprintf(`
		SELECT id_equipe, nome_equipe, linha, encarregado_nome, ativa
		FROM %s WHERE ativa ORDER BY nome_equipe`, equipeTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipes := make([]entities.Equipe, 0)
	for rows.Next() {
		var e entities.Equipe
		if err := rows.Scan(&e.IDEquipe, &e.NomeEquipe, &e.Linha, &e.EncarregadoNome, &e.Ativa); err != nil {
			return nil, err
		}
		equipes = append(equipes, e)
	}
	return equipes, rows.Err()
}

// BuscarPorIDs resolve UUIDs de equipe para o cadastro, indexado por id.
// IDs desconhecidos simplesmente não aparecem no mapa.
func (r *equipeRepository) BuscarPorIDs(ctx context.Context, ids []string) (map[string]entities.Equipe, error) {
	resultado := make(map[string]entities.Equipe, len(ids))
	if len(ids) == 0 {
		return resultado, nil
	}

	querySQL, args, err := psql.
		Select("id_equipe, nome_equipe, linha, encarregado_nome, ativa").
		From(equipeTable).
		Where(sq.Eq{"id_equipe": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e entities.Equipe
		if err := rows.Scan(&e.IDEquipe, &e.NomeEquipe, &e.Linha, &e.EncarregadoNome, &e.Ativa); err != nil {
			return nil, err
		}
		resultado[e.IDEquipe] = e
	}
	return resultado, rows.Err()
}

func (r *equipeRepository) ListarVinculos(ctx context.Context, idAcionamento string) ([]entities.AcionamentoEquipe, error) {
	query := fmt.Sprintf(`
		SELECT id, id_acionamento, id_equipe, papel, encarregado_nome
		FROM %s WHERE id_acionamento = $1 ORDER BY id`, acionamentoEquipeTable)

	rows, err := r.storage.Query(ctx, query, idAcionamento)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vinculos := make([]entities.AcionamentoEquipe, 0)
	for rows.Next() {
		var v entities.AcionamentoEquipe
		if err := rows.Scan(&v.ID, &v.IDAcionamento, &v.IDEquipe, &v.Papel, &v.EncarregadoNome); err != nil {
			return nil, err
		}
		vinculos = append(vinculos, v)
	}
	return vinculos, rows.Err()
}
