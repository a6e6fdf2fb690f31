package repositories

import (
	"context"
	"errors"
	"fmt"

	"acionamento-system/internal/entities"
	"acionamento-system/pkg/apperrors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	codigoMOTable  = "codigos_mao_de_obra"
	codigoMOFields = "id, codigo, descricao, unidade, ups, tipo, operacao, ativo"
)

type CodigoMORepositoryInterface interface {
	Buscar(ctx context.Context, busca, tipo string, limit uint64) ([]entities.CodigoMO, error)
	BuscarPorCodigo(ctx context.Context, codigo, tipo string) (*entities.CodigoMO, error)
}

type codigoMORepository struct{ storage *pgxpool.Pool }

func NewCodigoMORepository(storage *pgxpool.Pool) CodigoMORepositoryInterface {
	return &codigoMORepository{storage: storage}
}

func (r *codigoMORepository) Buscar(ctx context.Context, busca, tipo string, limit uint64) ([]entities.CodigoMO, error) {
	if limit == 0 || limit > 100 {
		limit = 50
	}
	builder := psql.Select(codigoMOFields).From(codigoMOTable).Where(sq.Eq{"ativo": true})
	if tipo != "" {
		builder = builder.Where(sq.Eq{"tipo": tipo})
	}
	if busca != "" {
		builder = builder.Where(sq.Or{
			sq.ILike{"codigo": "%" + busca + "%"},
			sq.ILike{"descricao": "%" + busca + "%"},
		})
	}
	querySQL, args, err := builder.OrderBy("codigo").Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codigos := make([]entities.CodigoMO, 0, limit)
	for rows.Next() {
		var c entities.CodigoMO
		if err := rows.Scan(&c.ID, &c.Codigo, &c.Descricao, &c.Unidade, &c.Ups, &c.Tipo, &c.Operacao, &c.Ativo); err != nil {
			return nil, err
		}
		codigos = append(codigos, c)
	}
	return codigos, rows.Err()
}

func (r *codigoMORepository) BuscarPorCodigo(ctx context.Context, codigo, tipo string) (*entities.CodigoMO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE codigo = $1 AND tipo = $2 AND ativo", codigoMOFields, codigoMOTable)

	var c entities.CodigoMO
	err := r.storage.QueryRow(ctx, query, codigo, tipo).Scan(
		&c.ID, &c.Codigo, &c.Descricao, &c.Unidade, &c.Ups, &c.Tipo, &c.Operacao, &c.Ativo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
