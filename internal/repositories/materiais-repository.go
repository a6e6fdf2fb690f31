package repositories

import (
	"context"
	"errors"
	"fmt"

	"acionamento-system/internal/entities"
	"acionamento-system/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	sq "github.com/Masterminds/squirrel"
)

const (
	preListaTable = "pre_lista_itens"
	consumoTable  = "consumo_itens"
	sucataTable   = "sucata_itens"
	materialTable = "materiais"
)

// As três listas filhas seguem o mesmo contrato: leitura pela pool e
// substituição integral dentro de uma transação aberta pelo serviço.
type MateriaisRepositoryInterface interface {
	ListarPreLista(ctx context.Context, idAcionamento string) ([]entities.PreListaItem, error)
	ListarConsumo(ctx context.Context, idAcionamento string) ([]entities.ConsumoItem, error)
	ListarSucata(ctx context.Context, idAcionamento string) ([]entities.SucataItem, error)
	SubstituirPreLista(ctx context.Context, tx pgx.Tx, idAcionamento string, itens []entities.PreListaItem) error
	SubstituirConsumo(ctx context.Context, tx pgx.Tx, idAcionamento string, itens []entities.ConsumoItem) error
	SubstituirSucata(ctx context.Context, tx pgx.Tx, idAcionamento string, itens []entities.SucataItem) error
	BuscarMateriaisPorCodigos(ctx context.Context, codigos []string) (map[string]entities.Material, error)
}

type materiaisRepository struct{ storage *pgxpool.Pool }

func NewMateriaisRepository(storage *pgxpool.Pool) MateriaisRepositoryInterface {
	return &materiaisRepository{storage: storage}
}

func (r *materiaisRepository) ListarPreLista(ctx context.Context, idAcionamento string) ([]entities.PreListaItem, error) {
	query := fmt.Sprintf(`
		SELECT id, id_acionamento, codigo_material, quantidade, criado_em
		FROM %s WHERE id_acionamento = $1 ORDER BY id`, preListaTable)

	rows, err := r.storage.Query(ctx, query, idAcionamento)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itens := make([]entities.PreListaItem, 0)
	for rows.Next() {
		var it entities.PreListaItem
		if err := rows.Scan(&it.ID, &it.IDAcionamento, &it.CodigoMaterial, &it.Quantidade, &it.CriadoEm); err != nil {
			return nil, err
		}
		itens = append(itens, it)
	}
	return itens, rows.Err()
}

func (r *materiaisRepository) ListarConsumo(ctx context.Context, idAcionamento string) ([]entities.ConsumoItem, error) {
	query := fmt.Sprintf(`
		SELECT id, id_acionamento, codigo_material, quantidade, descricao, unidade, criado_em
		FROM %s WHERE id_acionamento = $1 ORDER BY id`, consumoTable)

	rows, err := r.storage.Query(ctx, query, idAcionamento)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itens := make([]entities.ConsumoItem, 0)
	for rows.Next() {
		var it entities.ConsumoItem
		if err := rows.Scan(&it.ID, &it.IDAcionamento, &it.CodigoMaterial, &it.Quantidade, &it.Descricao, &it.Unidade, &it.CriadoEm); err != nil {
			return nil, err
		}
		itens = append(itens, it)
	}
	return itens, rows.Err()
}

func (r *materiaisRepository) ListarSucata(ctx context.Context, idAcionamento string) ([]entities.SucataItem, error) {
	query := fmt.Sprintf(`
		SELECT id, id_acionamento, codigo_material, quantidade_retirada, classificacao, descricao, unidade, criado_em
		FROM %s WHERE id_acionamento = $1 ORDER BY id`, sucataTable)

	rows, err := r.storage.Query(ctx, query, idAcionamento)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itens := make([]entities.SucataItem, 0)
	for rows.Next() {
		var it entities.SucataItem
		if err := rows.Scan(&it.ID, &it.IDAcionamento, &it.CodigoMaterial, &it.QuantidadeRetirada, &it.Classificacao, &it.Descricao, &it.Unidade, &it.CriadoEm); err != nil {
			return nil, err
		}
		itens = append(itens, it)
	}
	return itens, rows.Err()
}

func (r *materiaisRepository) SubstituirPreLista(ctx context.Context, tx pgx.Tx, idAcionamento string, itens []entities.PreListaItem) error {
	if err := apagarLista(ctx, tx, preListaTable, idAcionamento); err != nil {
		return err
	}
	for _, it := range itens {
		query := fmt.Sprintf(`
			INSERT INTO %s (id_acionamento, codigo_material, quantidade)
			VALUES ($1, $2, $3)`, preListaTable)
		if _, err := tx.Exec(ctx, query, idAcionamento, it.CodigoMaterial, it.Quantidade); err != nil {
			return traduzErroFK(err)
		}
	}
	return nil
}

func (r *materiaisRepository) SubstituirConsumo(ctx context.Context, tx pgx.Tx, idAcionamento string, itens []entities.ConsumoItem) error {
	if err := apagarLista(ctx, tx, consumoTable, idAcionamento); err != nil {
		return err
	}
	for _, it := range itens {
		query := fmt.Sprintf(`
			INSERT INTO %s (id_acionamento, codigo_material, quantidade, descricao, unidade)
			VALUES ($1, $2, $3, $4, $5)`, consumoTable)
		if _, err := tx.Exec(ctx, query, idAcionamento, it.CodigoMaterial, it.Quantidade, it.Descricao, it.Unidade); err != nil {
			return traduzErroFK(err)
		}
	}
	return nil
}

func (r *materiaisRepository) SubstituirSucata(ctx context.Context, tx pgx.Tx, idAcionamento string, itens []entities.SucataItem) error {
	if err := apagarLista(ctx, tx, sucataTable, idAcionamento); err != nil {
		return err
	}
	for _, it := range itens {
		query := fmt.Sprintf(`
			INSERT INTO %s (id_acionamento, codigo_material, quantidade_retirada, classificacao, descricao, unidade)
			VALUES ($1, $2, $3, $4, $5, $6)`, sucataTable)
		if _, err := tx.Exec(ctx, query, idAcionamento, it.CodigoMaterial, it.QuantidadeRetirada, it.Classificacao, it.Descricao, it.Unidade); err != nil {
			return traduzErroFK(err)
		}
	}
	return nil
}

// BuscarMateriaisPorCodigos devolve o cadastro indexado por código para
// enriquecer as listas com descrição e unidade.
func (r *materiaisRepository) BuscarMateriaisPorCodigos(ctx context.Context, codigos []string) (map[string]entities.Material, error) {
	resultado := make(map[string]entities.Material, len(codigos))
	if len(codigos) == 0 {
		return resultado, nil
	}

	querySQL, args, err := psql.
		Select("codigo, descricao, unidade, ativo").
		From(materialTable).
		Where(sq.Eq{"codigo": codigos}).
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
		var m entities.Material
		if err := rows.Scan(&m.Codigo, &m.Descricao, &m.Unidade, &m.Ativo); err != nil {
			return nil, err
		}
		resultado[m.Codigo] = m
	}
	return resultado, rows.Err()
}

func apagarLista(ctx context.Context, tx pgx.Tx, tabela, idAcionamento string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id_acionamento = $1", tabela)
	_, err := tx.Exec(ctx, query, idAcionamento)
	return err
}

func traduzErroFK(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return apperrors.ErrNotFound
	}
	return err
}
