package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
	"acionamento-system/pkg/apperrors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	acionamentoTable  = "acionamentos"
	acionamentoFields = `id_acionamento, codigo_acionamento, prioridade, modalidade, etapa_atual, status,
		elemento_id, descricao, observacoes, id_equipe, codigo_equipe, equipe, nome_equipe, equipe_lm, equipe_lv,
		encarregado, encarregado_lm, encarregado_lv, tecnico,
		municipio, endereco, logradouro, numero, bairro, uf,
		data_abertura, data_despacho, almox_conferido_em, execucao_finalizada_em, medicao_registrada_em,
		numero_os, os_criada_em, book_enviado_em, book_destinatario, book_mensagem, numero_obra, numero_obra_atualizado_em,
		criado_em, atualizado_em`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type AcionamentoRepositoryInterface interface {
	Criar(ctx context.Context, a *entities.Acionamento) error
	BuscarPorID(ctx context.Context, id string) (*entities.Acionamento, error)
	Listar(ctx context.Context, etapa int, busca string, limit, offset uint64) ([]entities.Acionamento, uint64, error)
	ContarPorEtapa(ctx context.Context) ([]dto.ContagemEtapa, error)
	AtualizarCampos(ctx context.Context, id string, campos map[string]interface{}) error
	Despachar(ctx context.Context, id string, dataDespacho time.Time, status string, almoxConferido bool) error
	AvancarEtapa(ctx context.Context, tx pgx.Tx, id string, novaEtapa int, extras map[string]interface{}) error
}

type acionamentoRepository struct{ storage *pgxpool.Pool }

func NewAcionamentoRepository(storage *pgxpool.Pool) AcionamentoRepositoryInterface {
	return &acionamentoRepository{storage: storage}
}

func scanAcionamento(row pgx.Row) (*entities.Acionamento, error) {
	var a entities.Acionamento
	err := row.Scan(
		&a.IDAcionamento, &a.CodigoAcionamento, &a.Prioridade, &a.Modalidade, &a.EtapaAtual, &a.Status,
		&a.ElementoID, &a.Descricao, &a.Observacoes, &a.IDEquipe, &a.CodigoEquipe, &a.Equipe, &a.NomeEquipe, &a.EquipeLM, &a.EquipeLV,
		&a.Encarregado, &a.EncarregadoLM, &a.EncarregadoLV, &a.Tecnico,
		&a.Municipio, &a.Endereco, &a.Logradouro, &a.Numero, &a.Bairro, &a.UF,
		&a.DataAbertura, &a.DataDespacho, &a.AlmoxConferidoEm, &a.ExecucaoFinalizadaEm, &a.MedicaoRegistradaEm,
		&a.NumeroOS, &a.OSCriadaEm, &a.BookEnviadoEm, &a.BookDestinatario, &a.BookMensagem, &a.NumeroObra, &a.NumeroObraAtualizadoEm,
		&a.CriadoEm, &a.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *acionamentoRepository) Criar(ctx context.Context, a *entities.Acionamento) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id_acionamento, codigo_acionamento, prioridade, modalidade, etapa_atual, status,
			municipio, descricao, equipe, codigo_equipe, data_abertura)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`, acionamentoTable)

	_, err := r.storage.Exec(ctx, query,
		a.IDAcionamento, a.CodigoAcionamento, a.Prioridade, a.Modalidade, a.EtapaAtual, a.Status,
		a.Municipio, a.Descricao, a.Equipe, a.CodigoEquipe, a.DataAbertura,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

func (r *acionamentoRepository) BuscarPorID(ctx context.Context, id string) (*entities.Acionamento, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id_acionamento = $1", acionamentoFields, acionamentoTable)
	return scanAcionamento(r.storage.QueryRow(ctx, query, id))
}

func (r *acionamentoRepository) Listar(ctx context.Context, etapa int, busca string, limit, offset uint64) ([]entities.Acionamento, uint64, error) {
	base := psql.Select(acionamentoFields).From(acionamentoTable).Where(sq.Eq{"etapa_atual": etapa})
	count := psql.Select("COUNT(*)").From(acionamentoTable).Where(sq.Eq{"etapa_atual": etapa})

	if busca != "" {
		filtro := sq.Or{
			sq.ILike{"codigo_acionamento": "%" + busca + "%"},
			sq.ILike{"municipio": "%" + busca + "%"},
			sq.ILike{"equipe": "%" + busca + "%"},
			sq.ILike{"nome_equipe": "%" + busca + "%"},
			sq.ILike{"numero_os": "%" + busca + "%"},
		}
		base = base.Where(filtro)
		count = count.Where(filtro)
	}

	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Acionamento{}, 0, nil
	}

	if limit == 0 {
		limit = 50
	}
	base = base.OrderBy("data_abertura DESC").Limit(limit).Offset(offset)

	querySQL, queryArgs, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	lista := make([]entities.Acionamento, 0, limit)
	for rows.Next() {
		a, err := scanAcionamento(rows)
		if err != nil {
			return nil, 0, err
		}
		lista = append(lista, *a)
	}
	return lista, total, rows.Err()
}

func (r *acionamentoRepository) ContarPorEtapa(ctx context.Context) ([]dto.ContagemEtapa, error) {
	query := fmt.Sprintf(`
		SELECT etapa_atual, COUNT(*)
		FROM %s
		WHERE status <> 'cancelado'
		GROUP BY etapa_atual
		ORDER BY etapa_atual`, acionamentoTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contagens := make([]dto.ContagemEtapa, 0, 10)
	for rows.Next() {
		var c dto.ContagemEtapa
		if err := rows.Scan(&c.Etapa, &c.Total); err != nil {
			return nil, err
		}
		contagens = append(contagens, c)
	}
	return contagens, rows.Err()
}

func (r *acionamentoRepository) AtualizarCampos(ctx context.Context, id string, campos map[string]interface{}) error {
	if len(campos) == 0 {
		return nil
	}
	upd := psql.Update(acionamentoTable).Where(sq.Eq{"id_acionamento": id}).Set("atualizado_em", sq.Expr("NOW()"))
	for coluna, valor := range campos {
		upd = upd.Set(coluna, valor)
	}
	querySQL, args, err := upd.ToSql()
	if err != nil {
		return err
	}
	tag, err := r.storage.Exec(ctx, querySQL, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *acionamentoRepository) Despachar(ctx context.Context, id string, dataDespacho time.Time, status string, almoxConferido bool) error {
	campos := map[string]interface{}{
		"data_despacho": dataDespacho,
		"status":        status,
	}
	if almoxConferido {
		campos["almox_conferido_em"] = sq.Expr("NOW()")
	}
	return r.AtualizarCampos(ctx, id, campos)
}

// AvancarEtapa só move para frente: a cláusula etapa_atual < novaEtapa
// torna o avanço idempotente e impede regressão mesmo sob requisições
// concorrentes. Aceita uma transação aberta para compor com outras
// escritas.
func (r *acionamentoRepository) AvancarEtapa(ctx context.Context, tx pgx.Tx, id string, novaEtapa int, extras map[string]interface{}) error {
	var q querier = r.storage
	if tx != nil {
		q = tx
	}
	upd := psql.Update(acionamentoTable).
		Set("etapa_atual", novaEtapa).
		Set("atualizado_em", sq.Expr("NOW()")).
		Where(sq.Eq{"id_acionamento": id}).
		Where(sq.Lt{"etapa_atual": novaEtapa})
	for coluna, valor := range extras {
		upd = upd.Set(coluna, valor)
	}
	querySQL, args, err := upd.ToSql()
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, querySQL, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var etapa int
		check := fmt.Sprintf("SELECT etapa_atual FROM %s WHERE id_acionamento = $1", acionamentoTable)
		if err := q.QueryRow(ctx, check, id).Scan(&etapa); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return err
		}
		return apperrors.ErrEtapaRegressao
	}
	return nil
}
