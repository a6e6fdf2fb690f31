package repositories

import (
	"context"
	"errors"
	"fmt"

	"acionamento-system/internal/entities"
	"acionamento-system/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	execucaoTable  = "acionamento_execucao"
	execucaoFields = `id_acionamento, km_inicial, km_final, km_total,
		saida_base, inicio_servico, retorno_servico, retorno_base,
		alimentador, subestacao, numero_transformador, id_poste,
		troca_transformador,
		trafo_ret_potencia, trafo_ret_marca, trafo_ret_ano, trafo_ret_tensao_primaria,
		trafo_ret_tensao_secundaria, trafo_ret_numero_serie, trafo_ret_patrimonio,
		trafo_inst_potencia, trafo_inst_marca, trafo_inst_ano, trafo_inst_tensao_primaria,
		trafo_inst_tensao_secundaria, trafo_inst_numero_serie, trafo_inst_patrimonio,
		tensao_an, tensao_bn, tensao_cn, tensao_ab, tensao_bc, tensao_ca,
		os_tablet, ss_nota, numero_intervencao, observacoes,
		criado_em, atualizado_em`
)

type ExecucaoRepositoryInterface interface {
	BuscarPorAcionamento(ctx context.Context, idAcionamento string) (*entities.Execucao, error)
	Salvar(ctx context.Context, e *entities.Execucao) error
}

type execucaoRepository struct{ storage *pgxpool.Pool }

func NewExecucaoRepository(storage *pgxpool.Pool) ExecucaoRepositoryInterface {
	return &execucaoRepository{storage: storage}
}

func (r *execucaoRepository) BuscarPorAcionamento(ctx context.Context, idAcionamento string) (*entities.Execucao, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id_acionamento = $1", execucaoFields, execucaoTable)

	var e entities.Execucao
	err := r.storage.QueryRow(ctx, query, idAcionamento).Scan(
		&e.IDAcionamento, &e.KmInicial, &e.KmFinal, &e.KmTotal,
		&e.SaidaBase, &e.InicioServico, &e.RetornoServico, &e.RetornoBase,
		&e.Alimentador, &e.Subestacao, &e.NumeroTransformador, &e.IDPoste,
		&e.TrocaTransformador,
		&e.TrafoRetPotencia, &e.TrafoRetMarca, &e.TrafoRetAno, &e.TrafoRetTensaoPrimaria,
		&e.TrafoRetTensaoSecundaria, &e.TrafoRetNumeroSerie, &e.TrafoRetPatrimonio,
		&e.TrafoInstPotencia, &e.TrafoInstMarca, &e.TrafoInstAno, &e.TrafoInstTensaoPrimaria,
		&e.TrafoInstTensaoSecundaria, &e.TrafoInstNumeroSerie, &e.TrafoInstPatrimonio,
		&e.TensaoAN, &e.TensaoBN, &e.TensaoCN, &e.TensaoAB, &e.TensaoBC, &e.TensaoCA,
		&e.OSTablet, &e.SSNota, &e.NumeroIntervencao, &e.Observacoes,
		&e.CriadoEm, &e.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Salvar grava os fatos de campo com upsert: um registro por
// acionamento, sempre substituído por inteiro.
func (r *execucaoRepository) Salvar(ctx context.Context, e *entities.Execucao) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id_acionamento, km_inicial, km_final, km_total,
			saida_base, inicio_servico, retorno_servico, retorno_base,
			alimentador, subestacao, numero_transformador, id_poste,
			troca_transformador,
			trafo_ret_potencia, trafo_ret_marca, trafo_ret_ano, trafo_ret_tensao_primaria,
			trafo_ret_tensao_secundaria, trafo_ret_numero_serie, trafo_ret_patrimonio,
			trafo_inst_potencia, trafo_inst_marca, trafo_inst_ano, trafo_inst_tensao_primaria,
			trafo_inst_tensao_secundaria, trafo_inst_numero_serie, trafo_inst_patrimonio,
			tensao_an, tensao_bn, tensao_cn, tensao_ab, tensao_bc, tensao_ca,
			os_tablet, ss_nota, numero_intervencao, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33,
			$34, $35, $36, $37)
		ON CONFLICT (id_acionamento) DO UPDATE SET
			km_inicial = EXCLUDED.km_inicial,
			km_final = EXCLUDED.km_final,
			km_total = EXCLUDED.km_total,
			saida_base = EXCLUDED.saida_base,
			inicio_servico = EXCLUDED.inicio_servico,
			retorno_servico = EXCLUDED.retorno_servico,
			retorno_base = EXCLUDED.retorno_base,
			alimentador = EXCLUDED.alimentador,
			subestacao = EXCLUDED.subestacao,
			numero_transformador = EXCLUDED.numero_transformador,
			id_poste = EXCLUDED.id_poste,
			troca_transformador = EXCLUDED.troca_transformador,
			trafo_ret_potencia = EXCLUDED.trafo_ret_potencia,
			trafo_ret_marca = EXCLUDED.trafo_ret_marca,
			trafo_ret_ano = EXCLUDED.trafo_ret_ano,
			trafo_ret_tensao_primaria = EXCLUDED.trafo_ret_tensao_primaria,
			trafo_ret_tensao_secundaria = EXCLUDED.trafo_ret_tensao_secundaria,
			trafo_ret_numero_serie = EXCLUDED.trafo_ret_numero_serie,
			trafo_ret_patrimonio = EXCLUDED.trafo_ret_patrimonio,
			trafo_inst_potencia = EXCLUDED.trafo_inst_potencia,
			trafo_inst_marca = EXCLUDED.trafo_inst_marca,
			trafo_inst_ano = EXCLUDED.trafo_inst_ano,
			trafo_inst_tensao_primaria = EXCLUDED.trafo_inst_tensao_primaria,
			trafo_inst_tensao_secundaria = EXCLUDED.trafo_inst_tensao_secundaria,
			trafo_inst_numero_serie = EXCLUDED.trafo_inst_numero_serie,
			trafo_inst_patrimonio = EXCLUDED.trafo_inst_patrimonio,
			tensao_an = EXCLUDED.tensao_an,
			tensao_bn = EXCLUDED.tensao_bn,
			tensao_cn = EXCLUDED.tensao_cn,
			tensao_ab = EXCLUDED.tensao_ab,
			tensao_bc = EXCLUDED.tensao_bc,
			tensao_ca = EXCLUDED.tensao_ca,
			os_tablet = EXCLUDED.os_tablet,
			ss_nota = EXCLUDED.ss_nota,
			numero_intervencao = EXCLUDED.numero_intervencao,
			observacoes = EXCLUDED.observacoes,
			atualizado_em = NOW()`, execucaoTable)

	_, err := r.storage.Exec(ctx, query,
		e.IDAcionamento, e.KmInicial, e.KmFinal, e.KmTotal,
		e.SaidaBase, e.InicioServico, e.RetornoServico, e.RetornoBase,
		e.Alimentador, e.Subestacao, e.NumeroTransformador, e.IDPoste,
		e.TrocaTransformador,
		e.TrafoRetPotencia, e.TrafoRetMarca, e.TrafoRetAno, e.TrafoRetTensaoPrimaria,
		e.TrafoRetTensaoSecundaria, e.TrafoRetNumeroSerie, e.TrafoRetPatrimonio,
		e.TrafoInstPotencia, e.TrafoInstMarca, e.TrafoInstAno, e.TrafoInstTensaoPrimaria,
		e.TrafoInstTensaoSecundaria, e.TrafoInstNumeroSerie, e.TrafoInstPatrimonio,
		e.TensaoAN, e.TensaoBN, e.TensaoCN, e.TensaoAB, e.TensaoBC, e.TensaoCA,
		e.OSTablet, e.SSNota, e.NumeroIntervencao, e.Observacoes,
	)
	return err
}
