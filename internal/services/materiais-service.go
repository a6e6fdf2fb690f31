package services

import (
	"context"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
	"acionamento-system/internal/repositories"
	"acionamento-system/pkg/apperrors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MateriaisService mantém as três listas filhas de um acionamento.
// Salvar é sempre substituição integral dentro de uma transação: ou a
// lista nova entra por inteiro, ou a antiga permanece intacta.
type MateriaisService struct {
	materiaisRepo   repositories.MateriaisRepositoryInterface
	acionamentoRepo repositories.AcionamentoRepositoryInterface
	txManager       repositories.TxManagerInterface
	logger          *zap.Logger
}

func NewMateriaisService(
	materiaisRepo repositories.MateriaisRepositoryInterface,
	acionamentoRepo repositories.AcionamentoRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *MateriaisService {
	return &MateriaisService{
		materiaisRepo:   materiaisRepo,
		acionamentoRepo: acionamentoRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (s *MateriaisService) SalvarPreLista(ctx context.Context, idAcionamento string, req dto.SalvarPreListaRequest) ([]entities.PreListaItem, error) {
	if _, err := s.acionamentoRepo.BuscarPorID(ctx, idAcionamento); err != nil {
		return nil, err
	}

	itens := make([]entities.PreListaItem, 0, len(req.Itens))
	for _, it := range req.Itens {
		itens = append(itens, entities.PreListaItem{
			IDAcionamento:  idAcionamento,
			CodigoMaterial: it.CodigoMaterial,
			Quantidade:     it.Quantidade,
		})
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.materiaisRepo.SubstituirPreLista(ctx, tx, idAcionamento, itens)
	})
	if err != nil {
		s.logger.Error("erro ao salvar pré-lista", zap.String("id_acionamento", idAcionamento), zap.Error(err))
		return nil, err
	}
	return s.materiaisRepo.ListarPreLista(ctx, idAcionamento)
}

func (s *MateriaisService) SalvarConsumo(ctx context.Context, idAcionamento string, req dto.SalvarConsumoRequest) ([]entities.ConsumoItem, error) {
	if _, err := s.acionamentoRepo.BuscarPorID(ctx, idAcionamento); err != nil {
		return nil, err
	}

	itens := make([]entities.ConsumoItem, 0, len(req.Itens))
	codigos := make([]string, 0, len(req.Itens))
	for _, it := range req.Itens {
		itens = append(itens, entities.ConsumoItem{
			IDAcionamento:  idAcionamento,
			CodigoMaterial: it.CodigoMaterial,
			Quantidade:     it.Quantidade,
			Descricao:      null.NewString(it.Descricao, it.Descricao != ""),
			Unidade:        null.NewString(it.Unidade, it.Unidade != ""),
		})
		codigos = append(codigos, it.CodigoMaterial)
	}

	cadastro, err := s.materiaisRepo.BuscarMateriaisPorCodigos(ctx, codigos)
	if err != nil {
		return nil, err
	}
	for i := range itens {
		m, ok := cadastro[itens[i].CodigoMaterial]
		if !ok {
			continue
		}
		if !itens[i].Descricao.Valid {
			itens[i].Descricao = null.StringFrom(m.Descricao)
		}
		if !itens[i].Unidade.Valid {
			itens[i].Unidade = m.Unidade
		}
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.materiaisRepo.SubstituirConsumo(ctx, tx, idAcionamento, itens)
	})
	if err != nil {
		s.logger.Error("erro ao salvar consumo", zap.String("id_acionamento", idAcionamento), zap.Error(err))
		return nil, err
	}
	return s.materiaisRepo.ListarConsumo(ctx, idAcionamento)
}

func (s *MateriaisService) SalvarSucata(ctx context.Context, idAcionamento string, req dto.SalvarSucataRequest) ([]entities.SucataItem, error) {
	if _, err := s.acionamentoRepo.BuscarPorID(ctx, idAcionamento); err != nil {
		return nil, err
	}

	itens := make([]entities.SucataItem, 0, len(req.Itens))
	for _, it := range req.Itens {
		if !classificacaoValida(it.Classificacao) {
			return nil, apperrors.NewInvalidInputError("classificação de sucata inválida: %s", it.Classificacao)
		}
		itens = append(itens, entities.SucataItem{
			IDAcionamento:      idAcionamento,
			CodigoMaterial:     it.CodigoMaterial,
			QuantidadeRetirada: it.QuantidadeRetirada,
			Classificacao:      it.Classificacao,
			Descricao:          null.NewString(it.Descricao, it.Descricao != ""),
			Unidade:            null.NewString(it.Unidade, it.Unidade != ""),
		})
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.materiaisRepo.SubstituirSucata(ctx, tx, idAcionamento, itens)
	})
	if err != nil {
		s.logger.Error("erro ao salvar sucata", zap.String("id_acionamento", idAcionamento), zap.Error(err))
		return nil, err
	}
	return s.materiaisRepo.ListarSucata(ctx, idAcionamento)
}

func classificacaoValida(c string) bool {
	for _, aceita := range entities.ClassificacoesSucata {
		if c == aceita {
			return true
		}
	}
	return false
}
