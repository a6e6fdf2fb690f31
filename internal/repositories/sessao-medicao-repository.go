package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessaoMedicao registra o progresso da sessão de medição de um
// acionamento: quais artefatos já foram gerados desde a última abertura.
// Vive no Redis com TTL; reabrir a sessão zera as marcas.
type SessaoMedicao struct {
	AbertaEm    time.Time `json:"aberta_em"`
	OrcamentoLM bool      `json:"orcamento_lm"`
	OrcamentoLV bool      `json:"orcamento_lv"`
	PlanilhaLM  bool      `json:"planilha_lm"`
	PlanilhaLV  bool      `json:"planilha_lv"`
}

// Gerou diz se a modalidade teve ao menos um artefato gerado na sessão.
func (s *SessaoMedicao) Gerou(linha string) bool {
	if linha == "LV" {
		return s.OrcamentoLV || s.PlanilhaLV
	}
	return s.OrcamentoLM || s.PlanilhaLM
}

type SessaoMedicaoRepositoryInterface interface {
	Abrir(ctx context.Context, idAcionamento string) (*SessaoMedicao, error)
	Buscar(ctx context.Context, idAcionamento string) (*SessaoMedicao, error)
	MarcarOrcamento(ctx context.Context, idAcionamento, linha string) error
	MarcarPlanilha(ctx context.Context, idAcionamento, linha string) error
}

type sessaoMedicaoRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessaoMedicaoRepository(client *redis.Client, ttl time.Duration) SessaoMedicaoRepositoryInterface {
	return &sessaoMedicaoRepository{client: client, ttl: ttl}
}

func chaveSessao(idAcionamento string) string {
	return fmt.Sprintf("medicao:sessao:%s", idAcionamento)
}

// Abrir cria (ou recria) a sessão zerada. É a operação de "reset": toda
// reabertura invalida os artefatos gerados antes.
func (r *sessaoMedicaoRepository) Abrir(ctx context.Context, idAcionamento string) (*SessaoMedicao, error) {
	sessao := &SessaoMedicao{AbertaEm: time.Now()}
	if err := r.gravar(ctx, idAcionamento, sessao); err != nil {
		return nil, err
	}
	return sessao, nil
}

// Buscar devolve a sessão corrente ou nil quando não há sessão aberta
// (expirada ou nunca aberta).
func (r *sessaoMedicaoRepository) Buscar(ctx context.Context, idAcionamento string) (*SessaoMedicao, error) {
	raw, err := r.client.Get(ctx, chaveSessao(idAcionamento)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var sessao SessaoMedicao
	if err := json.Unmarshal(raw, &sessao); err != nil {
		return nil, err
	}
	return &sessao, nil
}

func (r *sessaoMedicaoRepository) MarcarOrcamento(ctx context.Context, idAcionamento, linha string) error {
	return r.marcar(ctx, idAcionamento, func(s *SessaoMedicao) {
		if linha == "LV" {
			s.OrcamentoLV = true
		} else {
			s.OrcamentoLM = true
		}
	})
}

func (r *sessaoMedicaoRepository) MarcarPlanilha(ctx context.Context, idAcionamento, linha string) error {
	return r.marcar(ctx, idAcionamento, func(s *SessaoMedicao) {
		if linha == "LV" {
			s.PlanilhaLV = true
		} else {
			s.PlanilhaLM = true
		}
	})
}

func (r *sessaoMedicaoRepository) marcar(ctx context.Context, idAcionamento string, aplica func(*SessaoMedicao)) error {
	sessao, err := r.Buscar(ctx, idAcionamento)
	if err != nil {
		return err
	}
	if sessao == nil {
		// Gerar documento sem sessão aberta inicia uma implicitamente.
		sessao = &SessaoMedicao{AbertaEm: time.Now()}
	}
	aplica(sessao)
	return r.gravar(ctx, idAcionamento, sessao)
}

func (r *sessaoMedicaoRepository) gravar(ctx context.Context, idAcionamento string, sessao *SessaoMedicao) error {
	raw, err := json.Marshal(sessao)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, chaveSessao(idAcionamento), raw, r.ttl).Err()
}
