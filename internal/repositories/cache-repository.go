package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"acionamento-system/internal/dto"

	"github.com/go-redis/redis/v8"
)

const chaveContagens = "acionamentos:contagens"

// CacheRepository guarda as contagens do quadro de etapas por alguns
// segundos. O quadro é consultado por todos os usuários ao mesmo tempo e
// tolera leitura levemente defasada.
type CacheRepositoryInterface interface {
	BuscarContagens(ctx context.Context) ([]dto.ContagemEtapa, bool, error)
	GravarContagens(ctx context.Context, contagens []dto.ContagemEtapa) error
	InvalidarContagens(ctx context.Context) error
}

type cacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheRepository(client *redis.Client, ttl time.Duration) CacheRepositoryInterface {
	return &cacheRepository{client: client, ttl: ttl}
}

func (r *cacheRepository) BuscarContagens(ctx context.Context) ([]dto.ContagemEtapa, bool, error) {
	raw, err := r.client.Get(ctx, chaveContagens).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var contagens []dto.ContagemEtapa
	if err := json.Unmarshal(raw, &contagens); err != nil {
		return nil, false, err
	}
	return contagens, true, nil
}

func (r *cacheRepository) GravarContagens(ctx context.Context, contagens []dto.ContagemEtapa) error {
	raw, err := json.Marshal(contagens)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, chaveContagens, raw, r.ttl).Err()
}

func (r *cacheRepository) InvalidarContagens(ctx context.Context) error {
	return r.client.Del(ctx, chaveContagens).Err()
}
