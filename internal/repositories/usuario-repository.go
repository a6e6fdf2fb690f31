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
	usuarioTable  = "usuarios"
	usuarioFields = "id, email, nome, senha_hash, ativo, criado_em"
)

type UsuarioRepositoryInterface interface {
	BuscarPorEmail(ctx context.Context, email string) (*entities.Usuario, error)
	BuscarPorID(ctx context.Context, id uint64) (*entities.Usuario, error)
}

type usuarioRepository struct{ storage *pgxpool.Pool }

func NewUsuarioRepository(storage *pgxpool.Pool) UsuarioRepositoryInterface {
	return &usuarioRepository{storage: storage}
}

func (r *usuarioRepository) BuscarPorEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = $1 AND ativo", usuarioFields, usuarioTable)
	return scanUsuario(r.storage.QueryRow(ctx, query, email))
}

func (r *usuarioRepository) BuscarPorID(ctx context.Context, id uint64) (*entities.Usuario, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND ativo", usuarioFields, usuarioTable)
	return scanUsuario(r.storage.QueryRow(ctx, query, id))
}

func scanUsuario(row pgx.Row) (*entities.Usuario, error) {
	var u entities.Usuario
	err := row.Scan(&u.ID, &u.Email, &u.Nome, &u.SenhaHash, &u.Ativo, &u.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
