package services

import (
	"context"
	"errors"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/repositories"
	"acionamento-system/pkg/apperrors"
	"acionamento-system/pkg/service"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthService(usuarioRepo repositories.UsuarioRepositoryInterface, jwtService service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{usuarioRepo: usuarioRepo, jwtService: jwtService, logger: logger}
}

// Login confere as credenciais e emite o par de tokens. Usuário
// inexistente e senha errada respondem a mesma coisa.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.usuarioRepo.BuscarPorEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)); err != nil {
		s.logger.Warn("tentativa de login com senha inválida", zap.String("email", req.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Nome)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      dto.UsuarioInfo{ID: usuario.ID, Nome: usuario.Nome, Email: usuario.Email},
	}, nil
}

// RefreshToken troca um refresh token válido por um novo par.
func (s *AuthService) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	claims, err := s.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	usuario, err := s.usuarioRepo.BuscarPorID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	access, refresh, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Nome)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      dto.UsuarioInfo{ID: usuario.ID, Nome: usuario.Nome, Email: usuario.Email},
	}, nil
}
