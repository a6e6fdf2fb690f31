package middleware

import (
	"context"
	"net/http"
	"strings"

	apperrors "acionamento-system/pkg/apperrors"
	"acionamento-system/pkg/contextkeys"
	"acionamento-system/pkg/service"
	"acionamento-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtSvc, logger: logger}
}

// Auth extrai o usuário atual (id e nome de exibição) do bearer token e o
// injeta no contexto da requisição. O núcleo do sistema consome apenas
// esses dois valores.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return utils.ErrorResponse(c,
				apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrEmptyAuthHeader.Error(), apperrors.ErrEmptyAuthHeader, nil),
				m.logger)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c,
				apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidAuthHeader.Error(), apperrors.ErrInvalidAuthHeader, nil),
				m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			return utils.ErrorResponse(c,
				apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), err, nil),
				m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c,
				apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidToken.Error(), apperrors.ErrTokenIsNotRefresh, nil),
				m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserNameKey, claims.UserName)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
