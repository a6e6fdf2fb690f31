package utils

import (
	"context"
	"database/sql"
	"strings"
	"time"

	apperrors "acionamento-system/pkg/apperrors"
	"acionamento-system/pkg/contextkeys"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserNameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(contextkeys.UserNameKey).(string)
	return name
}

func NullStringToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func NullTimeToEmptyString(nt sql.NullTime) string {
	if !nt.Valid {
		return ""
	}
	return nt.Time.Local().Format("2006-01-02 15:04:05")
}

// PickValue devolve o primeiro valor não vazio (após trim), como a cadeia
// de fallbacks dos cabeçalhos do orçamento.
func PickValue(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func FormatDateTimeBr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "--"
	}
	return t.Local().Format("02/01/2006 15:04")
}
