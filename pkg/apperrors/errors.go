package apperrors

import "fmt"

var (
	// JWT e tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de assinatura do token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("token expirado")
	ErrTokenIsNotRefresh    = fmt.Errorf("o token não é um refresh token")

	// Autenticação
	ErrEmptyAuthHeader    = fmt.Errorf("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader  = fmt.Errorf("formato do cabeçalho de autorização inválido")
	ErrInvalidCredentials = fmt.Errorf("credenciais inválidas")
	ErrUnauthorized       = fmt.Errorf("não autorizado")

	// Contexto
	ErrUserIDNotFoundInContext = fmt.Errorf("usuário não encontrado no contexto da requisição")

	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrBadRequest = fmt.Errorf("requisição inválida")
	ErrConflict   = fmt.Errorf("registro já existente")

	// Fluxo de etapas
	ErrEtapaRegressao = fmt.Errorf("a etapa de um acionamento não pode retroceder")
)

// HttpError carrega o código HTTP, a mensagem para o usuário e a causa
// interna com contexto para o log.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// InvalidInputError marca falhas de validação de negócio detectadas antes
// de qualquer chamada ao banco.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
