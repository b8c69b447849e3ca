package authenticating

import (
	"errors"
	"fmt"
)

// Mensagens devolvidas ao formulário de login
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// AuthErrorType é o conjunto fechado de falhas de autenticação
type AuthErrorType string

const (
	// CredentialsSignin indica credenciais rejeitadas
	CredentialsSignin AuthErrorType = "CredentialsSignin"
	// CallbackRouteError indica falha interna durante a autorização
	CallbackRouteError AuthErrorType = "CallbackRouteError"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token inválido")
	ErrSignSession        = errors.New("erro ao assinar sessão")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Type    AuthErrorType // Tipo da falha
	Err     error         // Erro base
	Code    string        // Código de erro para API
	Details string        // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Message traduz o tipo do erro para a mensagem exibida ao usuário
func (e *AuthError) Message() string {
	switch e.Type {
	case CredentialsSignin:
		return MsgInvalidCredentials
	default:
		return MsgSomethingWentWrong
	}
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Type == CredentialsSignin
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(errType AuthErrorType, baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Type:    errType,
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
