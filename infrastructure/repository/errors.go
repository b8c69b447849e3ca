package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrFetchUser esconde o erro original da consulta de credenciais
	ErrFetchUser = errors.New("failed to fetch user")
)

// PgErrorCode extrai o código SQLSTATE de um erro do PostgreSQL, ou "" se não houver
func PgErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
