package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto, usado como jti das sessões
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 21)
}

// NewUUID gera o id de novas faturas
func NewUUID() string {
	return uuid.NewString()
}
