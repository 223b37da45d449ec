package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador público curto usado em planilhas e ativos.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 8)
}
