package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashSenha gera um hash bcrypt para a senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara hash bcrypt com a senha em texto puro.
func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// Tamanho das senhas temporárias emitidas no cadastro de usuários.
const tamanhoSenhaTemporaria = 12

// GerarSenhaTemporaria gera a senha inicial de um usuário cadastrado sem
// senha. Alfanumérica, sorteada com crypto/rand.
func GerarSenhaTemporaria() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	senha := make([]byte, tamanhoSenhaTemporaria)
	for i := range senha {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		senha[i] = chars[num.Int64()]
	}
	return string(senha), nil
}
