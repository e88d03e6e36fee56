// Package password hashea y verifica contraseñas de usuarios.
//
// Los hashes nuevos se generan con bcrypt. Los usuarios migrados del portal
// anterior traen hashes "hex(scrypt).salt" (N=16384, r=8, p=1, 64 bytes) que
// se siguen aceptando en Verify.
package password

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/scrypt"
)

// MinLength longitud mínima aceptada para una contraseña nueva.
const MinLength = 6

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// ErrMismatch la contraseña no corresponde al hash.
var ErrMismatch = errors.New("password: no coincide")

// Hash devuelve el hash bcrypt de la contraseña en texto plano.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara la contraseña con un hash bcrypt o con un hash scrypt heredado.
func Verify(hash, plain string) error {
	if IsLegacy(hash) {
		return verifyScrypt(hash, plain)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}

// IsLegacy informa si el hash tiene el formato scrypt "hash.salt" del sistema anterior.
func IsLegacy(hash string) bool {
	return !strings.HasPrefix(hash, "$2") && strings.Count(hash, ".") == 1
}

func verifyScrypt(stored, plain string) error {
	hashedHex, salt, _ := strings.Cut(stored, ".")
	want, err := hex.DecodeString(hashedHex)
	if err != nil || len(want) != scryptKeyLen {
		return ErrMismatch
	}
	// El salt se usó como texto (su representación hex), no como bytes decodificados.
	got, err := scrypt.Key([]byte(plain), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(want, got) != 1 {
		return ErrMismatch
	}
	return nil
}
