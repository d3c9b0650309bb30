// Package password es el único punto de hasheo y verificación de contraseñas.
package password

import "golang.org/x/crypto/bcrypt"

// Cost factor de trabajo bcrypt. El sistema original usaba salt rounds = 10,
// que coincide con bcrypt.DefaultCost.
const Cost = bcrypt.DefaultCost

// Hash genera un digest bcrypt autosalado a partir de la contraseña en claro.
// El texto plano nunca se persiste ni se loggea.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara la contraseña en claro contra el hash almacenado.
// La comparación la hace bcrypt en tiempo constante respecto al digest.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
