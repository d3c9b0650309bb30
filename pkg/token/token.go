// Package token es el único emisor/verificador de tokens de sesión del sistema.
// Los tokens son JWT HS256 firmados con el secreto del servidor, sin estado:
// no existe tabla de sesiones y la verificación no consulta la base de datos.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. Expirado y firma inválida se distinguen para que la
// capa HTTP pueda reportarlos; un token ausente lo detecta el middleware antes
// de llegar aquí.
var (
	ErrExpired          = errors.New("token expirado")
	ErrInvalidSignature = errors.New("firma de token inválida")
	ErrInvalid          = errors.New("token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Rol viaja en el token para que el middleware de autorización decida sin
// consultar la DB; por diseño el claim puede quedar desactualizado hasta 24h si
// el usuario cambia de rol o se desactiva (ver Verify).
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"` // "admin" | "secretaria" | "mecanico"
}

// Issuer firma y verifica tokens con un secreto compartido.
type Issuer struct {
	secret   string
	issuer   string
	expHours int
}

// NewIssuer construye el emisor. expHours <= 0 usa 24h.
func NewIssuer(secret, issuer string, expHours int) *Issuer {
	if expHours <= 0 {
		expHours = 24
	}
	return &Issuer{secret: secret, issuer: issuer, expHours: expHours}
}

// Issue genera un token firmado con id, nombre, email y rol del usuario.
// Expira expHours después de la emisión.
func (i *Issuer) Issue(userID int64, nombre, email, rol string) (string, error) {
	if i.secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(i.expHours) * time.Hour)),
		},
		UserID: userID,
		Nombre: nombre,
		Email:  email,
		Rol:    rol,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}

// Verify valida firma y expiración y devuelve los claims embebidos sin tocar la
// base de datos: un claim sigue siendo válido aunque la cuenta haya sido
// desactivada después de emitirlo, hasta que venza la ventana de expiración.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	if i.secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(i.secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrInvalid
		}
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
