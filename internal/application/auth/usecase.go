// Package auth concentra los casos de uso de autenticación. Aquí vive la única
// ruta de login y de cambio de contraseña del sistema; el hasheo y la emisión
// de tokens se delegan a pkg/password y pkg/token respectivamente.
package auth

import (
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
	"github.com/tu-usuario/taller-api/pkg/password"
	"github.com/tu-usuario/taller-api/pkg/token"
)

// AuthUseCase casos de uso de autenticación: login, cambio de contraseña y
// verificación de token.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	issuer      *token.Issuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, issuer *token.Issuer) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, issuer: issuer}
}

// Login verifica email/password y emite un token de 24h.
// Usuario inexistente y contraseña incorrecta devuelven el mismo
// ErrCredencialesInvalidas: la respuesta no revela cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if !password.Verify(in.Password, u.PasswordHash) {
		return nil, domain.ErrCredencialesInvalidas
	}
	tok, err := uc.issuer.Issue(u.ID, u.Nombre, u.Email, u.Rol)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:           tok,
		User:            toUsuarioPublico(u),
		RequiereReseteo: u.RequiereReseteo,
	}, nil
}

// CambiarPassword reautentica con la contraseña actual antes de aceptar la
// nueva. Distingue usuario inexistente (404) de contraseña incorrecta (401),
// a diferencia del login. Limpia requiere_reseteo y reemite el token.
func (uc *AuthUseCase) CambiarPassword(in dto.CambiarPasswordRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if !password.Verify(in.OldPassword, u.PasswordHash) {
		return nil, domain.ErrPasswordIncorrecta
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := uc.usuarioRepo.UpdatePassword(u.ID, hash); err != nil {
		return nil, err
	}
	tok, err := uc.issuer.Issue(u.ID, u.Nombre, u.Email, u.Rol)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: tok, User: toUsuarioPublico(u)}, nil
}

// VerifyToken decodifica y valida el token sin consultar la base de datos.
// El claim devuelto puede estar desactualizado respecto a la cuenta (rol o
// estado cambiados después de emitirlo); es la ventana de 24h aceptada.
func (uc *AuthUseCase) VerifyToken(tokenString string) (*dto.VerifyTokenResponse, error) {
	claims, err := uc.issuer.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	return &dto.VerifyTokenResponse{User: dto.UsuarioPublico{
		ID:     claims.UserID,
		Nombre: claims.Nombre,
		Email:  claims.Email,
		Rol:    claims.Rol,
	}}, nil
}

func toUsuarioPublico(u *entity.Usuario) dto.UsuarioPublico {
	return dto.UsuarioPublico{
		ID:     u.ID,
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
	}
}
