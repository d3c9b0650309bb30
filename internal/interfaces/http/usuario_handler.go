package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// UsuarioHandler maneja las peticiones HTTP de cuentas del personal.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas del personal
// @Tags         usuarios
// @Produce      json
// @Security     Bearer
// @Param        rol     query  string  false  "filtro de igualdad por rol"
// @Param        estado  query  string  false  "filtro de igualdad por estado"
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	filter := repository.UsuarioFilter{
		Rol:    c.Query("rol"),
		Estado: c.Query("estado"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cuenta (solo admin)
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.CreateUsuarioRequest  true  "cuenta nueva"
// @Success      201  {object}  dto.CreatedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	id, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre, email, password y rol válido son requeridos"})
		}
		// El duplicado de email también cae aquí: el contrato del front no
		// distingue 409.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Mensaje: "Usuario creado exitosamente"})
}

// Update godoc
// @Summary      Actualizar cuenta (admin o la propia cuenta)
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  int                       true  "id de la cuenta"
// @Param        body  body  dto.UpdateUsuarioRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	// Un no-admin solo puede tocar su propia cuenta.
	if GetRol(c) != entity.RolAdmin && GetUserID(c) != int64(id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "No tienes permiso para realizar esta acción"})
	}
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.Update(int64(id), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "rol inválido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
		}
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Usuario actualizado exitosamente"})
}

// Delete godoc
// @Summary      Desactivar cuenta (solo admin, borrado lógico)
// @Tags         usuarios
// @Produce      json
// @Security     Bearer
// @Param        id  path  int  true  "id de la cuenta"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	if err := h.uc.Desactivar(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Usuario desactivado exitosamente"})
}
