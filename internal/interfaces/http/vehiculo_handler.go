package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/repository"
)

// VehiculoHandler maneja las peticiones HTTP de vehículos (protegido).
type VehiculoHandler struct {
	uc *usecase.VehiculoUseCase
}

// NewVehiculoHandler construye el handler.
func NewVehiculoHandler(uc *usecase.VehiculoUseCase) *VehiculoHandler {
	return &VehiculoHandler{uc: uc}
}

// List GET /api/vehiculos?page=1&limit=10&search=abc&marca=Toyota&modelo=Yaris
func (h *VehiculoHandler) List(c *fiber.Ctx) error {
	filter := repository.VehiculoFilter{
		Search: c.Query("search"),
		Marca:  c.Query("marca"),
		Modelo: c.Query("modelo"),
	}
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.List(filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(out)
}

// Create POST /api/vehiculos
func (h *VehiculoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	id, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cliente_id y patente son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Mensaje: "Vehículo creado exitosamente"})
}

// Update PUT /api/vehiculos/:id
func (h *VehiculoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	var in dto.UpdateVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.Update(int64(id), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Vehículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Vehículo actualizado exitosamente"})
}

// Delete DELETE /api/vehiculos/:id
func (h *VehiculoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Vehículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Vehículo eliminado exitosamente"})
}
