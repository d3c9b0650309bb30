package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-api/internal/application/dto"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	"github.com/tu-usuario/taller-api/internal/domain"
	"github.com/tu-usuario/taller-api/internal/domain/entity"
)

// ComprobanteGenerator contrato mínimo del generador de PDF de órdenes.
// Lo implementa pdf.MarotoComprobanteGenerator; la interfaz evita acoplar el
// handler a Maroto.
type ComprobanteGenerator interface {
	GenerateComprobantePDF(ctx context.Context, orden *entity.ReparacionDetalle) ([]byte, error)
}

// ReparacionHandler maneja las peticiones HTTP de órdenes de trabajo (protegido).
type ReparacionHandler struct {
	uc  *usecase.ReparacionUseCase
	pdf ComprobanteGenerator
}

// NewReparacionHandler construye el handler.
func NewReparacionHandler(uc *usecase.ReparacionUseCase, pdf ComprobanteGenerator) *ReparacionHandler {
	return &ReparacionHandler{uc: uc, pdf: pdf}
}

// List GET /api/reparaciones
func (h *ReparacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(out)
}

// Create POST /api/reparaciones
func (h *ReparacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReparacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	id, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "vehiculo_id, mecanico_id y fecha_ingreso son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Mensaje: "Reparación creada exitosamente"})
}

// Update PUT /api/reparaciones/:id
func (h *ReparacionHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	var in dto.UpdateReparacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.Update(int64(id), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reparación no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "fecha inválida"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
		}
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Reparación actualizada exitosamente"})
}

// Delete DELETE /api/reparaciones/:id
func (h *ReparacionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reparación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Reparación eliminada exitosamente"})
}

// Confirmar POST /api/reparaciones/:id/confirmar
// Completa la orden y estampa la fecha de salida sin mirar el estado previo.
func (h *ReparacionHandler) Confirmar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	if err := h.uc.Confirmar(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reparación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Reparación confirmada como completada"})
}

// ComprobantePDF GET /api/reparaciones/:id/pdf
// Devuelve el comprobante imprimible de la orden.
func (h *ReparacionHandler) ComprobantePDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	det, err := h.uc.GetDetalleEntity(int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	if det == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reparación no encontrada"})
	}
	bytes, err := h.pdf.GenerateComprobantePDF(c.Context(), det)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="orden-%d.pdf"`, id))
	return c.Send(bytes)
}
