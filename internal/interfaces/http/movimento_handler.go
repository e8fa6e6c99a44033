package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/application/movimento"
)

// MovimentoHandler trata as requisições HTTP de entradas e saídas.
type MovimentoHandler struct {
	uc *movimento.UseCase
}

// NewMovimentoHandler constrói o handler.
func NewMovimentoHandler(uc *movimento.UseCase) *MovimentoHandler {
	return &MovimentoHandler{uc: uc}
}

// RegistrarEntrada registra uma entrada de estoque.
func (h *MovimentoHandler) RegistrarEntrada(c *fiber.Ctx) error {
	var in dto.RegistrarEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegistrarEntrada(in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarSaida registra uma saída de estoque. Saída acima do saldo
// conhecido responde 409 até o chamador repetir com confirmar_sem_saldo.
func (h *MovimentoHandler) RegistrarSaida(c *fiber.Ctx) error {
	var in dto.RegistrarSaidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegistrarSaida(in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarEntradas devolve os eventos de entrada na ordem da planilha.
func (h *MovimentoHandler) ListarEntradas(c *fiber.Ctx) error {
	out, err := h.uc.ListarEntradas()
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// ListarSaidas devolve os eventos de saída na ordem da planilha.
func (h *MovimentoHandler) ListarSaidas(c *fiber.Ctx) error {
	out, err := h.uc.ListarSaidas()
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}
