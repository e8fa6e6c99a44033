package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/controle-estoque/internal/application/consulta"
)

// EstoqueHandler trata as consultas das abas derivadas de saldo.
type EstoqueHandler struct {
	uc *consulta.UseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *consulta.UseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Saldos devolve as linhas de Estoque Atual.
func (h *EstoqueHandler) Saldos(c *fiber.Ctx) error {
	out, err := h.uc.Saldos()
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Criticos devolve as linhas de Estoque Crítico.
func (h *EstoqueHandler) Criticos(c *fiber.Ctx) error {
	out, err := h.uc.Criticos()
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}
