package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/controle-estoque/internal/application/analytics"
)

// AnalyticsHandler trata as consultas de indicadores.
type AnalyticsHandler struct {
	uc *analytics.ReportUseCase
}

// NewAnalyticsHandler constrói o handler.
func NewAnalyticsHandler(uc *analytics.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Resumo devolve o resumo de KPIs calculado sobre o modelo estrela.
func (h *AnalyticsHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.Resumo()
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}
