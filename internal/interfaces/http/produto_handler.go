package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/controle-estoque/internal/application/cadastro"
	"github.com/estoquelab/controle-estoque/internal/application/dto"
)

// ProdutoHandler trata as requisições HTTP de produto.
type ProdutoHandler struct {
	uc *cadastro.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *cadastro.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Cadastrar registra um produto novo; o código é gerado pelo servidor.
func (h *ProdutoHandler) Cadastrar(c *fiber.Ctx) error {
	var in dto.CadastrarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Cadastrar(in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCodigo devolve um produto pelo código.
func (h *ProdutoHandler) GetByCodigo(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	out, err := h.uc.GetByCodigo(codigo)
	if err != nil {
		return erroHTTP(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// Listar devolve todos os produtos na ordem da planilha.
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}
