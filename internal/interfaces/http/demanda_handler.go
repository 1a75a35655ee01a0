package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/demanda"
	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// DemandaHandler trata as requisições HTTP de demandas.
type DemandaHandler struct {
	uc *demanda.UseCase
}

// NewDemandaHandler constrói o handler.
func NewDemandaHandler(uc *demanda.UseCase) *DemandaHandler {
	return &DemandaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar demanda
// @Description  Demanda nasce pendente com atendido zero em todos os itens.
// @Tags         demandas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDemandaRequest  true  "setor_id, itens"
// @Success      201   {object}  dto.DemandaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/demandas [post]
func (h *DemandaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDemandaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	// Operador de setor só abre demanda para o próprio setor.
	if GetPerfil(c) == entity.PerfilOperadorSetor && in.SetorID != GetSetorID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operador só demanda para o próprio setor"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter demanda por ID
// @Tags         demandas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da demanda"
// @Success      200  {object}  dto.DemandaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/demandas/{id} [get]
func (h *DemandaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar demandas
// @Tags         demandas
// @Security     Bearer
// @Produce      json
// @Param        setor_id  query  string  false  "filtrar por setor"
// @Param        status    query  string  false  "pendente | parcial | atendido"
// @Param        limit     query  int     false  "máximo de itens (default 50)"
// @Param        offset    query  int     false  "deslocamento"
// @Success      200  {object}  dto.DemandaListResponse
// @Router       /api/demandas [get]
func (h *DemandaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	f := repository.DemandaFilter{
		SetorID: c.Query("setor_id"),
		Status:  c.Query("status"),
		Limit:   limit,
		Offset:  offset,
	}
	// Operador de setor só enxerga as demandas do próprio setor.
	if GetPerfil(c) == entity.PerfilOperadorSetor {
		f.SetorID = GetSetorID(c)
	}
	out, err := h.uc.List(f)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Atender godoc
// @Summary      Atender demanda a partir de uma origem
// @Description  Debita a origem, credita o setor e acumula o atendido dos
// @Description  itens em uma única transação. O status resultante é
// @Description  derivado no servidor.
// @Tags         demandas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID da demanda"
// @Param        body  body  dto.AtenderDemandaRequest  true  "origem e itens a entregar"
// @Success      200   {object}  dto.DemandaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/demandas/{id}/atender [put]
func (h *DemandaHandler) Atender(c *fiber.Ctx) error {
	var in dto.AtenderDemandaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Atender(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Origens godoc
// @Summary      Ranking de origens para uma demanda
// @Description  Ordena os locais com saldo por cobertura dos itens
// @Description  restantes (total coberto, itens com saldo, itens integrais).
// @Tags         demandas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da demanda"
// @Success      200  {object}  dto.OrigensDemandaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/demandas/{id}/origens [get]
func (h *DemandaHandler) Origens(c *fiber.Ctx) error {
	out, err := h.uc.Origens(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
