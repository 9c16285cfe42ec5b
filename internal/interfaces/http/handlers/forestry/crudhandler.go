// Package forestry serves the forestry collections over HTTP.
package forestry

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"forestdash/internal/application/forestry/usecases"
	"forestdash/internal/shared/constants"
	"forestdash/internal/shared/logger"
	"forestdash/internal/shared/utils"
)

// CRUDHandler serves list, get, create and update for one collection.
// C is the create request body, P the partial update body and E the entity.
type CRUDHandler[C, P, E any] struct {
	entity   string
	createUC usecases.CreateExecutor[C, E]
	getUC    usecases.GetExecutor[E]
	updateUC usecases.UpdateExecutor[P, E]
	listUC   usecases.ListExecutor[E]
	logger   logger.Interface
}

func NewCRUDHandler[C, P, E any](
	entity string,
	createUC usecases.CreateExecutor[C, E],
	getUC usecases.GetExecutor[E],
	updateUC usecases.UpdateExecutor[P, E],
	listUC usecases.ListExecutor[E],
	logger logger.Interface,
) *CRUDHandler[C, P, E] {
	return &CRUDHandler[C, P, E]{
		entity:   entity,
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// FromUseCases builds a handler over an entity's use case set.
func FromUseCases[C, P, E any](entity string, set *usecases.EntityUseCases[C, P, E], logger logger.Interface) *CRUDHandler[C, P, E] {
	return NewCRUDHandler[C, P, E](entity, set.Create, set.Get, set.Update, set.List, logger)
}

// List handles GET /{collection}
func (h *CRUDHandler[C, P, E]) List(c *gin.Context) {
	items, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Get handles GET /{collection}/:id
func (h *CRUDHandler[C, P, E]) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, constants.ParamID, h.entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", item)
}

// Create handles POST /{collection}
func (h *CRUDHandler[C, P, E]) Create(c *gin.Context) {
	var req C
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body", "entity", h.entity, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, item, fmt.Sprintf("%s created successfully", h.entity))
}

// Update handles PUT /{collection}/:id
func (h *CRUDHandler[C, P, E]) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, constants.ParamID, h.entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var patch P
	if err := utils.BindPatchJSON(c, &patch); err != nil {
		h.logger.Warnw("invalid update body", "entity", h.entity, "id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.updateUC.Execute(c.Request.Context(), id, patch)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, fmt.Sprintf("%s updated successfully", h.entity), item)
}
