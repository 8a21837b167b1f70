package handler

import (
	partnerapp "github.com/orderdesk/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// PartnerHandler handles partner-related API endpoints
type PartnerHandler struct {
	BaseHandler
	partnerService *partnerapp.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *partnerapp.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// RegisterRoutes registers partner routes on the given group
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/partners")
	partners.GET("", h.List)
	partners.POST("", h.Create)
	partners.GET("/:id", h.GetByID)
	partners.PUT("/:id", h.Update)
	partners.DELETE("/:id", h.Delete)
}

// Create handles POST /partners
func (h *PartnerHandler) Create(c *gin.Context) {
	var req partnerapp.CreatePartnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	partner, err := h.partnerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, partner)
}

// GetByID handles GET /partners/:id
func (h *PartnerHandler) GetByID(c *gin.Context) {
	partnerID, ok := h.ParseID(c, "Partner")
	if !ok {
		return
	}

	partner, err := h.partnerService.GetByID(c.Request.Context(), partnerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, partner)
}

// List handles GET /partners
func (h *PartnerHandler) List(c *gin.Context) {
	var filter partnerapp.PartnerListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	partners, total, err := h.partnerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	h.SuccessList(c, partners, total, page, pageSize)
}

// Update handles PUT /partners/:id
func (h *PartnerHandler) Update(c *gin.Context) {
	partnerID, ok := h.ParseID(c, "Partner")
	if !ok {
		return
	}

	var req partnerapp.UpdatePartnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	partner, err := h.partnerService.Update(c.Request.Context(), partnerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, partner)
}

// Delete handles DELETE /partners/:id
func (h *PartnerHandler) Delete(c *gin.Context) {
	partnerID, ok := h.ParseID(c, "Partner")
	if !ok {
		return
	}

	if err := h.partnerService.Delete(c.Request.Context(), partnerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
