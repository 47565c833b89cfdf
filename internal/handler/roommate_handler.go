package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dtos "choreboard/internal/model/DTOs"
	"choreboard/internal/service"
)

type RoommateHandler struct {
	svc    service.RoommateService
	logger *zap.Logger
}

func NewRoommateHandler(s service.RoommateService, logger *zap.Logger) *RoommateHandler {
	return &RoommateHandler{svc: s, logger: logger}
}

// ListRoommates handles GET /roommates
func (h *RoommateHandler) ListRoommates(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "roommate not found", "failed to list roommates")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateRoommate handles POST /roommates
func (h *RoommateHandler) CreateRoommate(c *gin.Context) {
	var dto dtos.RoommateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindMessage(err, "name and email are required")})
		return
	}

	rm, err := h.svc.Create(c.Request.Context(), dto.ToModel(0))
	if err != nil {
		respondError(c, h.logger, err, "roommate not found", "failed to create roommate")
		return
	}
	c.JSON(http.StatusCreated, rm)
}

// UpdateRoommate handles PUT /roommates/:id
func (h *RoommateHandler) UpdateRoommate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto dtos.RoommateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindMessage(err, "name and email are required")})
		return
	}

	rm, err := h.svc.Update(c.Request.Context(), dto.ToModel(id))
	if err != nil {
		respondError(c, h.logger, err, "roommate not found", "failed to update roommate")
		return
	}
	c.JSON(http.StatusOK, rm)
}

// DeleteRoommate handles DELETE /roommates/:id
func (h *RoommateHandler) DeleteRoommate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	unassigned, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "roommate not found", "failed to delete roommate")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Roommate deleted successfully",
		"tasks_unassigned": unassigned,
	})
}
