package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"choreboard/internal/service"
)

type RoomHandler struct {
	svc    service.RoomService
	logger *zap.Logger
}

func NewRoomHandler(s service.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{svc: s, logger: logger}
}

// ListRooms handles GET /rooms
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "room not found", "failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}
