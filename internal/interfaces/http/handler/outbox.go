package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopcore/catalog/internal/application/event"
)

// OutboxHandler exposes the outbox read surface for operators
type OutboxHandler struct {
	BaseHandler
	outboxService *event.OutboxService
}

// NewOutboxHandler creates a new outbox handler
func NewOutboxHandler(outboxService *event.OutboxService) *OutboxHandler {
	return &OutboxHandler{
		outboxService: outboxService,
	}
}

// List godoc
// @Summary      List outbox events by status
// @Tags         outbox
// @Produce      json
// @Param        status query string false "Status filter" Enums(PENDING, PUBLISHED, FAILED) default(PENDING)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=event.OutboxListResult}
// @Router       /system/outbox [get]
func (h *OutboxHandler) List(c *gin.Context) {
	var filter event.OutboxFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	result, err := h.outboxService.GetByStatus(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetPending godoc
// @Summary      List the oldest pending outbox events
// @Tags         outbox
// @Produce      json
// @Param        limit query int false "Maximum events to return" default(100)
// @Success      200 {object} dto.Response{data=[]event.OutboxEventDTO}
// @Router       /system/outbox/pending [get]
func (h *OutboxHandler) GetPending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	events, err := h.outboxService.GetPending(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, events)
}

// GetEvent godoc
// @Summary      Get an outbox event by ID
// @Tags         outbox
// @Produce      json
// @Param        id path string true "Outbox event ID" format(uuid)
// @Success      200 {object} dto.Response{data=event.OutboxEventDTO}
// @Router       /system/outbox/{id} [get]
func (h *OutboxHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID")
		return
	}

	outboxEvent, err := h.outboxService.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, outboxEvent)
}

// GetByAggregate godoc
// @Summary      List outbox events for an aggregate
// @Tags         outbox
// @Produce      json
// @Param        id path string true "Aggregate ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]event.OutboxEventDTO}
// @Router       /system/outbox/aggregate/{id} [get]
func (h *OutboxHandler) GetByAggregate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid aggregate ID")
		return
	}

	events, err := h.outboxService.GetByAggregate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, events)
}

// GetStats godoc
// @Summary      Get outbox statistics
// @Tags         outbox
// @Produce      json
// @Success      200 {object} dto.Response{data=event.OutboxStatsDTO}
// @Router       /system/outbox/stats [get]
func (h *OutboxHandler) GetStats(c *gin.Context) {
	stats, err := h.outboxService.GetStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
