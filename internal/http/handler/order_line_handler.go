package handler

import (
	"fmt"
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type OrderLineHandler struct {
	orderLineService *service.OrderLineService
	logger           *zap.Logger
}

func NewOrderLineHandler(orderLineService *service.OrderLineService, logger *zap.Logger) *OrderLineHandler {
	return &OrderLineHandler{
		orderLineService: orderLineService,
		logger:           logger,
	}
}

// List godoc
// @Summary List order lines of a port call
// @Tags OrderLines
// @Produce json
// @Param ship_port_id query int true "Ship port ID"
// @Success 200 {array} domain.OrderLineDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /order-lines [get]
func (h *OrderLineHandler) List(w http.ResponseWriter, r *http.Request) {
	shipPortID, ok, err := queryID(r, "ship_port_id")
	if err != nil || !ok {
		respondWithError(w, http.StatusBadRequest, "ship_port_id is required")
		return
	}

	lines, err := h.orderLineService.ListByShipPort(r.Context(), shipPortID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Order line")
		return
	}

	respondJSON(w, http.StatusOK, lines)
}

// GetByID godoc
// @Summary Get order line
// @Tags OrderLines
// @Produce json
// @Param id path int true "Order line ID"
// @Success 200 {object} domain.OrderLineDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /order-lines/{id} [get]
func (h *OrderLineHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order line ID")
		return
	}

	line, err := h.orderLineService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Order line")
		return
	}

	respondJSON(w, http.StatusOK, line)
}

// Create godoc
// @Summary Create order line
// @Description Add a cargo or service line to a port call. total_price defaults to quantity times unit_price.
// @Tags OrderLines
// @Accept json
// @Produce json
// @Param request body domain.CreateOrderLineRequest true "Order line data"
// @Success 201 {object} domain.OrderLineDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /order-lines [post]
func (h *OrderLineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderLineRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	line, err := h.orderLineService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Order line")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/order-lines/%d", line.ID))
	respondJSON(w, http.StatusCreated, line)
}

// Update godoc
// @Summary Update order line
// @Tags OrderLines
// @Accept json
// @Produce json
// @Param id path int true "Order line ID"
// @Param request body domain.UpdateOrderLineRequest true "Fields to update"
// @Success 200 {object} domain.OrderLineDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /order-lines/{id} [put]
func (h *OrderLineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order line ID")
		return
	}

	var req domain.UpdateOrderLineRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	line, err := h.orderLineService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Order line")
		return
	}

	respondJSON(w, http.StatusOK, line)
}

// Delete godoc
// @Summary Delete order line
// @Tags OrderLines
// @Produce json
// @Param id path int true "Order line ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /order-lines/{id} [delete]
func (h *OrderLineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order line ID")
		return
	}

	if err := h.orderLineService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Order line")
		return
	}

	deleted(w, "Order line")
}
