package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// List godoc
// @Summary List orders
// @Description Get a paginated list of orders. Search matches order number, client name and vessel names.
// @Tags Orders
// @Accept json
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, in_progress, completed, cancelled)
// @Param survey_type query string false "Filter by survey type"
// @Param search query string false "Substring search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} domain.OrderListResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.orderService.List(r.Context(), domain.OrderListFilter{
		Status:     domain.OrderStatus(q.Get("status")),
		SurveyType: q.Get("survey_type"),
		Search:     strings.TrimSpace(q.Get("search")),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		respondServiceError(w, h.logger, err, "Order")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get order
// @Description Get an order with its ships, port calls and per-port record counts
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} domain.OrderDetailDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// Create godoc
// @Summary Create order
// @Description Create an order together with its ships and port calls in one transaction
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body domain.CreateOrderRequest true "Order with ships"
// @Success 201 {object} domain.CreateOrderResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Order")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%d", result.OrderID))
	respondJSON(w, http.StatusCreated, result)
}

// Update godoc
// @Summary Update order
// @Description Update the fields present in the body. Stored totals are not recalculated.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body domain.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} domain.OrderDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req domain.UpdateOrderRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	order, err := h.orderService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// Delete godoc
// @Summary Delete order
// @Description Delete an order with its ships, port calls and their records
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Order")
		return
	}

	deleted(w, "Order")
}
