package handler

import (
	"fmt"
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type ShipHandler struct {
	shipService *service.ShipService
	logger      *zap.Logger
}

func NewShipHandler(shipService *service.ShipService, logger *zap.Logger) *ShipHandler {
	return &ShipHandler{
		shipService: shipService,
		logger:      logger,
	}
}

// List godoc
// @Summary List ships
// @Description List ships by creation time, optionally for one order
// @Tags Ships
// @Produce json
// @Param order_id query int false "Order ID"
// @Success 200 {array} domain.ShipDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ships [get]
func (h *ShipHandler) List(w http.ResponseWriter, r *http.Request) {
	orderID, ok, err := queryID(r, "order_id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order_id")
		return
	}

	var filter *int64
	if ok {
		filter = &orderID
	}
	ships, err := h.shipService.List(r.Context(), filter)
	if err != nil {
		respondServiceError(w, h.logger, err, "Ship")
		return
	}

	respondJSON(w, http.StatusOK, ships)
}

// GetByID godoc
// @Summary Get ship
// @Description Get a ship with its port calls
// @Tags Ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} domain.ShipDetailDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ships/{id} [get]
func (h *ShipHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ship ID")
		return
	}

	ship, err := h.shipService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Ship")
		return
	}

	respondJSON(w, http.StatusOK, ship)
}

// Create godoc
// @Summary Create ship
// @Description Add a ship, with optional port calls, to an existing order
// @Tags Ships
// @Accept json
// @Produce json
// @Param request body domain.CreateShipRequest true "Ship data"
// @Success 201 {object} domain.ShipDetailDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ships [post]
func (h *ShipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateShipRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ship, err := h.shipService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Ship")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/ships/%d", ship.ID))
	respondJSON(w, http.StatusCreated, ship)
}

// Update godoc
// @Summary Update ship
// @Tags Ships
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param request body domain.UpdateShipRequest true "Fields to update"
// @Success 200 {object} domain.ShipDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ships/{id} [put]
func (h *ShipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ship ID")
		return
	}

	var req domain.UpdateShipRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ship, err := h.shipService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Ship")
		return
	}

	respondJSON(w, http.StatusOK, ship)
}

// Delete godoc
// @Summary Delete ship
// @Description Delete a ship with its port calls and their records
// @Tags Ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ships/{id} [delete]
func (h *ShipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ship ID")
		return
	}

	if err := h.shipService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Ship")
		return
	}

	deleted(w, "Ship")
}
