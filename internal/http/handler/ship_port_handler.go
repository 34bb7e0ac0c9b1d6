package handler

import (
	"fmt"
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type ShipPortHandler struct {
	shipPortService *service.ShipPortService
	logger          *zap.Logger
}

func NewShipPortHandler(shipPortService *service.ShipPortService, logger *zap.Logger) *ShipPortHandler {
	return &ShipPortHandler{
		shipPortService: shipPortService,
		logger:          logger,
	}
}

// List godoc
// @Summary List port calls of a ship
// @Description List the port calls of a ship by ascending sequence, with record counts
// @Tags ShipPorts
// @Produce json
// @Param ship_id query int true "Ship ID"
// @Success 200 {array} domain.ShipPortDetailDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ship-ports [get]
func (h *ShipPortHandler) List(w http.ResponseWriter, r *http.Request) {
	shipID, ok, err := queryID(r, "ship_id")
	if err != nil || !ok {
		respondWithError(w, http.StatusBadRequest, "ship_id is required")
		return
	}

	ports, err := h.shipPortService.ListByShip(r.Context(), shipID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Ship port")
		return
	}

	respondJSON(w, http.StatusOK, ports)
}

// GetByID godoc
// @Summary Get port call
// @Tags ShipPorts
// @Produce json
// @Param id path int true "Ship port ID"
// @Success 200 {object} domain.ShipPortDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ship-ports/{id} [get]
func (h *ShipPortHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ship port ID")
		return
	}

	port, err := h.shipPortService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Ship port")
		return
	}

	respondJSON(w, http.StatusOK, port)
}

// Create godoc
// @Summary Create port call
// @Tags ShipPorts
// @Accept json
// @Produce json
// @Param request body domain.CreateShipPortRequest true "Port call data"
// @Success 201 {object} domain.ShipPortDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ship-ports [post]
func (h *ShipPortHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateShipPortRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	port, err := h.shipPortService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Ship port")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/ship-ports/%d", port.ID))
	respondJSON(w, http.StatusCreated, port)
}

// Update godoc
// @Summary Update port call
// @Tags ShipPorts
// @Accept json
// @Produce json
// @Param id path int true "Ship port ID"
// @Param request body domain.UpdateShipPortRequest true "Fields to update"
// @Success 200 {object} domain.ShipPortDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ship-ports/{id} [put]
func (h *ShipPortHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ship port ID")
		return
	}

	var req domain.UpdateShipPortRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	port, err := h.shipPortService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Ship port")
		return
	}

	respondJSON(w, http.StatusOK, port)
}

// Delete godoc
// @Summary Delete port call
// @Description Delete a port call with its order lines, timelog entries, samples and remarks
// @Tags ShipPorts
// @Produce json
// @Param id path int true "Ship port ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ship-ports/{id} [delete]
func (h *ShipPortHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ship port ID")
		return
	}

	if err := h.shipPortService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Ship port")
		return
	}

	deleted(w, "Ship port")
}
