package handler

import (
	"fmt"
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type TimelogHandler struct {
	timelogService  *service.TimelogService
	activityService *service.TimelogActivityService
	logger          *zap.Logger
}

func NewTimelogHandler(timelogService *service.TimelogService, activityService *service.TimelogActivityService, logger *zap.Logger) *TimelogHandler {
	return &TimelogHandler{
		timelogService:  timelogService,
		activityService: activityService,
		logger:          logger,
	}
}

// List godoc
// @Summary List timelog entries
// @Description List entries of a port call or of a whole order, ordered by start time
// @Tags Timelog
// @Produce json
// @Param ship_port_id query int false "Ship port ID"
// @Param order_id query int false "Order ID"
// @Success 200 {array} domain.TimelogEntryDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /timelog [get]
func (h *TimelogHandler) List(w http.ResponseWriter, r *http.Request) {
	shipPortID, _, err := queryID(r, "ship_port_id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ship_port_id")
		return
	}
	orderID, _, err := queryID(r, "order_id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order_id")
		return
	}

	entries, err := h.timelogService.List(r.Context(), repository.TimelogFilter{
		ShipPortID: shipPortID,
		OrderID:    orderID,
	})
	if err != nil {
		respondServiceError(w, h.logger, err, "Timelog entry")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// Create godoc
// @Summary Create timelog entry
// @Description Record an activity at a port call. order_id is derived from the port call when omitted.
// @Tags Timelog
// @Accept json
// @Produce json
// @Param request body domain.CreateTimelogEntryRequest true "Timelog entry"
// @Success 201 {object} domain.TimelogEntryDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /timelog [post]
func (h *TimelogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTimelogEntryRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	entry, err := h.timelogService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Timelog entry")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/timelog/%d", entry.ID))
	respondJSON(w, http.StatusCreated, entry)
}

// Update godoc
// @Summary Update timelog entry
// @Tags Timelog
// @Accept json
// @Produce json
// @Param id path int true "Timelog entry ID"
// @Param request body domain.UpdateTimelogEntryRequest true "Fields to update"
// @Success 200 {object} domain.TimelogEntryDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /timelog/{id} [put]
func (h *TimelogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid timelog entry ID")
		return
	}

	var req domain.UpdateTimelogEntryRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	entry, err := h.timelogService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Timelog entry")
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete timelog entry
// @Tags Timelog
// @Produce json
// @Param id path int true "Timelog entry ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /timelog/{id} [delete]
func (h *TimelogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid timelog entry ID")
		return
	}

	if err := h.timelogService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Timelog entry")
		return
	}

	deleted(w, "Timelog entry")
}

// ListActivities godoc
// @Summary List timelog activities
// @Tags Timelog
// @Produce json
// @Param search query string false "Name search"
// @Param category query string false "Filter by category"
// @Success 200 {array} domain.TimelogActivityDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /timelog/activities [get]
func (h *TimelogHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.List(r.Context(), referenceFilter(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "Timelog activity")
		return
	}
	respondJSON(w, http.StatusOK, activities)
}

// CreateActivity godoc
// @Summary Create timelog activity
// @Description Names are unique; a duplicate is answered with a conflict error
// @Tags Timelog
// @Accept json
// @Produce json
// @Param request body domain.CreateTimelogActivityRequest true "Activity"
// @Success 201 {object} domain.TimelogActivityDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /timelog/activities [post]
func (h *TimelogHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTimelogActivityRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	activity, err := h.activityService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Timelog activity")
		return
	}

	respondJSON(w, http.StatusCreated, activity)
}

// UpdateActivity godoc
// @Summary Update timelog activity
// @Tags Timelog
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param request body domain.UpdateTimelogActivityRequest true "Fields to update"
// @Success 200 {object} domain.TimelogActivityDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /timelog/activities/{id} [put]
func (h *TimelogHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	var req domain.UpdateTimelogActivityRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	activity, err := h.activityService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Timelog activity")
		return
	}

	respondJSON(w, http.StatusOK, activity)
}

// DeleteActivity godoc
// @Summary Delete timelog activity
// @Tags Timelog
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /timelog/activities/{id} [delete]
func (h *TimelogHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	if err := h.activityService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Timelog activity")
		return
	}

	deleted(w, "Timelog activity")
}
