package handler

import (
	"fmt"
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type SamplingHandler struct {
	samplingService *service.SamplingService
	logger          *zap.Logger
}

func NewSamplingHandler(samplingService *service.SamplingService, logger *zap.Logger) *SamplingHandler {
	return &SamplingHandler{
		samplingService: samplingService,
		logger:          logger,
	}
}

// List godoc
// @Summary List sampling records of a port call
// @Tags Sampling
// @Produce json
// @Param ship_port_id query int true "Ship port ID"
// @Success 200 {array} domain.SamplingRecordDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sampling [get]
func (h *SamplingHandler) List(w http.ResponseWriter, r *http.Request) {
	shipPortID, ok, err := queryID(r, "ship_port_id")
	if err != nil || !ok {
		respondWithError(w, http.StatusBadRequest, "ship_port_id is required")
		return
	}

	records, err := h.samplingService.ListByShipPort(r.Context(), shipPortID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Sampling record")
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// Create godoc
// @Summary Create sampling record
// @Tags Sampling
// @Accept json
// @Produce json
// @Param request body domain.CreateSamplingRecordRequest true "Sample data"
// @Success 201 {object} domain.SamplingRecordDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sampling [post]
func (h *SamplingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSamplingRecordRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	record, err := h.samplingService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Sampling record")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/sampling/%d", record.ID))
	respondJSON(w, http.StatusCreated, record)
}

// Update godoc
// @Summary Update sampling record
// @Tags Sampling
// @Accept json
// @Produce json
// @Param id path int true "Sampling record ID"
// @Param request body domain.UpdateSamplingRecordRequest true "Fields to update"
// @Success 200 {object} domain.SamplingRecordDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sampling/{id} [put]
func (h *SamplingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid sampling record ID")
		return
	}

	var req domain.UpdateSamplingRecordRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	record, err := h.samplingService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Sampling record")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete sampling record
// @Tags Sampling
// @Produce json
// @Param id path int true "Sampling record ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /sampling/{id} [delete]
func (h *SamplingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid sampling record ID")
		return
	}

	if err := h.samplingService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Sampling record")
		return
	}

	deleted(w, "Sampling record")
}
