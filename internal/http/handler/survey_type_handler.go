package handler

import (
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type SurveyTypeHandler struct {
	surveyTypeService *service.SurveyTypeService
	logger            *zap.Logger
}

func NewSurveyTypeHandler(surveyTypeService *service.SurveyTypeService, logger *zap.Logger) *SurveyTypeHandler {
	return &SurveyTypeHandler{
		surveyTypeService: surveyTypeService,
		logger:            logger,
	}
}

// List godoc
// @Summary List survey types
// @Tags SurveyTypes
// @Produce json
// @Param search query string false "Name search"
// @Param active query bool false "Only active survey types"
// @Success 200 {array} domain.SurveyTypeDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /surveys/types [get]
func (h *SurveyTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.surveyTypeService.List(r.Context(), referenceFilter(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "Survey type")
		return
	}
	respondJSON(w, http.StatusOK, types)
}

// Create godoc
// @Summary Create survey type
// @Description Names are unique; a duplicate is answered with a conflict error
// @Tags SurveyTypes
// @Accept json
// @Produce json
// @Param request body domain.CreateSurveyTypeRequest true "Survey type"
// @Success 201 {object} domain.SurveyTypeDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /surveys/types [post]
func (h *SurveyTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSurveyTypeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	st, err := h.surveyTypeService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Survey type")
		return
	}

	respondJSON(w, http.StatusCreated, st)
}

// Update godoc
// @Summary Update survey type
// @Description A rename is applied to the orders that reference the old name
// @Tags SurveyTypes
// @Accept json
// @Produce json
// @Param id path int true "Survey type ID"
// @Param request body domain.UpdateSurveyTypeRequest true "Fields to update"
// @Success 200 {object} domain.SurveyTypeDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /surveys/types/{id} [put]
func (h *SurveyTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid survey type ID")
		return
	}

	var req domain.UpdateSurveyTypeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	st, err := h.surveyTypeService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Survey type")
		return
	}

	respondJSON(w, http.StatusOK, st)
}

// Delete godoc
// @Summary Delete survey type
// @Description Rejected with a conflict error while any order references the survey type
// @Tags SurveyTypes
// @Produce json
// @Param id path int true "Survey type ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /surveys/types/{id} [delete]
func (h *SurveyTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid survey type ID")
		return
	}

	if err := h.surveyTypeService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Survey type")
		return
	}

	deleted(w, "Survey type")
}
