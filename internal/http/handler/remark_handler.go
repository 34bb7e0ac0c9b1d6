package handler

import (
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type RemarkHandler struct {
	remarkService   *service.RemarkService
	templateService *service.RemarksTemplateService
	logger          *zap.Logger
}

func NewRemarkHandler(remarkService *service.RemarkService, templateService *service.RemarksTemplateService, logger *zap.Logger) *RemarkHandler {
	return &RemarkHandler{
		remarkService:   remarkService,
		templateService: templateService,
		logger:          logger,
	}
}

// List godoc
// @Summary List remarks of a port call
// @Tags Remarks
// @Produce json
// @Param ship_port_id query int true "Ship port ID"
// @Success 200 {array} domain.RemarkDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /remarks [get]
func (h *RemarkHandler) List(w http.ResponseWriter, r *http.Request) {
	shipPortID, ok, err := queryID(r, "ship_port_id")
	if err != nil || !ok {
		respondWithError(w, http.StatusBadRequest, "ship_port_id is required")
		return
	}

	remarks, err := h.remarkService.ListByShipPort(r.Context(), shipPortID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Remark")
		return
	}

	respondJSON(w, http.StatusOK, remarks)
}

// Create godoc
// @Summary Create remark
// @Tags Remarks
// @Accept json
// @Produce json
// @Param request body domain.CreateRemarkRequest true "Remark"
// @Success 201 {object} domain.RemarkDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /remarks [post]
func (h *RemarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRemarkRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	remark, err := h.remarkService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Remark")
		return
	}

	respondJSON(w, http.StatusCreated, remark)
}

// Update godoc
// @Summary Update remark
// @Tags Remarks
// @Accept json
// @Produce json
// @Param id path int true "Remark ID"
// @Param request body domain.UpdateRemarkRequest true "Fields to update"
// @Success 200 {object} domain.RemarkDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /remarks/{id} [put]
func (h *RemarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid remark ID")
		return
	}

	var req domain.UpdateRemarkRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	remark, err := h.remarkService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Remark")
		return
	}

	respondJSON(w, http.StatusOK, remark)
}

// Delete godoc
// @Summary Delete remark
// @Tags Remarks
// @Produce json
// @Param id path int true "Remark ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /remarks/{id} [delete]
func (h *RemarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid remark ID")
		return
	}

	if err := h.remarkService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Remark")
		return
	}

	deleted(w, "Remark")
}

// ListTemplates godoc
// @Summary List remarks templates
// @Tags Remarks
// @Produce json
// @Param search query string false "Title search"
// @Param category query string false "Filter by category"
// @Param active query bool false "Only active templates"
// @Success 200 {array} domain.RemarksTemplateDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /remarks/templates [get]
func (h *RemarkHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateService.List(r.Context(), referenceFilter(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "Remarks template")
		return
	}
	respondJSON(w, http.StatusOK, templates)
}

// CreateTemplate godoc
// @Summary Create remarks template
// @Tags Remarks
// @Accept json
// @Produce json
// @Param request body domain.CreateRemarksTemplateRequest true "Template"
// @Success 201 {object} domain.RemarksTemplateDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /remarks/templates [post]
func (h *RemarkHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRemarksTemplateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tmpl, err := h.templateService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Remarks template")
		return
	}

	respondJSON(w, http.StatusCreated, tmpl)
}

// UpdateTemplate godoc
// @Summary Update remarks template
// @Tags Remarks
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body domain.UpdateRemarksTemplateRequest true "Fields to update"
// @Success 200 {object} domain.RemarksTemplateDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /remarks/templates/{id} [put]
func (h *RemarkHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	var req domain.UpdateRemarksTemplateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tmpl, err := h.templateService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Remarks template")
		return
	}

	respondJSON(w, http.StatusOK, tmpl)
}

// DeleteTemplate godoc
// @Summary Delete remarks template
// @Tags Remarks
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /remarks/templates/{id} [delete]
func (h *RemarkHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := h.templateService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Remarks template")
		return
	}

	deleted(w, "Remarks template")
}
