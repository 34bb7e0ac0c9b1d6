package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

// AuditHandler handles audit log related HTTP requests
type AuditHandler struct {
	auditService *service.AuditLogService
	logger       *zap.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditLogService, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// List godoc
// @Summary List audit logs
// @Description Returns a paginated list of recorded mutating requests, newest first
// @Tags Audit
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 20, max: 100)"
// @Param user_id query int false "Filter by user ID"
// @Param entity_type query string false "Filter by entity type, e.g. orders"
// @Param method query string false "Filter by HTTP method"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.AuditLogDTO}
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /audit [get]
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := repository.AuditLogFilter{
		EntityType: q.Get("entity_type"),
		Method:     strings.ToUpper(q.Get("method")),
	}
	userID, ok, err := queryID(r, "user_id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user_id")
		return
	}
	if ok {
		filter.UserID = &userID
	}

	result, err := h.auditService.List(r.Context(), filter, page, limit)
	if err != nil {
		h.logger.Error("failed to list audit logs", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list audit logs")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
