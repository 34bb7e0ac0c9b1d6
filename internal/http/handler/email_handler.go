package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type EmailHandler struct {
	notificationService *service.NotificationService
	logger              *zap.Logger
}

func NewEmailHandler(notificationService *service.NotificationService, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// SendOrderConfirmation godoc
// @Summary Send order confirmation
// @Description Render the confirmation for an order and mail it to the client email. Delivery is attempted once.
// @Tags Email
// @Accept json
// @Produce json
// @Param orderId path int true "Order ID"
// @Param request body domain.SendConfirmationRequest false "Optional custom message"
// @Success 200 {object} domain.SendConfirmationResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError "Mail delivery failed"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /email/order-confirmation/{orderId} [post]
func (h *EmailHandler) SendOrderConfirmation(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(r, "orderId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	// The body is optional
	var req domain.SendConfirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.notificationService.SendOrderConfirmation(r.Context(), orderID, req.CustomMessage)
	if err != nil {
		if errors.Is(err, service.ErrDeliveryFailed) {
			h.logger.Error("order confirmation delivery failed", zap.Int64("order_id", orderID), zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to send order confirmation")
			return
		}
		respondServiceError(w, h.logger, err, "Order")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
