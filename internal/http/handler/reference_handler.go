package handler

import (
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

// ReferenceHandler serves the port and product lookup lists
type ReferenceHandler struct {
	portService    *service.PortService
	productService *service.ProductService
	logger         *zap.Logger
}

func NewReferenceHandler(portService *service.PortService, productService *service.ProductService, logger *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		portService:    portService,
		productService: productService,
		logger:         logger,
	}
}

// ListPorts godoc
// @Summary List ports
// @Tags Reference
// @Produce json
// @Param search query string false "Name or code search"
// @Success 200 {array} domain.PortDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ports [get]
func (h *ReferenceHandler) ListPorts(w http.ResponseWriter, r *http.Request) {
	ports, err := h.portService.List(r.Context(), referenceFilter(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "Port")
		return
	}
	respondJSON(w, http.StatusOK, ports)
}

// CreatePort godoc
// @Summary Create port
// @Tags Reference
// @Accept json
// @Produce json
// @Param request body domain.CreatePortRequest true "Port"
// @Success 201 {object} domain.PortDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ports [post]
func (h *ReferenceHandler) CreatePort(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePortRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	port, err := h.portService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Port")
		return
	}

	respondJSON(w, http.StatusCreated, port)
}

// UpdatePort godoc
// @Summary Update port
// @Tags Reference
// @Accept json
// @Produce json
// @Param id path int true "Port ID"
// @Param request body domain.UpdatePortRequest true "Fields to update"
// @Success 200 {object} domain.PortDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ports/{id} [put]
func (h *ReferenceHandler) UpdatePort(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid port ID")
		return
	}

	var req domain.UpdatePortRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	port, err := h.portService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Port")
		return
	}

	respondJSON(w, http.StatusOK, port)
}

// DeletePort godoc
// @Summary Delete port
// @Tags Reference
// @Produce json
// @Param id path int true "Port ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ports/{id} [delete]
func (h *ReferenceHandler) DeletePort(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid port ID")
		return
	}

	if err := h.portService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Port")
		return
	}

	deleted(w, "Port")
}

// ListProducts godoc
// @Summary List products
// @Tags Reference
// @Produce json
// @Param search query string false "Name search"
// @Param category query string false "Filter by category"
// @Success 200 {array} domain.ProductDTO
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /products [get]
func (h *ReferenceHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context(), referenceFilter(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "Product")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create product
// @Tags Reference
// @Accept json
// @Produce json
// @Param request body domain.CreateProductRequest true "Product"
// @Success 201 {object} domain.ProductDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /products [post]
func (h *ReferenceHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProductRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	product, err := h.productService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Product")
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update product
// @Tags Reference
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body domain.UpdateProductRequest true "Fields to update"
// @Success 200 {object} domain.ProductDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /products/{id} [put]
func (h *ReferenceHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req domain.UpdateProductRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	product, err := h.productService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Reference
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /products/{id} [delete]
func (h *ReferenceHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Product")
		return
	}

	deleted(w, "Product")
}
