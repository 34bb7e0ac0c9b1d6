package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTOs for API responses. Entity fields use snake_case keys; timestamps
// are ISO 8601 strings.

type OrderDTO struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"order_number"`
	ClientName  string      `json:"client_name"`
	ClientEmail string      `json:"client_email,omitempty"`
	SurveyType  string      `json:"survey_type"`
	Status      OrderStatus `json:"status"`
	TotalShips  int         `json:"total_ships"`
	TotalPorts  int         `json:"total_ports"`
	Remarks     string      `json:"remarks,omitempty"`
	CreatedBy   *int64      `json:"created_by,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// OrderDetailDTO is the full order aggregate
type OrderDetailDTO struct {
	OrderDTO
	CreatedByName string          `json:"created_by_name,omitempty"`
	Ships         []ShipDetailDTO `json:"ships"`
}

type ShipDTO struct {
	ID                int64  `json:"id"`
	OrderID           int64  `json:"order_id"`
	VesselName        string `json:"vessel_name"`
	VesselIMO         string `json:"vessel_imo,omitempty"`
	VesselFlag        string `json:"vessel_flag,omitempty"`
	ExpectedArrival   string `json:"expected_arrival,omitempty"`
	ExpectedDeparture string `json:"expected_departure,omitempty"`
	Status            string `json:"status"`
	Remarks           string `json:"remarks,omitempty"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// ShipDetailDTO is a ship with its port calls
type ShipDetailDTO struct {
	ShipDTO
	PortSummary string              `json:"port_summary,omitempty"`
	ShipPorts   []ShipPortDetailDTO `json:"ship_ports"`
}

type ShipPortDTO struct {
	ID              int64  `json:"id"`
	ShipID          int64  `json:"ship_id"`
	PortName        string `json:"port_name"`
	PortSequence    int    `json:"port_sequence"`
	Status          string `json:"status"`
	ActualArrival   string `json:"actual_arrival,omitempty"`
	ActualDeparture string `json:"actual_departure,omitempty"`
	Remarks         string `json:"remarks,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ShipPortDetailDTO adds child record counts to a port call
type ShipPortDetailDTO struct {
	ShipPortDTO
	OrderLinesCount int64 `json:"order_lines_count"`
	TimelogCount    int64 `json:"timelog_count"`
	SamplingCount   int64 `json:"sampling_count"`
}

type OrderLineDTO struct {
	ID          int64           `json:"id"`
	ShipPortID  int64           `json:"ship_port_id"`
	LineNumber  int             `json:"line_number"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CargoType   string          `json:"cargo_type,omitempty"`
	PackageType string          `json:"package_type,omitempty"`
	Weight      decimal.Decimal `json:"weight"`
	Volume      decimal.Decimal `json:"volume"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type TimelogEntryDTO struct {
	ID         int64  `json:"id"`
	ShipPortID int64  `json:"ship_port_id"`
	OrderID    *int64 `json:"order_id,omitempty"`
	Activity   string `json:"activity"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
	CreatedBy  *int64 `json:"created_by,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type SamplingRecordDTO struct {
	ID           int64  `json:"id"`
	ShipPortID   int64  `json:"ship_port_id"`
	SampleNumber string `json:"sample_number"`
	SampleType   string `json:"sample_type,omitempty"`
	Quantity     string `json:"quantity,omitempty"`
	Destination  string `json:"destination,omitempty"`
	SealNumber   string `json:"seal_number,omitempty"`
	Laboratory   string `json:"laboratory,omitempty"`
	AnalysisType string `json:"analysis_type,omitempty"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks,omitempty"`
	CreatedBy    *int64 `json:"created_by,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type RemarkDTO struct {
	ID         int64  `json:"id"`
	ShipPortID int64  `json:"ship_port_id"`
	TemplateID *int64 `json:"template_id,omitempty"`
	Content    string `json:"content"`
	CreatedBy  *int64 `json:"created_by,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type SurveyTypeDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type PortDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country,omitempty"`
	Code      string `json:"code,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ProductDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type TimelogActivityDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type RemarksTemplateDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type UserDTO struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	FullName string   `json:"full_name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Role     UserRole `json:"role"`
}

type AuditLogDTO struct {
	ID         int64  `json:"id"`
	UserID     *int64 `json:"user_id,omitempty"`
	UserName   string `json:"user_name,omitempty"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	StatusCode int    `json:"status_code"`
	EntityType string `json:"entity_type,omitempty"`
	EntityID   *int64 `json:"entity_id,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// ErrorResponse represents a plain API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// MessageResponse is returned by operations without an entity body
type MessageResponse struct {
	Message string `json:"message"`
}

// Pagination describes one page of a list
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// OrderListResponse is the body of GET /orders
type OrderListResponse struct {
	Orders     []OrderDTO `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// PaginatedResponse wraps other paged lists
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// CreateOrderResponse is the body of POST /orders
type CreateOrderResponse struct {
	Message     string `json:"message"`
	OrderID     int64  `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	TotalShips  int    `json:"totalShips"`
	TotalPorts  int    `json:"totalPorts"`
}

// DashboardStatsDTO summarises the store for the dashboard page
type DashboardStatsDTO struct {
	TotalOrders     int64                 `json:"total_orders"`
	OrdersByStatus  map[OrderStatus]int64 `json:"orders_by_status"`
	TotalShips      int64                 `json:"total_ships"`
	TotalShipPorts  int64                 `json:"total_ship_ports"`
	TotalSamples    int64                 `json:"total_samples"`
	TotalTimelogs   int64                 `json:"total_timelog_entries"`
	RecentOrders    []OrderDTO            `json:"recent_orders"`
	ActiveUsers     int64                 `json:"active_users"`
}

// Auth

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expires_at"`
	User      UserDTO `json:"user"`
}

type VerifyResponse struct {
	Valid bool    `json:"valid"`
	User  UserDTO `json:"user"`
}

// Email

type SendConfirmationRequest struct {
	CustomMessage string `json:"customMessage,omitempty" validate:"max=5000"`
}

type SendConfirmationResponse struct {
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
	ArchiveID string `json:"archiveId,omitempty"`
}

// Orders

type CreateOrderRequest struct {
	ClientName  string                   `json:"client_name" validate:"required,max=200"`
	ClientEmail string                   `json:"client_email,omitempty" validate:"omitempty,email,max=255"`
	SurveyType  string                   `json:"survey_type" validate:"required,max=200"`
	Remarks     string                   `json:"remarks,omitempty"`
	Ships       []CreateOrderShipRequest `json:"ships" validate:"required,min=1,dive"`
}

// CreateOrderShipRequest is a ship nested in an order create request
type CreateOrderShipRequest struct {
	VesselName        string                   `json:"vessel_name" validate:"required,max=200"`
	VesselIMO         string                   `json:"vessel_imo,omitempty" validate:"max=20"`
	VesselFlag        string                   `json:"vessel_flag,omitempty" validate:"max=100"`
	ExpectedArrival   *time.Time               `json:"expected_arrival,omitempty"`
	ExpectedDeparture *time.Time               `json:"expected_departure,omitempty"`
	Remarks           string                   `json:"remarks,omitempty"`
	Ports             []CreateOrderPortRequest `json:"ports,omitempty" validate:"dive"`
}

// CreateOrderPortRequest is a port call nested in a ship. Its sequence is
// the 1-based position in the list.
type CreateOrderPortRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Remarks string `json:"remarks,omitempty"`
}

type UpdateOrderRequest struct {
	ClientName  *string      `json:"client_name,omitempty" validate:"omitempty,min=1,max=200"`
	ClientEmail *string      `json:"client_email,omitempty" validate:"omitempty,max=255"`
	SurveyType  *string      `json:"survey_type,omitempty" validate:"omitempty,min=1,max=200"`
	Status      *OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Remarks     *string      `json:"remarks,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateOrderRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "client_name", r.ClientName)
	setString(c, "client_email", r.ClientEmail)
	setString(c, "survey_type", r.SurveyType)
	if r.Status != nil {
		c["status"] = *r.Status
	}
	setString(c, "remarks", r.Remarks)
	return c
}

// OrderListFilter holds the query parameters of GET /orders
type OrderListFilter struct {
	Status     OrderStatus
	SurveyType string
	Search     string
	Page       int
	Limit      int
}

// Ships

type CreateShipRequest struct {
	OrderID           int64                    `json:"order_id" validate:"required,gt=0"`
	VesselName        string                   `json:"vessel_name" validate:"required,max=200"`
	VesselIMO         string                   `json:"vessel_imo,omitempty" validate:"max=20"`
	VesselFlag        string                   `json:"vessel_flag,omitempty" validate:"max=100"`
	ExpectedArrival   *time.Time               `json:"expected_arrival,omitempty"`
	ExpectedDeparture *time.Time               `json:"expected_departure,omitempty"`
	Status            string                   `json:"status,omitempty" validate:"max=50"`
	Remarks           string                   `json:"remarks,omitempty"`
	Ports             []CreateOrderPortRequest `json:"ports,omitempty" validate:"dive"`
}

type UpdateShipRequest struct {
	VesselName        *string    `json:"vessel_name,omitempty" validate:"omitempty,min=1,max=200"`
	VesselIMO         *string    `json:"vessel_imo,omitempty" validate:"omitempty,max=20"`
	VesselFlag        *string    `json:"vessel_flag,omitempty" validate:"omitempty,max=100"`
	ExpectedArrival   *time.Time `json:"expected_arrival,omitempty"`
	ExpectedDeparture *time.Time `json:"expected_departure,omitempty"`
	Status            *string    `json:"status,omitempty" validate:"omitempty,max=50"`
	Remarks           *string    `json:"remarks,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateShipRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "vessel_name", r.VesselName)
	setString(c, "vessel_imo", r.VesselIMO)
	setString(c, "vessel_flag", r.VesselFlag)
	setTime(c, "expected_arrival", r.ExpectedArrival)
	setTime(c, "expected_departure", r.ExpectedDeparture)
	setString(c, "status", r.Status)
	setString(c, "remarks", r.Remarks)
	return c
}

// Ship ports

type CreateShipPortRequest struct {
	ShipID          int64      `json:"ship_id" validate:"required,gt=0"`
	PortName        string     `json:"port_name" validate:"required,max=200"`
	PortSequence    int        `json:"port_sequence" validate:"required,gte=1"`
	Status          string     `json:"status,omitempty" validate:"max=50"`
	ActualArrival   *time.Time `json:"actual_arrival,omitempty"`
	ActualDeparture *time.Time `json:"actual_departure,omitempty"`
	Remarks         string     `json:"remarks,omitempty"`
}

type UpdateShipPortRequest struct {
	PortName        *string    `json:"port_name,omitempty" validate:"omitempty,min=1,max=200"`
	PortSequence    *int       `json:"port_sequence,omitempty" validate:"omitempty,gte=1"`
	Status          *string    `json:"status,omitempty" validate:"omitempty,max=50"`
	ActualArrival   *time.Time `json:"actual_arrival,omitempty"`
	ActualDeparture *time.Time `json:"actual_departure,omitempty"`
	Remarks         *string    `json:"remarks,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateShipPortRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "port_name", r.PortName)
	if r.PortSequence != nil {
		c["port_sequence"] = *r.PortSequence
	}
	setString(c, "status", r.Status)
	setTime(c, "actual_arrival", r.ActualArrival)
	setTime(c, "actual_departure", r.ActualDeparture)
	setString(c, "remarks", r.Remarks)
	return c
}

// Order lines

type CreateOrderLineRequest struct {
	ShipPortID  int64            `json:"ship_port_id" validate:"required,gt=0"`
	LineNumber  int              `json:"line_number,omitempty" validate:"gte=0"`
	Description string           `json:"description" validate:"required"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit,omitempty" validate:"max=50"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TotalPrice  *decimal.Decimal `json:"total_price,omitempty"`
	CargoType   string           `json:"cargo_type,omitempty" validate:"max=100"`
	PackageType string           `json:"package_type,omitempty" validate:"max=100"`
	Weight      decimal.Decimal  `json:"weight"`
	Volume      decimal.Decimal  `json:"volume"`
}

type UpdateOrderLineRequest struct {
	LineNumber  *int             `json:"line_number,omitempty" validate:"omitempty,gte=0"`
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Unit        *string          `json:"unit,omitempty" validate:"omitempty,max=50"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	TotalPrice  *decimal.Decimal `json:"total_price,omitempty"`
	CargoType   *string          `json:"cargo_type,omitempty" validate:"omitempty,max=100"`
	PackageType *string          `json:"package_type,omitempty" validate:"omitempty,max=100"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	Volume      *decimal.Decimal `json:"volume,omitempty"`
}

// Changes returns the columns set by the request. total_price is taken
// as given and never recomputed.
func (r *UpdateOrderLineRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	if r.LineNumber != nil {
		c["line_number"] = *r.LineNumber
	}
	setString(c, "description", r.Description)
	setDecimal(c, "quantity", r.Quantity)
	setString(c, "unit", r.Unit)
	setDecimal(c, "unit_price", r.UnitPrice)
	setDecimal(c, "total_price", r.TotalPrice)
	setString(c, "cargo_type", r.CargoType)
	setString(c, "package_type", r.PackageType)
	setDecimal(c, "weight", r.Weight)
	setDecimal(c, "volume", r.Volume)
	return c
}

// Timelog

type CreateTimelogEntryRequest struct {
	ShipPortID int64      `json:"ship_port_id" validate:"required,gt=0"`
	OrderID    *int64     `json:"order_id,omitempty" validate:"omitempty,gt=0"`
	Activity   string     `json:"activity" validate:"required,max=200"`
	StartTime  *time.Time `json:"start_time" validate:"required"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`
}

type UpdateTimelogEntryRequest struct {
	Activity  *string    `json:"activity,omitempty" validate:"omitempty,min=1,max=200"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Remarks   *string    `json:"remarks,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateTimelogEntryRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "activity", r.Activity)
	setTime(c, "start_time", r.StartTime)
	setTime(c, "end_time", r.EndTime)
	setString(c, "remarks", r.Remarks)
	return c
}

// Sampling

type CreateSamplingRecordRequest struct {
	ShipPortID   int64  `json:"ship_port_id" validate:"required,gt=0"`
	SampleNumber string `json:"sample_number" validate:"required,max=100"`
	SampleType   string `json:"sample_type,omitempty" validate:"max=100"`
	Quantity     string `json:"quantity,omitempty" validate:"max=100"`
	Destination  string `json:"destination,omitempty" validate:"max=200"`
	SealNumber   string `json:"seal_number,omitempty" validate:"max=100"`
	Laboratory   string `json:"laboratory,omitempty" validate:"max=200"`
	AnalysisType string `json:"analysis_type,omitempty" validate:"max=200"`
	Status       string `json:"status,omitempty" validate:"max=50"`
	Remarks      string `json:"remarks,omitempty"`
}

type UpdateSamplingRecordRequest struct {
	SampleNumber *string `json:"sample_number,omitempty" validate:"omitempty,min=1,max=100"`
	SampleType   *string `json:"sample_type,omitempty" validate:"omitempty,max=100"`
	Quantity     *string `json:"quantity,omitempty" validate:"omitempty,max=100"`
	Destination  *string `json:"destination,omitempty" validate:"omitempty,max=200"`
	SealNumber   *string `json:"seal_number,omitempty" validate:"omitempty,max=100"`
	Laboratory   *string `json:"laboratory,omitempty" validate:"omitempty,max=200"`
	AnalysisType *string `json:"analysis_type,omitempty" validate:"omitempty,max=200"`
	Status       *string `json:"status,omitempty" validate:"omitempty,max=50"`
	Remarks      *string `json:"remarks,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateSamplingRecordRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "sample_number", r.SampleNumber)
	setString(c, "sample_type", r.SampleType)
	setString(c, "quantity", r.Quantity)
	setString(c, "destination", r.Destination)
	setString(c, "seal_number", r.SealNumber)
	setString(c, "laboratory", r.Laboratory)
	setString(c, "analysis_type", r.AnalysisType)
	setString(c, "status", r.Status)
	setString(c, "remarks", r.Remarks)
	return c
}

// Remarks

type CreateRemarkRequest struct {
	ShipPortID int64  `json:"ship_port_id" validate:"required,gt=0"`
	TemplateID *int64 `json:"template_id,omitempty" validate:"omitempty,gt=0"`
	Content    string `json:"content" validate:"required"`
}

type UpdateRemarkRequest struct {
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}

// Changes returns the columns set by the request
func (r *UpdateRemarkRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "content", r.Content)
	return c
}

// Reference data

type CreateSurveyTypeRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type UpdateSurveyTypeRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateSurveyTypeRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "name", r.Name)
	setString(c, "description", r.Description)
	if r.IsActive != nil {
		c["is_active"] = *r.IsActive
	}
	return c
}

type CreatePortRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Country string `json:"country,omitempty" validate:"max=100"`
	Code    string `json:"code,omitempty" validate:"max=20"`
}

type UpdatePortRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Code    *string `json:"code,omitempty" validate:"omitempty,max=20"`
}

// Changes returns the columns set by the request
func (r *UpdatePortRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "name", r.Name)
	setString(c, "country", r.Country)
	setString(c, "code", r.Code)
	return c
}

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category,omitempty" validate:"max=100"`
	Description string `json:"description,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateProductRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "name", r.Name)
	setString(c, "category", r.Category)
	setString(c, "description", r.Description)
	return c
}

type CreateTimelogActivityRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category,omitempty" validate:"max=100"`
	Description string `json:"description,omitempty"`
}

type UpdateTimelogActivityRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateTimelogActivityRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "name", r.Name)
	setString(c, "category", r.Category)
	setString(c, "description", r.Description)
	return c
}

type CreateRemarksTemplateRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category,omitempty" validate:"max=100"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdateRemarksTemplateRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Changes returns the columns set by the request
func (r *UpdateRemarksTemplateRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	setString(c, "title", r.Title)
	setString(c, "content", r.Content)
	setString(c, "category", r.Category)
	if r.IsActive != nil {
		c["is_active"] = *r.IsActive
	}
	return c
}

// ReferenceFilter holds the optional filters of reference data lists
type ReferenceFilter struct {
	Search     string
	Category   string
	ActiveOnly bool
}

func setString(c map[string]interface{}, column string, v *string) {
	if v != nil {
		c[column] = *v
	}
}

func setTime(c map[string]interface{}, column string, v *time.Time) {
	if v != nil {
		c[column] = v.UTC()
	}
}

func setDecimal(c map[string]interface{}, column string, v *decimal.Decimal) {
	if v != nil {
		c[column] = *v
	}
}
