package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Base model with common fields
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// OrderStatus represents the lifecycle state of a survey order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether s is one of the known order statuses
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// StatusPending is the default status of ships, port calls and samples
const StatusPending = "pending"

// Order is a client's survey request. TotalShips and TotalPorts are
// captured when the order is created and are not kept in sync afterwards.
type Order struct {
	BaseModel
	OrderNumber string      `gorm:"type:varchar(50);not null;uniqueIndex;column:order_number"`
	ClientName  string      `gorm:"type:varchar(200);not null;column:client_name"`
	ClientEmail string      `gorm:"type:varchar(255);column:client_email"`
	SurveyType  string      `gorm:"type:varchar(200);not null;index;column:survey_type"`
	Status      OrderStatus `gorm:"type:varchar(50);not null;default:'pending';index"`
	TotalShips  int         `gorm:"not null;default:0;column:total_ships"`
	TotalPorts  int         `gorm:"not null;default:0;column:total_ports"`
	Remarks     string      `gorm:"type:text"`
	CreatedBy   *int64      `gorm:"column:created_by;index"`
}

// Ship is one vessel visit belonging to an order
type Ship struct {
	BaseModel
	OrderID           int64      `gorm:"not null;index;column:order_id"`
	VesselName        string     `gorm:"type:varchar(200);not null;column:vessel_name"`
	VesselIMO         string     `gorm:"type:varchar(20);column:vessel_imo"`
	VesselFlag        string     `gorm:"type:varchar(100);column:vessel_flag"`
	ExpectedArrival   *time.Time `gorm:"column:expected_arrival"`
	ExpectedDeparture *time.Time `gorm:"column:expected_departure"`
	Status            string     `gorm:"type:varchar(50);not null;default:'pending'"`
	Remarks           string     `gorm:"type:text"`
}

// ShipPort is a single port call of a ship. PortSequence is 1-based and
// expected to be unique within the ship, but nothing enforces it.
type ShipPort struct {
	BaseModel
	ShipID          int64      `gorm:"not null;index:idx_ship_ports_ship_seq,priority:1;column:ship_id"`
	PortName        string     `gorm:"type:varchar(200);not null;column:port_name"`
	PortSequence    int        `gorm:"not null;index:idx_ship_ports_ship_seq,priority:2;column:port_sequence"`
	Status          string     `gorm:"type:varchar(50);not null;default:'pending'"`
	ActualArrival   *time.Time `gorm:"column:actual_arrival"`
	ActualDeparture *time.Time `gorm:"column:actual_departure"`
	Remarks         string     `gorm:"type:text"`
}

// OrderLine is a billable cargo or service item of a port call
type OrderLine struct {
	BaseModel
	ShipPortID  int64           `gorm:"not null;index;column:ship_port_id"`
	LineNumber  int             `gorm:"not null;default:0;column:line_number"`
	Description string          `gorm:"type:text;not null"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,3);not null;default:0"`
	Unit        string          `gorm:"type:varchar(50)"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0;column:unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0;column:total_price"`
	CargoType   string          `gorm:"type:varchar(100);column:cargo_type"`
	PackageType string          `gorm:"type:varchar(100);column:package_type"`
	Weight      decimal.Decimal `gorm:"type:numeric(14,3);not null;default:0"`
	Volume      decimal.Decimal `gorm:"type:numeric(14,3);not null;default:0"`
}

// TimelogEntry records an activity at a port call
type TimelogEntry struct {
	BaseModel
	ShipPortID int64      `gorm:"not null;index;column:ship_port_id"`
	OrderID    *int64     `gorm:"index;column:order_id"`
	Activity   string     `gorm:"type:varchar(200);not null"`
	StartTime  time.Time  `gorm:"not null;column:start_time"`
	EndTime    *time.Time `gorm:"column:end_time"`
	Remarks    string     `gorm:"type:text"`
	CreatedBy  *int64     `gorm:"column:created_by"`
}

// TableName overrides the default pluralisation
func (TimelogEntry) TableName() string {
	return "timelog_entries"
}

// SamplingRecord is a cargo sample taken at a port call
type SamplingRecord struct {
	BaseModel
	ShipPortID   int64  `gorm:"not null;index;column:ship_port_id"`
	SampleNumber string `gorm:"type:varchar(100);not null;column:sample_number"`
	SampleType   string `gorm:"type:varchar(100);column:sample_type"`
	Quantity     string `gorm:"type:varchar(100)"`
	Destination  string `gorm:"type:varchar(200)"`
	SealNumber   string `gorm:"type:varchar(100);column:seal_number"`
	Laboratory   string `gorm:"type:varchar(200)"`
	AnalysisType string `gorm:"type:varchar(200);column:analysis_type"`
	Status       string `gorm:"type:varchar(50);not null;default:'pending'"`
	Remarks      string `gorm:"type:text"`
	CreatedBy    *int64 `gorm:"column:created_by"`
}

// Remark is a free-text note on a port call, optionally based on a template
type Remark struct {
	BaseModel
	ShipPortID int64  `gorm:"not null;index;column:ship_port_id"`
	TemplateID *int64 `gorm:"column:template_id"`
	Content    string `gorm:"type:text;not null"`
	CreatedBy  *int64 `gorm:"column:created_by"`
}

// SurveyType classifies the service performed for an order.
// Orders reference it by name.
type SurveyType struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;column:is_active"`
}

// Port is a known port of call
type Port struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Country string `gorm:"type:varchar(100)"`
	Code    string `gorm:"type:varchar(20)"`
}

// Product is a cargo product
type Product struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Category    string `gorm:"type:varchar(100);index"`
	Description string `gorm:"type:text"`
}

// TimelogActivity is a predefined activity name for timelog entries
type TimelogActivity struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Category    string `gorm:"type:varchar(100);index"`
	Description string `gorm:"type:text"`
}

// TableName overrides the default pluralisation
func (TimelogActivity) TableName() string {
	return "timelog_activities"
}

// RemarksTemplate is reusable remark text
type RemarksTemplate struct {
	BaseModel
	Title    string `gorm:"type:varchar(200);not null"`
	Content  string `gorm:"type:text;not null"`
	Category string `gorm:"type:varchar(100);index"`
	IsActive bool   `gorm:"not null;column:is_active"`
}

// UserRole is the coarse permission level of a user
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleSurveyor UserRole = "surveyor"
)

// User is an account that can sign in to the API
type User struct {
	BaseModel
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null;column:password_hash"`
	FullName     string     `gorm:"type:varchar(200);column:full_name"`
	Email        string     `gorm:"type:varchar(255)"`
	Role         UserRole   `gorm:"type:varchar(50);not null;default:'surveyor'"`
	IsActive     bool       `gorm:"not null;column:is_active"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
}

// AuditLog records a mutating API request
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     *int64    `gorm:"column:user_id;index"`
	UserName   string    `gorm:"type:varchar(200);column:user_name"`
	Method     string    `gorm:"type:varchar(10);not null"`
	Path       string    `gorm:"type:varchar(500);not null"`
	StatusCode int       `gorm:"not null;column:status_code"`
	EntityType string    `gorm:"type:varchar(50);column:entity_type;index"`
	EntityID   *int64    `gorm:"column:entity_id"`
	RequestID  string    `gorm:"type:varchar(100);column:request_id"`
	IPAddress  string    `gorm:"type:varchar(64);column:ip_address"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// Read models used by the order aggregate. They are scan targets, not tables.

// OrderWithCreator is an order joined with its creator's display name
type OrderWithCreator struct {
	Order
	CreatedByName *string `gorm:"column:created_by_name"`
}

// ShipPortWithCounts is a port call with the number of child records
type ShipPortWithCounts struct {
	ShipPort
	OrderLinesCount int64 `gorm:"column:order_lines_count"`
	TimelogCount    int64 `gorm:"column:timelog_count"`
	SamplingCount   int64 `gorm:"column:sampling_count"`
}

// PortRef is the lightweight port call identity used for ship summaries
type PortRef struct {
	ID           int64
	ShipID       int64
	PortName     string
	PortSequence int
}

// ShipAggregate is a ship with its port calls
type ShipAggregate struct {
	Ship
	PortSummary string
	Ports       []ShipPortWithCounts
}

// OrderAggregate is a fully populated order
type OrderAggregate struct {
	OrderWithCreator
	Ships []ShipAggregate
}

// TotalsDrift is an order whose stored totals differ from its current children
type TotalsDrift struct {
	OrderID     int64  `gorm:"column:order_id"`
	OrderNumber string `gorm:"column:order_number"`
	TotalShips  int    `gorm:"column:total_ships"`
	TotalPorts  int    `gorm:"column:total_ports"`
	ActualShips int    `gorm:"column:actual_ships"`
	ActualPorts int    `gorm:"column:actual_ports"`
}
