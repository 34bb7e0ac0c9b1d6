package mapper

import (
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// ToOrderDTO converts Order to OrderDTO
func ToOrderDTO(o *domain.Order) domain.OrderDTO {
	return domain.OrderDTO{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		ClientName:  o.ClientName,
		ClientEmail: o.ClientEmail,
		SurveyType:  o.SurveyType,
		Status:      o.Status,
		TotalShips:  o.TotalShips,
		TotalPorts:  o.TotalPorts,
		Remarks:     o.Remarks,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   formatTime(o.CreatedAt),
		UpdatedAt:   formatTime(o.UpdatedAt),
	}
}

// ToOrderDTOs converts a slice of orders
func ToOrderDTOs(orders []domain.Order) []domain.OrderDTO {
	dtos := make([]domain.OrderDTO, len(orders))
	for i := range orders {
		dtos[i] = ToOrderDTO(&orders[i])
	}
	return dtos
}

// ToOrderDetailDTO converts the order aggregate. Empty ship and port lists
// are rendered as [] rather than null.
func ToOrderDetailDTO(agg *domain.OrderAggregate) domain.OrderDetailDTO {
	dto := domain.OrderDetailDTO{
		OrderDTO: ToOrderDTO(&agg.Order),
		Ships:    make([]domain.ShipDetailDTO, len(agg.Ships)),
	}
	if agg.CreatedByName != nil {
		dto.CreatedByName = *agg.CreatedByName
	}
	for i := range agg.Ships {
		dto.Ships[i] = ToShipDetailDTO(&agg.Ships[i])
	}
	return dto
}

// ToShipDTO converts Ship to ShipDTO
func ToShipDTO(s *domain.Ship) domain.ShipDTO {
	return domain.ShipDTO{
		ID:                s.ID,
		OrderID:           s.OrderID,
		VesselName:        s.VesselName,
		VesselIMO:         s.VesselIMO,
		VesselFlag:        s.VesselFlag,
		ExpectedArrival:   formatOptionalTime(s.ExpectedArrival),
		ExpectedDeparture: formatOptionalTime(s.ExpectedDeparture),
		Status:            s.Status,
		Remarks:           s.Remarks,
		CreatedAt:         formatTime(s.CreatedAt),
		UpdatedAt:         formatTime(s.UpdatedAt),
	}
}

func ToShipDTOs(ships []domain.Ship) []domain.ShipDTO {
	dtos := make([]domain.ShipDTO, len(ships))
	for i := range ships {
		dtos[i] = ToShipDTO(&ships[i])
	}
	return dtos
}

// ToShipDetailDTO converts a ship with its port calls
func ToShipDetailDTO(s *domain.ShipAggregate) domain.ShipDetailDTO {
	dto := domain.ShipDetailDTO{
		ShipDTO:     ToShipDTO(&s.Ship),
		PortSummary: s.PortSummary,
		ShipPorts:   make([]domain.ShipPortDetailDTO, len(s.Ports)),
	}
	for i := range s.Ports {
		dto.ShipPorts[i] = ToShipPortDetailDTO(&s.Ports[i])
	}
	return dto
}

// ToShipPortDTO converts ShipPort to ShipPortDTO
func ToShipPortDTO(p *domain.ShipPort) domain.ShipPortDTO {
	return domain.ShipPortDTO{
		ID:              p.ID,
		ShipID:          p.ShipID,
		PortName:        p.PortName,
		PortSequence:    p.PortSequence,
		Status:          p.Status,
		ActualArrival:   formatOptionalTime(p.ActualArrival),
		ActualDeparture: formatOptionalTime(p.ActualDeparture),
		Remarks:         p.Remarks,
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func ToShipPortDTOs(ports []domain.ShipPort) []domain.ShipPortDTO {
	dtos := make([]domain.ShipPortDTO, len(ports))
	for i := range ports {
		dtos[i] = ToShipPortDTO(&ports[i])
	}
	return dtos
}

func ToShipPortDetailDTO(p *domain.ShipPortWithCounts) domain.ShipPortDetailDTO {
	return domain.ShipPortDetailDTO{
		ShipPortDTO:     ToShipPortDTO(&p.ShipPort),
		OrderLinesCount: p.OrderLinesCount,
		TimelogCount:    p.TimelogCount,
		SamplingCount:   p.SamplingCount,
	}
}

func ToOrderLineDTO(l *domain.OrderLine) domain.OrderLineDTO {
	return domain.OrderLineDTO{
		ID:          l.ID,
		ShipPortID:  l.ShipPortID,
		LineNumber:  l.LineNumber,
		Description: l.Description,
		Quantity:    l.Quantity,
		Unit:        l.Unit,
		UnitPrice:   l.UnitPrice,
		TotalPrice:  l.TotalPrice,
		CargoType:   l.CargoType,
		PackageType: l.PackageType,
		Weight:      l.Weight,
		Volume:      l.Volume,
		CreatedAt:   formatTime(l.CreatedAt),
		UpdatedAt:   formatTime(l.UpdatedAt),
	}
}

func ToOrderLineDTOs(lines []domain.OrderLine) []domain.OrderLineDTO {
	dtos := make([]domain.OrderLineDTO, len(lines))
	for i := range lines {
		dtos[i] = ToOrderLineDTO(&lines[i])
	}
	return dtos
}

func ToTimelogEntryDTO(e *domain.TimelogEntry) domain.TimelogEntryDTO {
	return domain.TimelogEntryDTO{
		ID:         e.ID,
		ShipPortID: e.ShipPortID,
		OrderID:    e.OrderID,
		Activity:   e.Activity,
		StartTime:  formatTime(e.StartTime),
		EndTime:    formatOptionalTime(e.EndTime),
		Remarks:    e.Remarks,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  formatTime(e.CreatedAt),
		UpdatedAt:  formatTime(e.UpdatedAt),
	}
}

func ToTimelogEntryDTOs(entries []domain.TimelogEntry) []domain.TimelogEntryDTO {
	dtos := make([]domain.TimelogEntryDTO, len(entries))
	for i := range entries {
		dtos[i] = ToTimelogEntryDTO(&entries[i])
	}
	return dtos
}

func ToSamplingRecordDTO(s *domain.SamplingRecord) domain.SamplingRecordDTO {
	return domain.SamplingRecordDTO{
		ID:           s.ID,
		ShipPortID:   s.ShipPortID,
		SampleNumber: s.SampleNumber,
		SampleType:   s.SampleType,
		Quantity:     s.Quantity,
		Destination:  s.Destination,
		SealNumber:   s.SealNumber,
		Laboratory:   s.Laboratory,
		AnalysisType: s.AnalysisType,
		Status:       s.Status,
		Remarks:      s.Remarks,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func ToSamplingRecordDTOs(records []domain.SamplingRecord) []domain.SamplingRecordDTO {
	dtos := make([]domain.SamplingRecordDTO, len(records))
	for i := range records {
		dtos[i] = ToSamplingRecordDTO(&records[i])
	}
	return dtos
}

func ToRemarkDTO(r *domain.Remark) domain.RemarkDTO {
	return domain.RemarkDTO{
		ID:         r.ID,
		ShipPortID: r.ShipPortID,
		TemplateID: r.TemplateID,
		Content:    r.Content,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  formatTime(r.CreatedAt),
		UpdatedAt:  formatTime(r.UpdatedAt),
	}
}

func ToRemarkDTOs(remarks []domain.Remark) []domain.RemarkDTO {
	dtos := make([]domain.RemarkDTO, len(remarks))
	for i := range remarks {
		dtos[i] = ToRemarkDTO(&remarks[i])
	}
	return dtos
}

func ToSurveyTypeDTO(s *domain.SurveyType) domain.SurveyTypeDTO {
	return domain.SurveyTypeDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		IsActive:    s.IsActive,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func ToSurveyTypeDTOs(types []domain.SurveyType) []domain.SurveyTypeDTO {
	dtos := make([]domain.SurveyTypeDTO, len(types))
	for i := range types {
		dtos[i] = ToSurveyTypeDTO(&types[i])
	}
	return dtos
}

func ToPortDTO(p *domain.Port) domain.PortDTO {
	return domain.PortDTO{
		ID:        p.ID,
		Name:      p.Name,
		Country:   p.Country,
		Code:      p.Code,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func ToPortDTOs(ports []domain.Port) []domain.PortDTO {
	dtos := make([]domain.PortDTO, len(ports))
	for i := range ports {
		dtos[i] = ToPortDTO(&ports[i])
	}
	return dtos
}

func ToProductDTO(p *domain.Product) domain.ProductDTO {
	return domain.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func ToProductDTOs(products []domain.Product) []domain.ProductDTO {
	dtos := make([]domain.ProductDTO, len(products))
	for i := range products {
		dtos[i] = ToProductDTO(&products[i])
	}
	return dtos
}

func ToTimelogActivityDTO(a *domain.TimelogActivity) domain.TimelogActivityDTO {
	return domain.TimelogActivityDTO{
		ID:          a.ID,
		Name:        a.Name,
		Category:    a.Category,
		Description: a.Description,
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func ToTimelogActivityDTOs(activities []domain.TimelogActivity) []domain.TimelogActivityDTO {
	dtos := make([]domain.TimelogActivityDTO, len(activities))
	for i := range activities {
		dtos[i] = ToTimelogActivityDTO(&activities[i])
	}
	return dtos
}

func ToRemarksTemplateDTO(t *domain.RemarksTemplate) domain.RemarksTemplateDTO {
	return domain.RemarksTemplateDTO{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		Category:  t.Category,
		IsActive:  t.IsActive,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

func ToRemarksTemplateDTOs(templates []domain.RemarksTemplate) []domain.RemarksTemplateDTO {
	dtos := make([]domain.RemarksTemplateDTO, len(templates))
	for i := range templates {
		dtos[i] = ToRemarksTemplateDTO(&templates[i])
	}
	return dtos
}

// ToUserDTO never exposes the password hash
func ToUserDTO(u *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func ToAuditLogDTO(a *domain.AuditLog) domain.AuditLogDTO {
	return domain.AuditLogDTO{
		ID:         a.ID,
		UserID:     a.UserID,
		UserName:   a.UserName,
		Method:     a.Method,
		Path:       a.Path,
		StatusCode: a.StatusCode,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		RequestID:  a.RequestID,
		CreatedAt:  formatTime(a.CreatedAt),
	}
}

func ToAuditLogDTOs(logs []domain.AuditLog) []domain.AuditLogDTO {
	dtos := make([]domain.AuditLogDTO, len(logs))
	for i := range logs {
		dtos[i] = ToAuditLogDTO(&logs[i])
	}
	return dtos
}
