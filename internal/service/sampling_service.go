package service

import (
	"context"
	"strings"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

type SamplingService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewSamplingService(store *repository.Store, logger *zap.Logger) *SamplingService {
	return &SamplingService{
		store:  store,
		logger: logger,
	}
}

func (s *SamplingService) Create(ctx context.Context, req *domain.CreateSamplingRecordRequest) (*domain.SamplingRecordDTO, error) {
	if _, err := requireShipPort(ctx, s.store, req.ShipPortID); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusPending
	}
	record := &domain.SamplingRecord{
		ShipPortID:   req.ShipPortID,
		SampleNumber: strings.TrimSpace(req.SampleNumber),
		SampleType:   req.SampleType,
		Quantity:     req.Quantity,
		Destination:  req.Destination,
		SealNumber:   req.SealNumber,
		Laboratory:   req.Laboratory,
		AnalysisType: req.AnalysisType,
		Status:       status,
		Remarks:      req.Remarks,
		CreatedBy:    auth.CreatorID(ctx),
	}
	if err := s.store.Samplings.Create(ctx, record); err != nil {
		return nil, translate(err, "create sampling record")
	}

	s.logger.Debug("sampling record created",
		zap.Int64("sampling_id", record.ID),
		zap.String("sample_number", record.SampleNumber),
	)
	dto := mapper.ToSamplingRecordDTO(record)
	return &dto, nil
}

func (s *SamplingService) GetByID(ctx context.Context, id int64) (*domain.SamplingRecordDTO, error) {
	record, err := s.store.Samplings.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get sampling record")
	}
	dto := mapper.ToSamplingRecordDTO(record)
	return &dto, nil
}

func (s *SamplingService) ListByShipPort(ctx context.Context, shipPortID int64) ([]domain.SamplingRecordDTO, error) {
	records, err := s.store.Samplings.ListByShipPort(ctx, shipPortID)
	if err != nil {
		return nil, translate(err, "list sampling records")
	}
	return mapper.ToSamplingRecordDTOs(records), nil
}

func (s *SamplingService) Update(ctx context.Context, id int64, req *domain.UpdateSamplingRecordRequest) (*domain.SamplingRecordDTO, error) {
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.Samplings.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update sampling record")
	}
	return s.GetByID(ctx, id)
}

func (s *SamplingService) Delete(ctx context.Context, id int64) error {
	return translate(s.store.Samplings.Delete(ctx, id), "delete sampling record")
}
