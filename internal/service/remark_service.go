package service

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

type RemarkService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewRemarkService(store *repository.Store, logger *zap.Logger) *RemarkService {
	return &RemarkService{
		store:  store,
		logger: logger,
	}
}

// Create adds a remark to a port call. A referenced template must exist.
func (s *RemarkService) Create(ctx context.Context, req *domain.CreateRemarkRequest) (*domain.RemarkDTO, error) {
	if _, err := requireShipPort(ctx, s.store, req.ShipPortID); err != nil {
		return nil, err
	}
	if req.TemplateID != nil {
		if _, err := s.store.RemarksTemplates.GetByID(ctx, *req.TemplateID); err != nil {
			if isNotFound(err) {
				return nil, invalidInput("remarks template %d does not exist", *req.TemplateID)
			}
			return nil, translate(err, "get remarks template")
		}
	}

	remark := &domain.Remark{
		ShipPortID: req.ShipPortID,
		TemplateID: req.TemplateID,
		Content:    req.Content,
		CreatedBy:  auth.CreatorID(ctx),
	}
	if err := s.store.Remarks.Create(ctx, remark); err != nil {
		return nil, translate(err, "create remark")
	}
	dto := mapper.ToRemarkDTO(remark)
	return &dto, nil
}

func (s *RemarkService) GetByID(ctx context.Context, id int64) (*domain.RemarkDTO, error) {
	remark, err := s.store.Remarks.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get remark")
	}
	dto := mapper.ToRemarkDTO(remark)
	return &dto, nil
}

func (s *RemarkService) ListByShipPort(ctx context.Context, shipPortID int64) ([]domain.RemarkDTO, error) {
	remarks, err := s.store.Remarks.ListByShipPort(ctx, shipPortID)
	if err != nil {
		return nil, translate(err, "list remarks")
	}
	return mapper.ToRemarkDTOs(remarks), nil
}

func (s *RemarkService) Update(ctx context.Context, id int64, req *domain.UpdateRemarkRequest) (*domain.RemarkDTO, error) {
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.Remarks.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update remark")
	}
	return s.GetByID(ctx, id)
}

func (s *RemarkService) Delete(ctx context.Context, id int64) error {
	return translate(s.store.Remarks.Delete(ctx, id), "delete remark")
}
