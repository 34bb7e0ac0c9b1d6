package service

import (
	"context"
	"strings"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

// SurveyTypeService manages survey types. Orders refer to a survey type by
// name, so renames are carried over to orders and types in use cannot be
// deleted.
type SurveyTypeService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewSurveyTypeService(store *repository.Store, logger *zap.Logger) *SurveyTypeService {
	return &SurveyTypeService{
		store:  store,
		logger: logger,
	}
}

func (s *SurveyTypeService) Create(ctx context.Context, req *domain.CreateSurveyTypeRequest) (*domain.SurveyTypeDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidInput("name is required")
	}
	taken, err := s.store.SurveyTypes.NameTaken(ctx, name, 0)
	if err != nil {
		return nil, translate(err, "check survey type name")
	}
	if taken {
		return nil, conflict("survey type %q already exists", name)
	}

	st := &domain.SurveyType{
		Name:        name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.store.SurveyTypes.Create(ctx, st); err != nil {
		return nil, translate(err, "create survey type")
	}

	s.logger.Info("survey type created", zap.Int64("survey_type_id", st.ID), zap.String("name", st.Name))
	dto := mapper.ToSurveyTypeDTO(st)
	return &dto, nil
}

func (s *SurveyTypeService) GetByID(ctx context.Context, id int64) (*domain.SurveyTypeDTO, error) {
	st, err := s.store.SurveyTypes.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get survey type")
	}
	dto := mapper.ToSurveyTypeDTO(st)
	return &dto, nil
}

func (s *SurveyTypeService) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.SurveyTypeDTO, error) {
	types, err := s.store.SurveyTypes.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "list survey types")
	}
	return mapper.ToSurveyTypeDTOs(types), nil
}

func (s *SurveyTypeService) Update(ctx context.Context, id int64, req *domain.UpdateSurveyTypeRequest) (*domain.SurveyTypeDTO, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.SurveyTypes.GetByID(ctx, id)
		if err != nil {
			return translate(err, "get survey type")
		}
		if req.Name != nil && *req.Name != current.Name {
			if *req.Name == "" {
				return invalidInput("name must not be empty")
			}
			taken, err := tx.SurveyTypes.NameTaken(ctx, *req.Name, id)
			if err != nil {
				return translate(err, "check survey type name")
			}
			if taken {
				return conflict("survey type %q already exists", *req.Name)
			}
			if err := tx.Orders.RenameSurveyType(ctx, current.Name, *req.Name); err != nil {
				return translate(err, "rename survey type on orders")
			}
		}
		return translate(tx.SurveyTypes.Update(ctx, id, changes), "update survey type")
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a survey type that no order refers to
func (s *SurveyTypeService) Delete(ctx context.Context, id int64) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		st, err := tx.SurveyTypes.GetByID(ctx, id)
		if err != nil {
			return translate(err, "get survey type")
		}
		inUse, err := tx.Orders.CountBySurveyType(ctx, st.Name)
		if err != nil {
			return translate(err, "count orders by survey type")
		}
		if inUse > 0 {
			return conflict("survey type %q is used by %d orders", st.Name, inUse)
		}
		return translate(tx.SurveyTypes.Delete(ctx, id), "delete survey type")
	})
}
