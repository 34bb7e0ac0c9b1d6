package service

import (
	"context"
	"strings"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

// Ports, products, timelog activities and remarks templates are plain
// lookup tables. Names are unique per table; templates are not.

// uniqueName trims name and fails with a conflict when taken reports a clash
func uniqueName(ctx context.Context, kind, name string, excludeID int64, taken func(context.Context, string, int64) (bool, error)) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalidInput("%s name is required", kind)
	}
	exists, err := taken(ctx, name, excludeID)
	if err != nil {
		return "", translate(err, "check "+kind+" name")
	}
	if exists {
		return "", conflict("%s %q already exists", kind, name)
	}
	return name, nil
}

type PortService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewPortService(store *repository.Store, logger *zap.Logger) *PortService {
	return &PortService{store: store, logger: logger}
}

func (s *PortService) Create(ctx context.Context, req *domain.CreatePortRequest) (*domain.PortDTO, error) {
	name, err := uniqueName(ctx, "port", req.Name, 0, s.store.Ports.NameTaken)
	if err != nil {
		return nil, err
	}
	port := &domain.Port{Name: name, Country: req.Country, Code: strings.ToUpper(req.Code)}
	if err := s.store.Ports.Create(ctx, port); err != nil {
		return nil, translate(err, "create port")
	}
	dto := mapper.ToPortDTO(port)
	return &dto, nil
}

func (s *PortService) GetByID(ctx context.Context, id int64) (*domain.PortDTO, error) {
	port, err := s.store.Ports.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get port")
	}
	dto := mapper.ToPortDTO(port)
	return &dto, nil
}

func (s *PortService) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.PortDTO, error) {
	ports, err := s.store.Ports.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "list ports")
	}
	return mapper.ToPortDTOs(ports), nil
}

func (s *PortService) Update(ctx context.Context, id int64, req *domain.UpdatePortRequest) (*domain.PortDTO, error) {
	if req.Name != nil {
		name, err := uniqueName(ctx, "port", *req.Name, id, s.store.Ports.NameTaken)
		if err != nil {
			return nil, err
		}
		req.Name = &name
	}
	if req.Code != nil {
		code := strings.ToUpper(*req.Code)
		req.Code = &code
	}
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.Ports.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update port")
	}
	return s.GetByID(ctx, id)
}

func (s *PortService) Delete(ctx context.Context, id int64) error {
	return translate(s.store.Ports.Delete(ctx, id), "delete port")
}

type ProductService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewProductService(store *repository.Store, logger *zap.Logger) *ProductService {
	return &ProductService{store: store, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, req *domain.CreateProductRequest) (*domain.ProductDTO, error) {
	name, err := uniqueName(ctx, "product", req.Name, 0, s.store.Products.NameTaken)
	if err != nil {
		return nil, err
	}
	product := &domain.Product{Name: name, Category: req.Category, Description: req.Description}
	if err := s.store.Products.Create(ctx, product); err != nil {
		return nil, translate(err, "create product")
	}
	dto := mapper.ToProductDTO(product)
	return &dto, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.ProductDTO, error) {
	product, err := s.store.Products.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get product")
	}
	dto := mapper.ToProductDTO(product)
	return &dto, nil
}

func (s *ProductService) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.ProductDTO, error) {
	products, err := s.store.Products.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "list products")
	}
	return mapper.ToProductDTOs(products), nil
}

func (s *ProductService) Update(ctx context.Context, id int64, req *domain.UpdateProductRequest) (*domain.ProductDTO, error) {
	if req.Name != nil {
		name, err := uniqueName(ctx, "product", *req.Name, id, s.store.Products.NameTaken)
		if err != nil {
			return nil, err
		}
		req.Name = &name
	}
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.Products.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update product")
	}
	return s.GetByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return translate(s.store.Products.Delete(ctx, id), "delete product")
}

type TimelogActivityService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewTimelogActivityService(store *repository.Store, logger *zap.Logger) *TimelogActivityService {
	return &TimelogActivityService{store: store, logger: logger}
}

func (s *TimelogActivityService) Create(ctx context.Context, req *domain.CreateTimelogActivityRequest) (*domain.TimelogActivityDTO, error) {
	name, err := uniqueName(ctx, "timelog activity", req.Name, 0, s.store.TimelogActivities.NameTaken)
	if err != nil {
		return nil, err
	}
	activity := &domain.TimelogActivity{Name: name, Category: req.Category, Description: req.Description}
	if err := s.store.TimelogActivities.Create(ctx, activity); err != nil {
		return nil, translate(err, "create timelog activity")
	}
	dto := mapper.ToTimelogActivityDTO(activity)
	return &dto, nil
}

func (s *TimelogActivityService) GetByID(ctx context.Context, id int64) (*domain.TimelogActivityDTO, error) {
	activity, err := s.store.TimelogActivities.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get timelog activity")
	}
	dto := mapper.ToTimelogActivityDTO(activity)
	return &dto, nil
}

func (s *TimelogActivityService) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.TimelogActivityDTO, error) {
	activities, err := s.store.TimelogActivities.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "list timelog activities")
	}
	return mapper.ToTimelogActivityDTOs(activities), nil
}

func (s *TimelogActivityService) Update(ctx context.Context, id int64, req *domain.UpdateTimelogActivityRequest) (*domain.TimelogActivityDTO, error) {
	if req.Name != nil {
		name, err := uniqueName(ctx, "timelog activity", *req.Name, id, s.store.TimelogActivities.NameTaken)
		if err != nil {
			return nil, err
		}
		req.Name = &name
	}
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.TimelogActivities.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update timelog activity")
	}
	return s.GetByID(ctx, id)
}

func (s *TimelogActivityService) Delete(ctx context.Context, id int64) error {
	return translate(s.store.TimelogActivities.Delete(ctx, id), "delete timelog activity")
}

type RemarksTemplateService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewRemarksTemplateService(store *repository.Store, logger *zap.Logger) *RemarksTemplateService {
	return &RemarksTemplateService{store: store, logger: logger}
}

func (s *RemarksTemplateService) Create(ctx context.Context, req *domain.CreateRemarksTemplateRequest) (*domain.RemarksTemplateDTO, error) {
	tmpl := &domain.RemarksTemplate{
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		Category: req.Category,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if tmpl.Title == "" {
		return nil, invalidInput("title is required")
	}
	if err := s.store.RemarksTemplates.Create(ctx, tmpl); err != nil {
		return nil, translate(err, "create remarks template")
	}
	dto := mapper.ToRemarksTemplateDTO(tmpl)
	return &dto, nil
}

func (s *RemarksTemplateService) GetByID(ctx context.Context, id int64) (*domain.RemarksTemplateDTO, error) {
	tmpl, err := s.store.RemarksTemplates.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get remarks template")
	}
	dto := mapper.ToRemarksTemplateDTO(tmpl)
	return &dto, nil
}

func (s *RemarksTemplateService) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.RemarksTemplateDTO, error) {
	templates, err := s.store.RemarksTemplates.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "list remarks templates")
	}
	return mapper.ToRemarksTemplateDTOs(templates), nil
}

func (s *RemarksTemplateService) Update(ctx context.Context, id int64, req *domain.UpdateRemarksTemplateRequest) (*domain.RemarksTemplateDTO, error) {
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.RemarksTemplates.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update remarks template")
	}
	return s.GetByID(ctx, id)
}

func (s *RemarksTemplateService) Delete(ctx context.Context, id int64) error {
	return translate(s.store.RemarksTemplates.Delete(ctx, id), "delete remarks template")
}
