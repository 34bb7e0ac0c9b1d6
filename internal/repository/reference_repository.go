package repository

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"gorm.io/gorm"
)

// referenceColumns describes which filter columns a lookup table has
type referenceColumns struct {
	search   string
	category bool
	active   bool
}

func applyReferenceFilter(query *gorm.DB, cols referenceColumns, filter domain.ReferenceFilter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("LOWER("+cols.search+") LIKE ?", likePattern(filter.Search))
	}
	if cols.category && filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if cols.active && filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	return query
}

// nameTaken reports whether another row of model already uses name.
// excludeID skips the row being renamed.
func nameTaken(ctx context.Context, db *gorm.DB, model interface{}, name string, excludeID int64) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(model).Where("name = ?", name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type SurveyTypeRepository struct {
	db *gorm.DB
}

func NewSurveyTypeRepository(db *gorm.DB) *SurveyTypeRepository {
	return &SurveyTypeRepository{db: db}
}

func (r *SurveyTypeRepository) Create(ctx context.Context, st *domain.SurveyType) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *SurveyTypeRepository) GetByID(ctx context.Context, id int64) (*domain.SurveyType, error) {
	var st domain.SurveyType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *SurveyTypeRepository) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.SurveyType, error) {
	var types []domain.SurveyType
	query := applyReferenceFilter(r.db.WithContext(ctx).Model(&domain.SurveyType{}), referenceColumns{search: "name", active: true}, filter)
	err := query.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *SurveyTypeRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	return nameTaken(ctx, r.db, &domain.SurveyType{}, name, excludeID)
}

func (r *SurveyTypeRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.SurveyType{}, id, updates)
}

func (r *SurveyTypeRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.SurveyType{}, id)
}

type PortRepository struct {
	db *gorm.DB
}

func NewPortRepository(db *gorm.DB) *PortRepository {
	return &PortRepository{db: db}
}

func (r *PortRepository) Create(ctx context.Context, port *domain.Port) error {
	return r.db.WithContext(ctx).Create(port).Error
}

func (r *PortRepository) GetByID(ctx context.Context, id int64) (*domain.Port, error) {
	var port domain.Port
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&port).Error; err != nil {
		return nil, err
	}
	return &port, nil
}

func (r *PortRepository) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.Port, error) {
	var ports []domain.Port
	query := applyReferenceFilter(r.db.WithContext(ctx).Model(&domain.Port{}), referenceColumns{search: "name"}, filter)
	err := query.Order("name ASC").Find(&ports).Error
	return ports, err
}

func (r *PortRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	return nameTaken(ctx, r.db, &domain.Port{}, name, excludeID)
}

func (r *PortRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.Port{}, id, updates)
}

func (r *PortRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.Port{}, id)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.Product, error) {
	var products []domain.Product
	query := applyReferenceFilter(r.db.WithContext(ctx).Model(&domain.Product{}), referenceColumns{search: "name", category: true}, filter)
	err := query.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	return nameTaken(ctx, r.db, &domain.Product{}, name, excludeID)
}

func (r *ProductRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.Product{}, id, updates)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.Product{}, id)
}

type TimelogActivityRepository struct {
	db *gorm.DB
}

func NewTimelogActivityRepository(db *gorm.DB) *TimelogActivityRepository {
	return &TimelogActivityRepository{db: db}
}

func (r *TimelogActivityRepository) Create(ctx context.Context, activity *domain.TimelogActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *TimelogActivityRepository) GetByID(ctx context.Context, id int64) (*domain.TimelogActivity, error) {
	var activity domain.TimelogActivity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *TimelogActivityRepository) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.TimelogActivity, error) {
	var activities []domain.TimelogActivity
	query := applyReferenceFilter(r.db.WithContext(ctx).Model(&domain.TimelogActivity{}), referenceColumns{search: "name", category: true}, filter)
	err := query.Order("category ASC, name ASC").Find(&activities).Error
	return activities, err
}

func (r *TimelogActivityRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	return nameTaken(ctx, r.db, &domain.TimelogActivity{}, name, excludeID)
}

func (r *TimelogActivityRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.TimelogActivity{}, id, updates)
}

func (r *TimelogActivityRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.TimelogActivity{}, id)
}

type RemarksTemplateRepository struct {
	db *gorm.DB
}

func NewRemarksTemplateRepository(db *gorm.DB) *RemarksTemplateRepository {
	return &RemarksTemplateRepository{db: db}
}

func (r *RemarksTemplateRepository) Create(ctx context.Context, tmpl *domain.RemarksTemplate) error {
	return r.db.WithContext(ctx).Create(tmpl).Error
}

func (r *RemarksTemplateRepository) GetByID(ctx context.Context, id int64) (*domain.RemarksTemplate, error) {
	var tmpl domain.RemarksTemplate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tmpl).Error; err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *RemarksTemplateRepository) List(ctx context.Context, filter domain.ReferenceFilter) ([]domain.RemarksTemplate, error) {
	var templates []domain.RemarksTemplate
	query := applyReferenceFilter(r.db.WithContext(ctx).Model(&domain.RemarksTemplate{}), referenceColumns{search: "title", category: true, active: true}, filter)
	err := query.Order("category ASC, title ASC").Find(&templates).Error
	return templates, err
}

func (r *RemarksTemplateRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.RemarksTemplate{}, id, updates)
}

func (r *RemarksTemplateRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.RemarksTemplate{}, id)
}
