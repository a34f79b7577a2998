package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

const uniqueViolation = "23505"

var _ ports.Repository = (*Repository)(nil)

// Repository persists categories in PostgreSQL using GORM. The schema is owned by the migrations package.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type categoryRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name        string    `gorm:"column:name"`
	Slug        string    `gorm:"column:slug;uniqueIndex"`
	Description string    `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (categoryRecord) TableName() string { return "categories" }

// Save inserts new categories and fully rewrites existing ones.
func (r *Repository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category is nil")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(category)
	tx := r.db.WithContext(ctx)
	var err error
	if record.ID == 0 {
		err = tx.Create(&record).Error
	} else {
		err = tx.Save(&record).Error
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ports.ErrSlugTaken
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.first(ctx, "slug = ?", strings.TrimSpace(slug))
}

func (r *Repository) List(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Category], error) {
	query = query.Normalize()
	if err := r.ensureDB(); err != nil {
		return pagination.Page[*domain.Category]{}, err
	}
	base := r.db.WithContext(ctx).Model(&categoryRecord{})
	if keyword := strings.TrimSpace(query.Keyword); keyword != "" {
		like := "%" + keyword + "%"
		base = base.Where("name ILIKE ? OR slug ILIKE ?", like, like)
	}
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[*domain.Category]{}, err
	}
	var records []categoryRecord
	if err := base.Order("id").Limit(query.Limit).Offset(query.Offset()).Find(&records).Error; err != nil {
		return pagination.Page[*domain.Category]{}, err
	}
	items := make([]*domain.Category, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return pagination.Page[*domain.Category]{Items: items, Total: total, Page: query.Page, Limit: query.Limit}, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&categoryRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) first(ctx context.Context, where string, arg any) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := r.db.WithContext(ctx).Where(where, arg).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres category repository not configured")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func toRecord(c *domain.Category) categoryRecord {
	return categoryRecord{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r categoryRecord) toDomain() *domain.Category {
	return &domain.Category{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
