package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists employees in PostgreSQL using GORM. Roles live in a text[] column.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type employeeRecord struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id"`
	Username  string         `gorm:"column:username;uniqueIndex"`
	FullName  string         `gorm:"column:full_name;index"`
	Email     string         `gorm:"column:email"`
	Roles     pq.StringArray `gorm:"column:roles;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at;index"`
}

func (employeeRecord) TableName() string { return "employees" }

func (r *Repository) Save(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	if err := employee.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(employee)
	tx := r.db.WithContext(ctx)
	var err error
	if record.ID == 0 {
		err = tx.Create(&record).Error
	} else {
		err = tx.Save(&record).Error
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &pgErr) && pgErr.Code == "23505") {
			return nil, ports.ErrUsernameTaken
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record employeeRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List filters on username or full name and returns the newest accounts first.
func (r *Repository) List(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Employee], error) {
	query = query.Normalize()
	page := pagination.Page[*domain.Employee]{Page: query.Page, Limit: query.Limit}
	if err := r.ensureDB(); err != nil {
		return page, err
	}
	scope := r.db.WithContext(ctx).Model(&employeeRecord{})
	if keyword := strings.TrimSpace(query.Keyword); keyword != "" {
		like := "%" + keyword + "%"
		scope = scope.Where("username ILIKE ? OR full_name ILIKE ?", like, like)
	}
	if err := scope.Count(&page.Total).Error; err != nil {
		return page, err
	}
	var records []employeeRecord
	if err := scope.Order("created_at DESC").Order("id DESC").
		Limit(query.Limit).Offset(query.Offset()).
		Find(&records).Error; err != nil {
		return page, err
	}
	page.Items = make([]*domain.Employee, 0, len(records))
	for i := range records {
		page.Items = append(page.Items, records[i].toDomain())
	}
	return page, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&employeeRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres employee repository not configured")
	}
	return nil
}

func toRecord(e *domain.Employee) employeeRecord {
	return employeeRecord{
		ID:        e.ID,
		Username:  e.Username,
		FullName:  e.FullName,
		Email:     e.Email,
		Roles:     pq.StringArray(e.RoleStrings()),
		CreatedAt: e.CreatedAt,
	}
}

func (r employeeRecord) toDomain() *domain.Employee {
	roles := make([]domain.Role, 0, len(r.Roles))
	for _, role := range r.Roles {
		roles = append(roles, domain.Role(role))
	}
	return &domain.Employee{
		ID:        r.ID,
		Username:  r.Username,
		FullName:  r.FullName,
		Email:     r.Email,
		Roles:     roles,
		CreatedAt: r.CreatedAt,
	}
}
