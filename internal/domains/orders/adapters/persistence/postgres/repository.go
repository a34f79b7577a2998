package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and their line items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle
// and schema (see internal/platform/migrations).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type orderRecord struct {
	ID            int64           `gorm:"primaryKey;autoIncrement;column:id"`
	FullName      string          `gorm:"column:full_name;index"`
	Phone         string          `gorm:"column:phone"`
	Address       string          `gorm:"column:address"`
	PaymentMethod string          `gorm:"column:payment_method;type:varchar(32)"`
	IsPaid        bool            `gorm:"column:is_paid"`
	PaidDate      *time.Time      `gorm:"column:paid_date"`
	Status        string          `gorm:"column:status;type:varchar(32);index"`
	ShippingCost  decimal.Decimal `gorm:"column:shipping_cost;type:numeric(12,2)"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:numeric(12,2)"`
	CreatedDate   time.Time       `gorm:"column:created_date;index"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	Items         []itemRecord    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (orderRecord) TableName() string { return "orders" }

type itemRecord struct {
	ID              int64           `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID         int64           `gorm:"column:order_id;index"`
	Position        int             `gorm:"column:position"`
	VariantID       int64           `gorm:"column:variant_id;index"`
	ProductName     string          `gorm:"column:product_name"`
	OrderedQuantity int32           `gorm:"column:ordered_quantity"`
	OrderedPrice    decimal.Decimal `gorm:"column:ordered_price;type:numeric(12,2)"`
}

func (itemRecord) TableName() string { return "order_items" }

// Save upserts the order row and replaces its items in one transaction.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	items := record.Items
	record.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"full_name":      record.FullName,
				"phone":          record.Phone,
				"address":        record.Address,
				"payment_method": record.PaymentMethod,
				"is_paid":        record.IsPaid,
				"paid_date":      record.PaidDate,
				"status":         record.Status,
				"shipping_cost":  record.ShippingCost,
				"total_price":    record.TotalPrice,
				"updated_at":     gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", record.ID).Delete(&itemRecord{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].OrderID = record.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order with its items.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).Preload("Items", orderItems).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns one page of orders, newest first, optionally filtered by customer name.
func (r *Repository) List(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Order], error) {
	query = query.Normalize()
	page := pagination.Page[*domain.Order]{Page: query.Page, Limit: query.Limit}
	if err := r.ensureDB(); err != nil {
		return page, err
	}
	scope := r.db.WithContext(ctx).Model(&orderRecord{})
	if keyword := strings.TrimSpace(query.Keyword); keyword != "" {
		scope = scope.Where("full_name ILIKE ?", "%"+keyword+"%")
	}
	if err := scope.Count(&page.Total).Error; err != nil {
		return page, err
	}
	var records []orderRecord
	if err := scope.Preload("Items", orderItems).
		Order("created_date DESC").Order("id DESC").
		Limit(query.Limit).Offset(query.Offset()).
		Find(&records).Error; err != nil {
		return page, err
	}
	page.Items = toDomainList(records)
	return page, nil
}

// All loads every order for the revenue reducers.
func (r *Repository) All(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Preload("Items", orderItems).
		Order("created_date DESC").Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func toRecord(order *domain.Order) orderRecord {
	rec := orderRecord{
		ID:            order.ID,
		FullName:      order.FullName,
		Phone:         order.Phone,
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod,
		IsPaid:        order.IsPaid,
		Status:        string(order.Status),
		ShippingCost:  order.ShippingCost,
		TotalPrice:    order.TotalPrice,
		CreatedDate:   order.CreatedDate,
	}
	if order.PaidDate != nil {
		paid := order.PaidDate.UTC()
		rec.PaidDate = &paid
	}
	if rec.CreatedDate.IsZero() {
		rec.CreatedDate = time.Now().UTC()
	}
	for i, item := range order.Items {
		rec.Items = append(rec.Items, itemRecord{
			Position:        i,
			VariantID:       item.VariantID,
			ProductName:     item.ProductName,
			OrderedQuantity: item.OrderedQuantity,
			OrderedPrice:    item.OrderedPrice,
		})
	}
	return rec
}

func (r orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ID:            r.ID,
		FullName:      r.FullName,
		Phone:         r.Phone,
		Address:       r.Address,
		PaymentMethod: r.PaymentMethod,
		IsPaid:        r.IsPaid,
		PaidDate:      r.PaidDate,
		Status:        domain.Status(r.Status),
		ShippingCost:  r.ShippingCost,
		TotalPrice:    r.TotalPrice,
		CreatedDate:   r.CreatedDate,
		Items:         make([]domain.OrderItem, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		order.Items = append(order.Items, domain.OrderItem{
			VariantID:       item.VariantID,
			ProductName:     item.ProductName,
			OrderedQuantity: item.OrderedQuantity,
			OrderedPrice:    item.OrderedPrice,
		})
	}
	return order
}

func toDomainList(records []orderRecord) []*domain.Order {
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders
}
