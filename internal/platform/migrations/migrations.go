package migrations

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&orderItemRecord{},
		&categoryRecord{},
		&employeeRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
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
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID              int64           `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID         int64           `gorm:"column:order_id;index"`
	Position        int             `gorm:"column:position"`
	VariantID       int64           `gorm:"column:variant_id;index"`
	ProductName     string          `gorm:"column:product_name"`
	OrderedQuantity int32           `gorm:"column:ordered_quantity"`
	OrderedPrice    decimal.Decimal `gorm:"column:ordered_price;type:numeric(12,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Category schema mirrors the catalog Postgres adapter.
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

// Employee schema mirrors the employees Postgres adapter.
type employeeRecord struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id"`
	Username  string         `gorm:"column:username;uniqueIndex"`
	FullName  string         `gorm:"column:full_name;index"`
	Email     string         `gorm:"column:email"`
	Roles     pq.StringArray `gorm:"column:roles;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at;index"`
}

func (employeeRecord) TableName() string { return "employees" }
