package repository

import (
	"github.com/rizkyamp/go-store-api/internal/domain/entity"
)

// ProductQuery describes a filtered, sorted, paginated product lookup.
// A direction other than "asc" or "desc", or an unknown sort field,
// leaves the natural store order untouched.
type ProductQuery struct {
	NameContains  string // case-insensitive substring match on name
	PricePrefix   string // prefix match on the decimal-string rendering of price
	SortField     string
	SortDirection string
	Offset        int
	Limit         int
}

// ProductUpdate carries the fields an update writes. A nil Description
// leaves the stored description unchanged.
type ProductUpdate struct {
	Name        string
	Description *string
	Price       float64
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Find(q ProductQuery) ([]entity.Product, error)
	Count(q ProductQuery) (int64, error)
	Update(id string, upd ProductUpdate) (*entity.Product, error)
	Delete(id string) error
}
