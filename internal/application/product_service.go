package application

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	repo "github.com/rizkyamp/go-store-api/internal/domain/repository"
)

var ErrProductNotFound = errors.New("Product not found.")

func errProductExists(name string) error {
	return fmt.Errorf("Product with name %q already exists.", name)
}

// ProductFilters narrows a listing. Price filters on the decimal-string
// prefix of the rendered price, not on numeric equality.
type ProductFilters struct {
	Name  string
	Price *float64
}

// Pagination is 1-indexed; offset is (page-1)*size.
type Pagination struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Sort echoes the requested ordering back to the client. Directions other
// than asc/desc leave the store's natural order untouched.
type Sort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// ProductPage is a listing result: one page of data plus the total match
// count for the same filter without pagination.
type ProductPage struct {
	Data       []entity.Product
	Total      int64
	Pagination Pagination
	Sort       Sort
}

// ProductUpdateInput carries an update payload. Name and price are always
// present (the handler requires both); description is applied only when set.
type ProductUpdateInput struct {
	Name        string
	Description *string
	Price       float64
}

type ProductService struct {
	Repo   repo.ProductRepository
	Logger *logrus.Logger
}

func NewProductService(r repo.ProductRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{Repo: r, Logger: logger}
}

// Create persists a new product after checking name uniqueness.
func (s *ProductService) Create(name string, description *string, price float64) (*entity.Product, error) {
	existing, err := s.Repo.GetByName(name)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errProductExists(name)
	}

	p := &entity.Product{Name: name, Description: description, Price: price}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"product_id": p.ID, "name": p.Name}).Info("product created")
	}
	return p, nil
}

// GetAll lists products under the given filters, pagination and sort.
func (s *ProductService) GetAll(filters ProductFilters, pagination Pagination, sort Sort) (*ProductPage, error) {
	q := repo.ProductQuery{
		NameContains:  filters.Name,
		SortField:     sort.Field,
		SortDirection: sort.Direction,
		Offset:        (pagination.Page - 1) * pagination.Size,
		Limit:         pagination.Size,
	}
	if filters.Price != nil {
		q.PricePrefix = entity.PriceString(*filters.Price)
	}

	total, err := s.Repo.Count(q)
	if err != nil {
		return nil, err
	}
	data, err := s.Repo.Find(q)
	if err != nil {
		return nil, err
	}

	return &ProductPage{Data: data, Total: total, Pagination: pagination, Sort: sort}, nil
}

// Update replaces name and price and optionally the description. An id
// that is not a valid identifier and an id with no record behind it are
// deliberately indistinguishable: both report a missing product.
func (s *ProductService) Update(id string, in ProductUpdateInput) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrProductNotFound
	}
	p, err := s.Repo.GetByID(id)
	if err != nil || p == nil {
		return nil, ErrProductNotFound
	}

	if in.Name != "" {
		existing, err := s.Repo.GetByName(in.Name)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errProductExists(in.Name)
		}
	}

	updated, err := s.Repo.Update(id, repo.ProductUpdate{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a product under the same id-validity rules as Update.
func (s *ProductService) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrProductNotFound
	}
	p, err := s.Repo.GetByID(id)
	if err != nil || p == nil {
		return ErrProductNotFound
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}
