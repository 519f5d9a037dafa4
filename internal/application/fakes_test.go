package application

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	repo "github.com/rizkyamp/go-store-api/internal/domain/repository"
)

// In-memory repositories mirroring the persistence contract, including
// the filter, sort and pagination semantics of the real store.

type fakeUserRepo struct {
	users []entity.User
	err   error // when set, every operation fails with it
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.getBy(func(u entity.User) bool { return u.Email == email })
}

func (f *fakeUserRepo) GetByName(name string) (*entity.User, error) {
	return f.getBy(func(u entity.User) bool { return u.Name == name })
}

func (f *fakeUserRepo) GetByRole(role entity.Role) (*entity.User, error) {
	return f.getBy(func(u entity.User) bool { return u.Role == role })
}

func (f *fakeUserRepo) getBy(match func(entity.User) bool) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if match(f.users[i]) {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeProductRepo struct {
	products []entity.Product
	seq      int
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = uuid.NewString()
	f.seq++
	// spread creation times so natural order is observable
	p.CreatedAt = time.Unix(int64(f.seq), 0)
	p.UpdatedAt = p.CreatedAt
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].Name == name {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeProductRepo) matches(q repo.ProductQuery) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range f.products {
		if q.NameContains != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.NameContains)) {
			continue
		}
		if q.PricePrefix != "" && !entity.PriceHasPrefix(p.Price, q.PricePrefix) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (f *fakeProductRepo) Find(q repo.ProductQuery) ([]entity.Product, error) {
	out := f.matches(q)

	asc := q.SortDirection == "asc"
	if asc || q.SortDirection == "desc" {
		less := func(a, b entity.Product) bool { return false }
		switch q.SortField {
		case "name":
			less = func(a, b entity.Product) bool { return a.Name < b.Name }
		case "price":
			less = func(a, b entity.Product) bool { return a.Price < b.Price }
		case "createdAt", "created_at":
			less = func(a, b entity.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
		}
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return less(out[i], out[j])
			}
			return less(out[j], out[i])
		})
	}

	if q.Offset >= len(out) {
		return []entity.Product{}, nil
	}
	out = out[q.Offset:]
	if q.Limit > 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Count(q repo.ProductQuery) (int64, error) {
	return int64(len(f.matches(q))), nil
}

func (f *fakeProductRepo) Update(id string, upd repo.ProductUpdate) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Name = upd.Name
			f.products[i].Price = upd.Price
			if upd.Description != nil {
				f.products[i].Description = upd.Description
			}
			f.products[i].UpdatedAt = time.Now()
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeProductRepo) Delete(id string) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

var (
	_ repo.UserRepository    = (*fakeUserRepo)(nil)
	_ repo.ProductRepository = (*fakeProductRepo)(nil)
)

func seedProducts(f *fakeProductRepo, prices ...float64) {
	for i, price := range prices {
		_ = f.Create(&entity.Product{Name: fmt.Sprintf("product-%d", i+1), Price: price})
	}
}
