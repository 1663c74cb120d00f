package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return nil, domain.ErrProductExists
		}
	}
	r.nextID++
	clone := *p
	clone.ID = "product-" + strconv.Itoa(r.nextID)
	r.products[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubProductRepo) FindByKey(_ context.Context, key string) (*domain.Product, error) {
	if p, ok := r.products[key]; ok {
		clone := *p
		return &clone, nil
	}
	for _, p := range r.products {
		if p.Name == key {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ ports.Page) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, key string, upd ports.ProductUpdate) (*domain.Product, error) {
	p, err := r.FindByKey(context.Background(), key)
	if err != nil {
		return nil, err
	}
	stored := r.products[p.ID]
	if upd.Name != nil {
		stored.Name = *upd.Name
	}
	if upd.Price != nil {
		stored.Price = *upd.Price
	}
	if upd.Image != nil {
		stored.Image = *upd.Image
	}
	if upd.Type != nil {
		stored.Type = *upd.Type
	}
	clone := *stored
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, key string) error {
	p, err := r.FindByKey(context.Background(), key)
	if err != nil {
		return err
	}
	delete(r.products, p.ID)
	return nil
}

func TestProductService_Create_Success(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "papas fritas", Price: 5})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.DateEntry.IsZero() {
		t.Fatalf("expected dateEntry to be stamped")
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Price: 5}); !errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "agua"}); !errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct for missing price, got %v", err)
	}
}

func TestProductService_Create_DuplicateName(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	in := ports.CreateProductInput{Name: "hamburguesa", Price: 10}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
}

func TestProductService_Update_NonIntegerPrice(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "jugo", Price: 7})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bad := 7.5
	if _, err := svc.Update(context.Background(), p.ID, ports.UpdateProductInput{Price: &bad}); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	good := 8.0
	updated, err := svc.Update(context.Background(), p.ID, ports.UpdateProductInput{Price: &good})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 8 {
		t.Fatalf("expected price 8, got %v", updated.Price)
	}
}

func TestProductService_Update_EmptyBody(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "any", ports.UpdateProductInput{}); !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}
