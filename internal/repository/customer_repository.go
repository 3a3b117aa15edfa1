package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/store"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// CustomerRepository stores customers keyed by name.
type CustomerRepository struct {
	DB *store.Firestore
}

type customerDoc struct {
	Name           string    `firestore:"name"`
	Mobile         string    `firestore:"mobile"`
	Services       []string  `firestore:"services"`
	OnboardingDate time.Time `firestore:"onboardingDate"`
	CreatedAt      time.Time `firestore:"createdAt"`
}

func (r CustomerRepository) Get(ctx context.Context, name string) (*domain.Customer, error) {
	snap, err := r.DB.Client.Collection(store.Customers).Doc(name).Get(ctx)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var doc customerDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

// Create writes a new customer document. The document id is the customer
// name and the store rejects an existing id, so the duplicate check and the
// write are a single operation.
func (r CustomerRepository) Create(ctx context.Context, c domain.Customer) error {
	_, err := r.DB.Client.Collection(store.Customers).Doc(c.Name).Create(ctx, customerDoc{
		Name:           c.Name,
		Mobile:         c.Mobile,
		Services:       c.Services,
		OnboardingDate: c.OnboardingDate,
		CreatedAt:      c.CreatedAt,
	})
	if err != nil {
		if store.IsAlreadyExists(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r CustomerRepository) List(ctx context.Context, limit int) ([]domain.Customer, error) {
	iter := r.DB.Client.Collection(store.Customers).
		OrderBy("name", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var items []domain.Customer
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc customerDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		items = append(items, doc.toDomain())
	}
	return items, nil
}

func (d customerDoc) toDomain() domain.Customer {
	return domain.Customer{
		Name:           d.Name,
		Mobile:         d.Mobile,
		Services:       d.Services,
		OnboardingDate: d.OnboardingDate,
		CreatedAt:      d.CreatedAt,
	}
}
