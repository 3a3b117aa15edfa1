package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/store"
)

// WhatsAppRepository stores derived WhatsApp subscription records.
type WhatsAppRepository struct {
	DB *store.Firestore
}

type whatsAppDoc struct {
	CustomerName   string    `firestore:"customerName"`
	Mobile         string    `firestore:"mobile"`
	Plan           string    `firestore:"plan"`
	Status         string    `firestore:"status"`
	OnboardingDate time.Time `firestore:"onboardingDate"`
	NextDueDate    time.Time `firestore:"nextDueDate"`
	CreatedAt      time.Time `firestore:"createdAt"`
}

func (r WhatsAppRepository) Add(ctx context.Context, s domain.WhatsAppSubscription) error {
	_, _, err := r.DB.Client.Collection(store.WhatsAppCustomers).Add(ctx, whatsAppDoc{
		CustomerName:   s.CustomerName,
		Mobile:         s.Mobile,
		Plan:           s.Plan,
		Status:         string(s.Status),
		OnboardingDate: s.OnboardingDate,
		NextDueDate:    s.NextDueDate,
		CreatedAt:      s.CreatedAt,
	})
	return err
}

func (r WhatsAppRepository) List(ctx context.Context, limit int) ([]domain.WhatsAppSubscription, error) {
	iter := r.DB.Client.Collection(store.WhatsAppCustomers).
		OrderBy("nextDueDate", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var items []domain.WhatsAppSubscription
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc whatsAppDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		items = append(items, domain.WhatsAppSubscription{
			CustomerName:   doc.CustomerName,
			Mobile:         doc.Mobile,
			Plan:           doc.Plan,
			Status:         domain.SubscriptionStatus(doc.Status),
			OnboardingDate: doc.OnboardingDate,
			NextDueDate:    doc.NextDueDate,
			CreatedAt:      doc.CreatedAt,
		})
	}
	return items, nil
}
