package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/store"
)

// TransactionRepository stores append-only income transactions with
// store-generated ids.
type TransactionRepository struct {
	DB *store.Firestore
}

type transactionDoc struct {
	Type        string    `firestore:"type"`
	Date        time.Time `firestore:"date"`
	Customer    string    `firestore:"customer"`
	Amount      float64   `firestore:"amount"`
	PaymentMode string    `firestore:"paymentMode"`
	Channel     float64   `firestore:"channel"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

func (r TransactionRepository) Add(ctx context.Context, t domain.Transaction) error {
	_, _, err := r.DB.Client.Collection(store.Transactions).Add(ctx, transactionDoc{
		Type:        string(t.Type),
		Date:        t.Date,
		Customer:    t.Customer,
		Amount:      t.Amount.InexactFloat64(),
		PaymentMode: t.PaymentMode,
		Channel:     t.Channel.InexactFloat64(),
		CreatedAt:   t.CreatedAt,
	})
	return err
}

// SumIncome totals INCOME transaction amounts with date in [start, end].
func (r TransactionRepository) SumIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	iter := r.DB.Client.Collection(store.Transactions).
		Where("type", "==", string(domain.TxIncome)).
		Where("date", ">=", start).
		Where("date", "<=", end).
		Documents(ctx)
	defer iter.Stop()

	total := decimal.Zero
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return decimal.Zero, err
		}
		var doc transactionDoc
		if err := snap.DataTo(&doc); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(decimal.NewFromFloat(doc.Amount))
	}
	return total, nil
}

// ListInRange returns INCOME transactions, optionally bounded by date.
func (r TransactionRepository) ListInRange(ctx context.Context, start, end *time.Time, limit int) ([]domain.Transaction, error) {
	q := r.DB.Client.Collection(store.Transactions).
		Where("type", "==", string(domain.TxIncome))
	if start != nil {
		q = q.Where("date", ">=", *start)
	}
	if end != nil {
		q = q.Where("date", "<=", endOfDay(*end))
	}
	iter := q.OrderBy("date", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var items []domain.Transaction
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc transactionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		items = append(items, domain.Transaction{
			Type:        domain.TransactionType(doc.Type),
			Date:        doc.Date,
			Customer:    doc.Customer,
			Amount:      decimal.NewFromFloat(doc.Amount),
			PaymentMode: doc.PaymentMode,
			Channel:     decimal.NewFromFloat(doc.Channel),
			CreatedAt:   doc.CreatedAt,
		})
	}
	return items, nil
}

// endOfDay pushes a date bound to the last represented instant of that day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
