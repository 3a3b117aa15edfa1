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

// ExpenseRepository stores append-only expense entries with store-generated ids.
type ExpenseRepository struct {
	DB *store.Firestore
}

type expenseDoc struct {
	Date        time.Time `firestore:"date"`
	ExpenseType string    `firestore:"expenseType"`
	Amount      float64   `firestore:"amount"`
	PaymentMode string    `firestore:"paymentMode"`
	Period      string    `firestore:"period"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

func (r ExpenseRepository) Add(ctx context.Context, e domain.Expense) error {
	_, _, err := r.DB.Client.Collection(store.Expenses).Add(ctx, expenseDoc{
		Date:        e.Date,
		ExpenseType: e.ExpenseType,
		Amount:      e.Amount.InexactFloat64(),
		PaymentMode: e.PaymentMode,
		Period:      e.Period,
		CreatedAt:   e.CreatedAt,
	})
	return err
}

// Sum totals expense amounts with date in [start, end].
func (r ExpenseRepository) Sum(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	iter := r.DB.Client.Collection(store.Expenses).
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
		var doc expenseDoc
		if err := snap.DataTo(&doc); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(decimal.NewFromFloat(doc.Amount))
	}
	return total, nil
}

// ListInRange returns expenses, optionally bounded by date.
func (r ExpenseRepository) ListInRange(ctx context.Context, start, end *time.Time, limit int) ([]domain.Expense, error) {
	q := r.DB.Client.Collection(store.Expenses).Query
	if start != nil {
		q = q.Where("date", ">=", *start)
	}
	if end != nil {
		q = q.Where("date", "<=", endOfDay(*end))
	}
	iter := q.OrderBy("date", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var items []domain.Expense
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc expenseDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		items = append(items, domain.Expense{
			Date:        doc.Date,
			ExpenseType: doc.ExpenseType,
			Amount:      decimal.NewFromFloat(doc.Amount),
			PaymentMode: doc.PaymentMode,
			Period:      doc.Period,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return items, nil
}
