package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names in Firestore.
const (
	Customers         = "customers"
	Transactions      = "transactions"
	Expenses          = "expenses"
	WhatsAppCustomers = "whatsapp_customers"
)

// Firestore wraps the Firestore client used by all repositories.
type Firestore struct {
	Client *firestore.Client
}

// New obtains a Firestore client from an initialised Firebase app and
// verifies connectivity with a one-document read.
func New(ctx context.Context, app *firebase.App) (*Firestore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	fs := &Firestore{Client: client}

	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := fs.Health(probeCtx); err != nil {
		client.Close()
		return nil, fmt.Errorf("firestore probe failed: %w", err)
	}
	return fs, nil
}

func (f *Firestore) Close() {
	if f.Client != nil {
		_ = f.Client.Close()
	}
}

// Health checks store connectivity by reading at most one customer document.
func (f *Firestore) Health(ctx context.Context) error {
	iter := f.Client.Collection(Customers).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

// IsNotFound checks for a Firestore missing-document error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// IsAlreadyExists checks for a Firestore create-precondition failure.
func IsAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
