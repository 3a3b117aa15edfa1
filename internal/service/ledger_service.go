package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/repository"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("customer already exists")
)

// Store capabilities the ledger needs, satisfied by the Firestore repositories.
type CustomerStore interface {
	Get(ctx context.Context, name string) (*domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) error
}

type TransactionStore interface {
	Add(ctx context.Context, t domain.Transaction) error
}

type ExpenseStore interface {
	Add(ctx context.Context, e domain.Expense) error
}

type SubscriptionStore interface {
	Add(ctx context.Context, s domain.WhatsAppSubscription) error
}

// LedgerService validates and persists parsed chat entries.
type LedgerService struct {
	Customers     CustomerStore
	Transactions  TransactionStore
	Expenses      ExpenseStore
	Subscriptions SubscriptionStore
}

type IncomeInput struct {
	Date        time.Time
	Customer    string
	Amount      decimal.Decimal
	PaymentMode string
	Channel     decimal.Decimal
}

type ExpenseInput struct {
	Date        time.Time
	ExpenseType string
	Amount      decimal.Decimal
	PaymentMode string
	Period      string
}

type CustomerInput struct {
	Name           string
	Mobile         string
	Services       []string
	OnboardingDate time.Time
}

// RecordIncome appends an income transaction after checking that the
// referenced customer exists. Returns ErrCustomerNotFound otherwise.
func (s LedgerService) RecordIncome(ctx context.Context, in IncomeInput) error {
	if _, err := s.Customers.Get(ctx, in.Customer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("look up customer %q: %w", in.Customer, err)
	}
	tx := domain.Transaction{
		Type:        domain.TxIncome,
		Date:        in.Date,
		Customer:    in.Customer,
		Amount:      in.Amount,
		PaymentMode: in.PaymentMode,
		Channel:     in.Channel,
		CreatedAt:   time.Now(),
	}
	if err := s.Transactions.Add(ctx, tx); err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}
	return nil
}

// RecordExpense appends an expense entry unconditionally.
func (s LedgerService) RecordExpense(ctx context.Context, in ExpenseInput) error {
	e := domain.Expense{
		Date:        in.Date,
		ExpenseType: in.ExpenseType,
		Amount:      in.Amount,
		PaymentMode: in.PaymentMode,
		Period:      in.Period,
		CreatedAt:   time.Now(),
	}
	if err := s.Expenses.Add(ctx, e); err != nil {
		return fmt.Errorf("add expense: %w", err)
	}
	return nil
}

// CreateCustomer stores a new customer and, when any subscribed service name
// contains "whatsapp", derives exactly one WhatsApp subscription due one
// renewal cycle after onboarding. Creation is rejected with ErrCustomerExists
// when the name is already taken; it is never an upsert.
func (s LedgerService) CreateCustomer(ctx context.Context, in CustomerInput) error {
	now := time.Now()
	c := domain.Customer{
		Name:           in.Name,
		Mobile:         in.Mobile,
		Services:       in.Services,
		OnboardingDate: in.OnboardingDate,
		CreatedAt:      now,
	}
	if err := s.Customers.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return ErrCustomerExists
		}
		return fmt.Errorf("create customer %q: %w", in.Name, err)
	}
	if !hasWhatsAppService(in.Services) {
		return nil
	}
	sub := domain.WhatsAppSubscription{
		CustomerName:   in.Name,
		Mobile:         in.Mobile,
		Plan:           "Monthly",
		Status:         domain.SubscriptionActive,
		OnboardingDate: in.OnboardingDate,
		NextDueDate:    in.OnboardingDate.Add(domain.RenewalCycle),
		CreatedAt:      now,
	}
	if err := s.Subscriptions.Add(ctx, sub); err != nil {
		return fmt.Errorf("add whatsapp subscription for %q: %w", in.Name, err)
	}
	return nil
}

func hasWhatsAppService(services []string) bool {
	for _, svc := range services {
		if strings.Contains(strings.ToLower(svc), "whatsapp") {
			return true
		}
	}
	return false
}
