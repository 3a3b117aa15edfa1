package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Enumerations
const (
	TxIncome  TransactionType = "INCOME"
	TxExpense TransactionType = "EXPENSE"

	SubscriptionActive SubscriptionStatus = "ACTIVE"

	StatIncome  StatKind = "income"
	StatExpense StatKind = "expense"
	StatProfit  StatKind = "profit"
)

type TransactionType string
type SubscriptionStatus string
type StatKind string

// RenewalCycle is the WhatsApp subscription billing cycle applied at onboarding.
const RenewalCycle = 30 * 24 * time.Hour

// Customer identity is its name; customers are created once and never deleted.
type Customer struct {
	Name           string
	Mobile         string
	Services       []string
	OnboardingDate time.Time
	CreatedAt      time.Time
}

// Transaction is an append-only income entry referencing an existing customer.
type Transaction struct {
	Type        TransactionType
	Date        time.Time
	Customer    string
	Amount      decimal.Decimal
	PaymentMode string
	Channel     decimal.Decimal
	CreatedAt   time.Time
}

// Expense is an append-only outgoing entry.
type Expense struct {
	Date        time.Time
	ExpenseType string
	Amount      decimal.Decimal
	PaymentMode string
	Period      string
	CreatedAt   time.Time
}

// WhatsAppSubscription is derived once when a customer onboards with a
// WhatsApp service. NextDueDate is fixed at onboarding + RenewalCycle;
// renewals do not revise it here.
type WhatsAppSubscription struct {
	CustomerName   string
	Mobile         string
	Plan           string
	Status         SubscriptionStatus
	OnboardingDate time.Time
	NextDueDate    time.Time
	CreatedAt      time.Time
}
