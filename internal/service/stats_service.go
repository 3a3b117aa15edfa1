package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
)

type IncomeSummer interface {
	SumIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

type ExpenseSummer interface {
	Sum(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

// StatsService aggregates ledger records over inclusive calendar-day ranges.
type StatsService struct {
	Transactions IncomeSummer
	Expenses     ExpenseSummer
}

// Sum totals the requested kind over [start, end], both days inclusive:
// start is taken from midnight, end through 23:59:59.999. Profit is the
// income sum minus the expense sum over the same range.
func (s StatsService) Sum(ctx context.Context, kind domain.StatKind, start, end time.Time) (decimal.Decimal, error) {
	from := startOfDay(start)
	to := endOfDay(end)
	switch kind {
	case domain.StatIncome:
		return s.Transactions.SumIncome(ctx, from, to)
	case domain.StatExpense:
		return s.Expenses.Sum(ctx, from, to)
	case domain.StatProfit:
		income, err := s.Transactions.SumIncome(ctx, from, to)
		if err != nil {
			return decimal.Zero, err
		}
		expense, err := s.Expenses.Sum(ctx, from, to)
		if err != nil {
			return decimal.Zero, err
		}
		return income.Sub(expense), nil
	}
	return decimal.Zero, fmt.Errorf("unknown statistics kind %q", kind)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
