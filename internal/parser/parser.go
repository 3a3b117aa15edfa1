// Package parser classifies free-form chat lines into typed commands.
//
// Matchers run in a fixed priority order: income line, expense line,
// new-customer line, statistics keyword. The first structural match wins;
// a line whose numeric or date fields fail to parse is treated as not
// matching that grammar and falls through to the next one.
package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

// Command is one classified chat line. A nil Command means the line matched
// no grammar.
type Command interface {
	command()
}

// Income is `YYYY-MM-DD: Customer: Amount: Payment Mode: Channel Rate[:]`.
type Income struct {
	Date        time.Time
	Customer    string
	Amount      decimal.Decimal
	PaymentMode string
	Channel     decimal.Decimal
}

// Expense is `Expense YYYY-MM-DD: Type: Amount: Mode: Period[:]`.
type Expense struct {
	Date        time.Time
	ExpenseType string
	Amount      decimal.Decimal
	PaymentMode string
	Period      string
}

// NewCustomer is `Name: Mob: Service: Date[:]`.
type NewCustomer struct {
	Name           string
	Mobile         string
	Services       []string
	OnboardingDate time.Time
}

// Stats is a bare `income`, `expense` or `profit` keyword.
type Stats struct {
	Kind domain.StatKind
}

func (Income) command()      {}
func (Expense) command()     {}
func (NewCustomer) command() {}
func (Stats) command()       {}

var (
	incomeRe   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s*:\s*([^:]+)\s*:\s*(\d+(?:\.\d+)?)\s*:\s*([^:]+)\s*:\s*(\d+(?:\.\d+)?)\s*:?$`)
	expenseRe  = regexp.MustCompile(`(?i)^expense\s+(\d{4}-\d{2}-\d{2})\s*:\s*([^:]+)\s*:\s*(\d+(?:\.\d+)?)\s*:\s*([^:]+)\s*:\s*([^:]+?)\s*:?$`)
	customerRe = regexp.MustCompile(`^([^:]+)\s*:\s*(\+?\d{10,15})\s*:\s*([^:]+)\s*:\s*(\d{4}-\d{2}-\d{2})\s*:?$`)
)

var matchers = []func(string) Command{
	matchIncome,
	matchExpense,
	matchNewCustomer,
	matchStatsKeyword,
}

// Classify runs the grammar pipeline over one trimmed line.
func Classify(text string) Command {
	text = strings.TrimSpace(text)
	for _, match := range matchers {
		if cmd := match(text); cmd != nil {
			return cmd
		}
	}
	return nil
}

func matchIncome(text string) Command {
	m := incomeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	date, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return nil
	}
	amount, err := decimal.NewFromString(m[3])
	if err != nil {
		return nil
	}
	channel, err := decimal.NewFromString(m[5])
	if err != nil {
		return nil
	}
	return Income{
		Date:        date,
		Customer:    strings.TrimSpace(m[2]),
		Amount:      amount,
		PaymentMode: strings.TrimSpace(m[4]),
		Channel:     channel,
	}
}

func matchExpense(text string) Command {
	m := expenseRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	date, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return nil
	}
	amount, err := decimal.NewFromString(m[3])
	if err != nil {
		return nil
	}
	return Expense{
		Date:        date,
		ExpenseType: strings.TrimSpace(m[2]),
		Amount:      amount,
		PaymentMode: strings.TrimSpace(m[4]),
		Period:      strings.TrimSpace(m[5]),
	}
}

func matchNewCustomer(text string) Command {
	m := customerRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	date, err := time.Parse(dateLayout, m[4])
	if err != nil {
		return nil
	}
	return NewCustomer{
		Name:           strings.TrimSpace(m[1]),
		Mobile:         strings.TrimSpace(m[2]),
		Services:       []string{strings.TrimSpace(m[3])},
		OnboardingDate: date,
	}
}

func matchStatsKeyword(text string) Command {
	switch domain.StatKind(strings.ToLower(text)) {
	case domain.StatIncome:
		return Stats{Kind: domain.StatIncome}
	case domain.StatExpense:
		return Stats{Kind: domain.StatExpense}
	case domain.StatProfit:
		return Stats{Kind: domain.StatProfit}
	}
	return nil
}
