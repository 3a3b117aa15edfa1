package parser_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/parser"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassify_Income(t *testing.T) {
	tests := []struct {
		name string
		text string
		want parser.Income
	}{
		{
			name: "WithTrailingColon",
			text: "2024-03-01: Alice: 1500.50: UPI: 0.70:",
			want: parser.Income{
				Date:        date("2024-03-01"),
				Customer:    "Alice",
				Amount:      decimal.RequireFromString("1500.50"),
				PaymentMode: "UPI",
				Channel:     decimal.RequireFromString("0.70"),
			},
		},
		{
			name: "WithoutTrailingColon",
			text: "2024-03-01: Alice: 1500.50: UPI: 0.70",
			want: parser.Income{
				Date:        date("2024-03-01"),
				Customer:    "Alice",
				Amount:      decimal.RequireFromString("1500.50"),
				PaymentMode: "UPI",
				Channel:     decimal.RequireFromString("0.70"),
			},
		},
		{
			name: "LooseWhitespace",
			text: "  2024-12-31 :  Bob Traders :100: Cash :2  ",
			want: parser.Income{
				Date:        date("2024-12-31"),
				Customer:    "Bob Traders",
				Amount:      decimal.NewFromInt(100),
				PaymentMode: "Cash",
				Channel:     decimal.NewFromInt(2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := parser.Classify(tt.text)
			got, ok := cmd.(parser.Income)
			require.True(t, ok, "expected Income, got %T", cmd)

			assert.Equal(t, tt.want.Date, got.Date)
			assert.Equal(t, tt.want.Customer, got.Customer)
			assert.True(t, tt.want.Amount.Equal(got.Amount), "amount %s", got.Amount)
			assert.Equal(t, tt.want.PaymentMode, got.PaymentMode)
			assert.True(t, tt.want.Channel.Equal(got.Channel), "channel %s", got.Channel)
		})
	}
}

func TestClassify_Expense(t *testing.T) {
	cmd := parser.Classify("Expense 2024-03-05: Rent: 20000: Bank Transfer: March:")
	got, ok := cmd.(parser.Expense)
	require.True(t, ok, "expected Expense, got %T", cmd)

	assert.Equal(t, date("2024-03-05"), got.Date)
	assert.Equal(t, "Rent", got.ExpenseType)
	assert.True(t, decimal.NewFromInt(20000).Equal(got.Amount))
	assert.Equal(t, "Bank Transfer", got.PaymentMode)
	assert.Equal(t, "March", got.Period)

	t.Run("KeywordCaseInsensitive", func(t *testing.T) {
		cmd := parser.Classify("expense 2024-03-05: Rent: 100: Cash: Q1")
		_, ok := cmd.(parser.Expense)
		assert.True(t, ok, "got %T", cmd)
	})
}

func TestClassify_NewCustomer(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   parser.NewCustomer
		wantOK bool
	}{
		{
			name: "PlainMobile",
			text: "Alice: 9876543210: WhatsApp Premium: 2024-01-01:",
			want: parser.NewCustomer{
				Name:           "Alice",
				Mobile:         "9876543210",
				Services:       []string{"WhatsApp Premium"},
				OnboardingDate: date("2024-01-01"),
			},
			wantOK: true,
		},
		{
			name: "PlusPrefixedMobile",
			text: "Bob: +919876543210: Voice Call: 2024-02-10",
			want: parser.NewCustomer{
				Name:           "Bob",
				Mobile:         "+919876543210",
				Services:       []string{"Voice Call"},
				OnboardingDate: date("2024-02-10"),
			},
			wantOK: true,
		},
		{
			name:   "MobileTooShort",
			text:   "Bob: 12345: Voice Call: 2024-02-10",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := parser.Classify(tt.text)
			got, ok := cmd.(parser.NewCustomer)
			if !tt.wantOK {
				assert.False(t, ok, "got %T", cmd)
				return
			}
			require.True(t, ok, "expected NewCustomer, got %T", cmd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_StatsKeyword(t *testing.T) {
	tests := []struct {
		text string
		want domain.StatKind
	}{
		{"income", domain.StatIncome},
		{"INCOME", domain.StatIncome},
		{"Income", domain.StatIncome},
		{"expense", domain.StatExpense},
		{"profit", domain.StatProfit},
		{" profit ", domain.StatProfit},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd := parser.Classify(tt.text)
			got, ok := cmd.(parser.Stats)
			require.True(t, ok, "expected Stats, got %T", cmd)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestClassify_Unrecognised(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"FreeText", "hello there"},
		{"Empty", ""},
		{"IncomeMissingField", "2024-03-01: Alice: 1500: UPI"},
		{"IncomeNonNumericAmount", "2024-03-01: Alice: lots: UPI: 0.70"},
		{"ProfitSentence", "profit please"},
		{"RangeAlone", "2024-01-01 to 2024-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, parser.Classify(tt.text))
		})
	}
}

// An income-shaped line with an impossible calendar date must fall through
// the grammar list rather than classify with a garbage date.
func TestClassify_BadDateFallsThrough(t *testing.T) {
	assert.Nil(t, parser.Classify("2024-13-40: Alice: 100: UPI: 0.5"))
	assert.Nil(t, parser.Classify("Alice: 9876543210: Voice Call: 2024-02-30"))
}

// A customer whose name is all digits still parses as income, not as a
// new-customer line, because the income grammar is tried first.
func TestClassify_NumericCustomer(t *testing.T) {
	cmd := parser.Classify("2024-03-01: 9876543210: 100: UPI: 0.5")
	_, ok := cmd.(parser.Income)
	assert.True(t, ok, "got %T", cmd)
}
