// Package bot runs the conversational ledger: it classifies incoming chat
// lines, drives the two-turn statistics dialogue and produces exactly one
// reply per message.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/parser"
	"github.com/rahulrajrrk/finance-tracker/internal/service"
	"github.com/rahulrajrrk/finance-tracker/internal/session"
)

const dateLayout = "2006-01-02"

var rangeRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+to\s+(\d{4}-\d{2}-\d{2})$`)

// Orchestrator is the per-message state machine. A chat is either idle or
// awaiting a date range for a pending statistics keyword; the pending state
// wins over every grammar and is consumed by the next message whether or not
// that message is a valid range.
type Orchestrator struct {
	Sessions session.Store
	Ledger   service.LedgerService
	Stats    service.StatsService
	Currency string
	Logger   *slog.Logger
}

// HandleMessage processes one chat line and returns the reply text.
// An empty return means no reply is sent.
func (o Orchestrator) HandleMessage(ctx context.Context, chatID int64, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if kind, ok := o.Sessions.Take(chatID); ok {
		return o.handleStatsRange(ctx, chatID, kind, text)
	}

	switch cmd := parser.Classify(text).(type) {
	case parser.Stats:
		messagesTotal.WithLabelValues("stats_keyword").Inc()
		o.Sessions.Set(chatID, cmd.Kind)
		return "Please provide the date range in the format `YYYY-MM-DD to YYYY-MM-DD`."

	case parser.Income:
		messagesTotal.WithLabelValues("income").Inc()
		err := o.Ledger.RecordIncome(ctx, service.IncomeInput{
			Date:        cmd.Date,
			Customer:    cmd.Customer,
			Amount:      cmd.Amount,
			PaymentMode: cmd.PaymentMode,
			Channel:     cmd.Channel,
		})
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			return fmt.Sprintf("Customer `%s` not found. Please create the customer first (Name: Mob: Service: Date:).", cmd.Customer)
		case err != nil:
			storeFailures.Inc()
			o.Logger.Error("record income failed", "chat_id", chatID, "err", err)
			return "An error occurred while recording the transaction."
		}
		return "Income recorded successfully."

	case parser.Expense:
		messagesTotal.WithLabelValues("expense").Inc()
		err := o.Ledger.RecordExpense(ctx, service.ExpenseInput{
			Date:        cmd.Date,
			ExpenseType: cmd.ExpenseType,
			Amount:      cmd.Amount,
			PaymentMode: cmd.PaymentMode,
			Period:      cmd.Period,
		})
		if err != nil {
			storeFailures.Inc()
			o.Logger.Error("record expense failed", "chat_id", chatID, "err", err)
			return "An error occurred while recording the transaction."
		}
		return "Expense recorded successfully."

	case parser.NewCustomer:
		messagesTotal.WithLabelValues("new_customer").Inc()
		err := o.Ledger.CreateCustomer(ctx, service.CustomerInput{
			Name:           cmd.Name,
			Mobile:         cmd.Mobile,
			Services:       cmd.Services,
			OnboardingDate: cmd.OnboardingDate,
		})
		switch {
		case errors.Is(err, service.ErrCustomerExists):
			return "A customer with that name already exists."
		case err != nil:
			storeFailures.Inc()
			o.Logger.Error("create customer failed", "chat_id", chatID, "err", err)
			return "Failed to create customer."
		}
		return "Customer created successfully."
	}

	messagesTotal.WithLabelValues("unrecognised").Inc()
	return "Unrecognised input. Type /help for instructions."
}

func (o Orchestrator) handleStatsRange(ctx context.Context, chatID int64, kind domain.StatKind, text string) string {
	messagesTotal.WithLabelValues("stats_range").Inc()

	m := rangeRe.FindStringSubmatch(text)
	if m == nil {
		return "Invalid date range. Please use `YYYY-MM-DD to YYYY-MM-DD`."
	}
	start, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return "Invalid date range. Please use `YYYY-MM-DD to YYYY-MM-DD`."
	}
	end, err := time.Parse(dateLayout, m[2])
	if err != nil {
		return "Invalid date range. Please use `YYYY-MM-DD to YYYY-MM-DD`."
	}

	total, err := o.Stats.Sum(ctx, kind, start, end)
	if err != nil {
		storeFailures.Inc()
		o.Logger.Error("compute statistics failed", "chat_id", chatID, "kind", string(kind), "err", err)
		return "Failed to compute statistics."
	}

	// Echo the range exactly as the operator typed it.
	amount := o.Currency + total.StringFixed(2)
	switch kind {
	case domain.StatIncome:
		return fmt.Sprintf("Total income from %s to %s: %s", m[1], m[2], amount)
	case domain.StatExpense:
		return fmt.Sprintf("Total expenses from %s to %s: %s", m[1], m[2], amount)
	default:
		return fmt.Sprintf("Profit from %s to %s: %s", m[1], m[2], amount)
	}
}
