package bot

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulrajrrk/finance-tracker/internal/service"
	"github.com/rahulrajrrk/finance-tracker/internal/session"
)

type staticIncome struct {
	total decimal.Decimal
}

func (s staticIncome) SumIncome(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return s.total, nil
}

type staticExpense struct{}

func (staticExpense) Sum(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func TestDispatcher_OrdersPerChat(t *testing.T) {
	d := newDispatcher()
	defer d.closeAll()

	const n = 100
	var mu sync.Mutex
	var got []int
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		d.enqueue(7, func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	require.Len(t, got, n)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestDispatcher_ChatsIndependent(t *testing.T) {
	d := newDispatcher()
	defer d.closeAll()

	release := make(chan struct{})
	done := make(chan struct{})
	d.enqueue(1, func() { <-release })
	d.enqueue(2, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("chat 2 blocked behind chat 1")
	}
	close(release)
}

// Two back-to-back messages from one chat must be handled in arrival order:
// the statistics keyword sets the pending state before the range message
// consumes it, so the range never races past the keyword.
func TestDispatcher_StatsDialogueOrder(t *testing.T) {
	orch := Orchestrator{
		Sessions: session.NewMemory(),
		Stats: service.StatsService{
			Transactions: staticIncome{total: decimal.NewFromInt(1000)},
			Expenses:     staticExpense{},
		},
		Currency: "₹",
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	d := newDispatcher()
	defer d.closeAll()

	replies := make(chan string, 2)
	for _, text := range []string{"income", "2024-03-01 to 2024-03-31"} {
		text := text
		d.enqueue(9, func() {
			replies <- orch.HandleMessage(context.Background(), 9, text)
		})
	}

	assert.Equal(t, "Please provide the date range in the format `YYYY-MM-DD to YYYY-MM-DD`.", <-replies)
	assert.Equal(t, "Total income from 2024-03-01 to 2024-03-31: ₹1000.00", <-replies)
}
