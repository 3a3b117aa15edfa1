package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/session"
)

func TestMemory_TakeRemoves(t *testing.T) {
	s := session.NewMemory()
	s.Set(42, domain.StatIncome)

	kind, ok := s.Take(42)
	assert.True(t, ok)
	assert.Equal(t, domain.StatIncome, kind)

	_, ok = s.Take(42)
	assert.False(t, ok)
}

func TestMemory_TakeAbsent(t *testing.T) {
	s := session.NewMemory()
	_, ok := s.Take(7)
	assert.False(t, ok)
}

func TestMemory_PerConversation(t *testing.T) {
	s := session.NewMemory()
	s.Set(1, domain.StatIncome)
	s.Set(2, domain.StatProfit)

	kind, ok := s.Take(2)
	assert.True(t, ok)
	assert.Equal(t, domain.StatProfit, kind)

	kind, ok = s.Take(1)
	assert.True(t, ok)
	assert.Equal(t, domain.StatIncome, kind)
}

func TestMemory_SetOverwrites(t *testing.T) {
	s := session.NewMemory()
	s.Set(1, domain.StatIncome)
	s.Set(1, domain.StatExpense)

	kind, ok := s.Take(1)
	assert.True(t, ok)
	assert.Equal(t, domain.StatExpense, kind)
}
