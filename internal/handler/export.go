package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"github.com/rahulrajrrk/finance-tracker/internal/domain"
	"github.com/rahulrajrrk/finance-tracker/internal/repository"
)

// ExportHandler downloads the ledger as an Excel workbook with one sheet of
// income transactions and one of expenses.
type ExportHandler struct {
	Transactions repository.TransactionRepository
	Expenses     repository.ExpenseRepository
}

func (h ExportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/export", h.export)
}

func (h ExportHandler) export(w http.ResponseWriter, r *http.Request) {
	start, end, errMsg := dateRange(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	txs, err := h.Transactions.ListInRange(r.Context(), start, end, 10000)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export ledger")
		return
	}
	expenses, err := h.Expenses.ListInRange(r.Context(), start, end, 10000)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export ledger")
		return
	}

	data, err := exportLedgerXLSX(txs, expenses)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export ledger")
		return
	}

	filenameSuffix := time.Now().Format("20060102_150405")
	if start != nil && end != nil {
		filenameSuffix = fmt.Sprintf("%s_%s", start.Format("20060102"), end.Format("20060102"))
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"ledger_%s.xlsx\"", filenameSuffix))
	_, _ = w.Write(data)
}

func exportLedgerXLSX(txs []domain.Transaction, expenses []domain.Expense) ([]byte, error) {
	f := excelize.NewFile()

	txSheet := "Transactions"
	index, err := f.NewSheet(txSheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	txHeader := []string{"Date", "Customer", "Amount", "Payment Mode", "Channel Rate"}
	writeSheetRow(f, txSheet, 1, toAny(txHeader))
	for i, t := range txs {
		writeSheetRow(f, txSheet, i+2, []any{
			t.Date.Format(dateLayout),
			t.Customer,
			t.Amount.InexactFloat64(),
			t.PaymentMode,
			t.Channel.InexactFloat64(),
		})
	}

	expSheet := "Expenses"
	if _, err := f.NewSheet(expSheet); err != nil {
		return nil, err
	}
	expHeader := []string{"Date", "Expense Type", "Amount", "Payment Mode", "Period"}
	writeSheetRow(f, expSheet, 1, toAny(expHeader))
	for i, e := range expenses {
		writeSheetRow(f, expSheet, i+2, []any{
			e.Date.Format(dateLayout),
			e.ExpenseType,
			e.Amount.InexactFloat64(),
			e.PaymentMode,
			e.Period,
		})
	}

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(txSheet, "A1", "E1", style)
	_ = f.SetCellStyle(expSheet, "A1", "E1", style)
	for _, sheet := range []string{txSheet, expSheet} {
		_ = f.SetColWidth(sheet, "A", "A", 12)
		_ = f.SetColWidth(sheet, "B", "B", 24)
		_ = f.SetColWidth(sheet, "C", "E", 16)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []any) {
	for c, v := range values {
		cell, _ := excelize.CoordinatesToCellName(c+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
