package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/models"
	"github.com/fazetdev/zimam-delivery/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySummary is one day's rollup in the weekly view.
type DailySummary struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// MonthlySummary is the rollup over one calendar month.
type MonthlySummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// Wallet is the transaction ledger: income and expense records plus daily,
// weekly and monthly rollups.
type Wallet struct {
	mu    sync.RWMutex
	store *store.Store[models.Transaction]
	now   func() time.Time
}

// NewWallet wraps a restored transaction store.
func NewWallet(s *store.Store[models.Transaction]) *Wallet {
	return &Wallet{store: s, now: time.Now}
}

// Add records a transaction happening now; id, time and date are assigned
// here.
func (w *Wallet) Add(typ models.TransactionType, amount decimal.Decimal, category models.Category, description string) (models.Transaction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	t := models.Transaction{
		ID:          uuid.NewString(),
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Description: description,
		Time:        now.Format(timeLayout),
		Date:        now.Format(dateLayout),
	}
	if err := w.store.Add(t); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

// TransactionPatch is a partial update; nil fields are left untouched.
type TransactionPatch struct {
	Type        *models.TransactionType `json:"type"`
	Amount      *decimal.Decimal        `json:"amount"`
	Category    *models.Category        `json:"category"`
	Description *string                 `json:"description"`
	Time        *string                 `json:"time"`
	Date        *string                 `json:"date"`
}

// Update shallow-merges the patch into the transaction with the given id; a
// silent no-op when the id is unknown.
func (w *Wallet) Update(id string, patch TransactionPatch) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.store.Update(id, func(t *models.Transaction) {
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Time != nil {
			t.Time = *patch.Time
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
	})
}

// Delete removes one transaction; no-op when absent.
func (w *Wallet) Delete(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Delete(id)
}

// Clear empties the wallet.
func (w *Wallet) Clear() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Clear()
}

// Import prepends externally supplied transactions without regenerating ids.
func (w *Wallet) Import(transactions []models.Transaction) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Import(transactions)
}

// List returns all transactions, newest-first.
func (w *Wallet) List() []models.Transaction {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.store.List()
}

// TodayTransactions returns today's transactions of both types, in stored
// order.
func (w *Wallet) TodayTransactions() []models.Transaction {
	w.mu.RLock()
	defer w.mu.RUnlock()

	today := w.now().Format(dateLayout)
	out := make([]models.Transaction, 0)
	for _, t := range w.store.List() {
		if t.Date == today {
			out = append(out, t)
		}
	}
	return out
}

// TodayIncome sums today's income amounts.
func (w *Wallet) TodayIncome() decimal.Decimal {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.sumForDate(w.now().Format(dateLayout), models.TypeIncome)
}

// TodayExpense sums today's expense amounts.
func (w *Wallet) TodayExpense() decimal.Decimal {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.sumForDate(w.now().Format(dateLayout), models.TypeExpense)
}

// TodayProfit is today's income minus today's expenses.
func (w *Wallet) TodayProfit() decimal.Decimal {
	w.mu.RLock()
	defer w.mu.RUnlock()

	today := w.now().Format(dateLayout)
	return w.sumForDate(today, models.TypeIncome).Sub(w.sumForDate(today, models.TypeExpense))
}

// WeeklySummary returns exactly 7 entries, one per calendar date from six
// days ago through today inclusive, oldest first. Dates with no transactions
// yield zeroed entries.
func (w *Wallet) WeeklySummary() []DailySummary {
	w.mu.RLock()
	defer w.mu.RUnlock()

	now := w.now()
	out := make([]DailySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		income := w.sumForDate(date, models.TypeIncome)
		expense := w.sumForDate(date, models.TypeExpense)
		out = append(out, DailySummary{
			Date:    date,
			Income:  income,
			Expense: expense,
			Profit:  income.Sub(expense),
		})
	}
	return out
}

// Monthly sums income, expense and profit over all transactions in the given
// calendar month. Month is 1-based; a zero month or year defaults to the
// current one.
func (w *Wallet) Monthly(month time.Month, year int) MonthlySummary {
	w.mu.RLock()
	defer w.mu.RUnlock()

	now := w.now()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range w.store.List() {
		if !strings.HasPrefix(t.Date, prefix) {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return MonthlySummary{Income: income, Expense: expense, Profit: income.Sub(expense)}
}

// sumForDate must be called with the lock held.
func (w *Wallet) sumForDate(date string, typ models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range w.store.List() {
		if t.Date == date && t.Type == typ {
			total = total.Add(t.Amount)
		}
	}
	return total
}
