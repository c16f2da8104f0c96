package ledger

import (
	"testing"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTransactionAssignsDerivedFields(t *testing.T) {
	w, _ := testWallet(t)

	tx, err := w.Add(models.TypeIncome, dec(150), models.CategoryDelivery, "Talabat deliveries - 10 orders")
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "2026-03-14", tx.Date)
	assert.Equal(t, "09:30", tx.Time)

	list := w.List()
	require.Len(t, list, 1)
	assert.Equal(t, models.CategoryDelivery, list[0].Category)
}

func TestTodayProfitScenario(t *testing.T) {
	w, _ := testWallet(t)

	_, err := w.Add(models.TypeIncome, dec(150), models.CategoryDelivery, "Talabat deliveries")
	require.NoError(t, err)
	_, err = w.Add(models.TypeExpense, dec(45), models.CategoryFuel, "Gas station")
	require.NoError(t, err)

	assertDec(t, 150, w.TodayIncome())
	assertDec(t, 45, w.TodayExpense())
	assertDec(t, 105, w.TodayProfit())
	assert.Len(t, w.TodayTransactions(), 2)
}

func TestTodayScopesToCurrentDate(t *testing.T) {
	w, setNow := testWallet(t)

	_, err := w.Add(models.TypeIncome, dec(100), models.CategoryDelivery, "")
	require.NoError(t, err)

	setNow(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	assert.Empty(t, w.TodayTransactions())
	assertDec(t, 0, w.TodayIncome())
	assertDec(t, 0, w.TodayProfit())
}

func TestEmptyWalletAggregatesToZero(t *testing.T) {
	w, _ := testWallet(t)

	assertDec(t, 0, w.TodayIncome())
	assertDec(t, 0, w.TodayExpense())
	assertDec(t, 0, w.TodayProfit())
	assert.Empty(t, w.TodayTransactions())
}

func TestWeeklySummaryAlwaysSevenEntries(t *testing.T) {
	w, _ := testWallet(t)

	days := w.WeeklySummary()
	require.Len(t, days, 7)
	assert.Equal(t, "2026-03-08", days[0].Date)
	assert.Equal(t, "2026-03-14", days[6].Date)
	for _, d := range days {
		assertDec(t, 0, d.Income)
		assertDec(t, 0, d.Expense)
		assertDec(t, 0, d.Profit)
	}
}

func TestWeeklySummaryBucketsByDate(t *testing.T) {
	w, setNow := testWallet(t)

	// three days ago
	setNow(time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC))
	_, err := w.Add(models.TypeExpense, dec(30), models.CategoryMaintenance, "oil change")
	require.NoError(t, err)

	// today
	setNow(time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC))
	_, err = w.Add(models.TypeIncome, dec(150), models.CategoryDelivery, "")
	require.NoError(t, err)
	_, err = w.Add(models.TypeExpense, dec(45), models.CategoryFuel, "")
	require.NoError(t, err)

	// outside the window
	setNow(time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC))
	days := w.WeeklySummary()
	require.Len(t, days, 7)

	assert.Equal(t, "2026-03-11", days[3].Date)
	assertDec(t, 30, days[3].Expense)
	assertDec(t, -30, days[3].Profit)

	// entry 6 is today and matches the today aggregates
	assert.Equal(t, "2026-03-14", days[6].Date)
	assert.True(t, days[6].Income.Equal(w.TodayIncome()))
	assert.True(t, days[6].Expense.Equal(w.TodayExpense()))
	assertDec(t, 105, days[6].Profit)
}

func TestMonthlyDefaultsToCurrentMonth(t *testing.T) {
	w, _ := testWallet(t)

	_, err := w.Add(models.TypeIncome, dec(200), models.CategoryDelivery, "")
	require.NoError(t, err)

	got := w.Monthly(0, 0)
	assertDec(t, 200, got.Income)
	assertDec(t, 0, got.Expense)
	assertDec(t, 200, got.Profit)
}

func TestMonthlyExplicitMonth(t *testing.T) {
	w, setNow := testWallet(t)

	setNow(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
	_, err := w.Add(models.TypeIncome, dec(80), models.CategoryDelivery, "")
	require.NoError(t, err)

	setNow(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	_, err = w.Add(models.TypeIncome, dec(120), models.CategoryDelivery, "")
	require.NoError(t, err)

	feb := w.Monthly(time.February, 2026)
	assertDec(t, 80, feb.Income)

	march := w.Monthly(time.March, 2026)
	assertDec(t, 120, march.Income)

	empty := w.Monthly(time.January, 2026)
	assertDec(t, 0, empty.Income)
}

func TestMonthlyDecemberJanuaryRollover(t *testing.T) {
	w, setNow := testWallet(t)

	setNow(time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC))
	_, err := w.Add(models.TypeIncome, dec(100), models.CategoryDelivery, "new year's eve rush")
	require.NoError(t, err)

	setNow(time.Date(2027, 1, 1, 1, 0, 0, 0, time.UTC))
	_, err = w.Add(models.TypeExpense, dec(40), models.CategoryFuel, "")
	require.NoError(t, err)

	dec26 := w.Monthly(time.December, 2026)
	assertDec(t, 100, dec26.Income)
	assertDec(t, 0, dec26.Expense)

	jan27 := w.Monthly(time.January, 2027)
	assertDec(t, 0, jan27.Income)
	assertDec(t, 40, jan27.Expense)
	assertDec(t, -40, jan27.Profit)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	w, _ := testWallet(t)
	tx, err := w.Add(models.TypeExpense, dec(45), models.CategoryFuel, "Gas station")
	require.NoError(t, err)

	amount := dec(50)
	require.NoError(t, w.Update(tx.ID, TransactionPatch{Amount: &amount}))

	got := w.List()[0]
	assertDec(t, 50, got.Amount)
	// untouched fields survive the merge
	assert.Equal(t, models.CategoryFuel, got.Category)
	assert.Equal(t, "Gas station", got.Description)
	assert.Equal(t, tx.ID, got.ID)
}

func TestDeleteTransactionIdempotent(t *testing.T) {
	w, _ := testWallet(t)
	tx, err := w.Add(models.TypeIncome, dec(10), models.CategoryDelivery, "")
	require.NoError(t, err)

	require.NoError(t, w.Delete(tx.ID))
	require.NoError(t, w.Delete(tx.ID))
	assert.Empty(t, w.List())
}

func TestImportTransactionsPrepends(t *testing.T) {
	w, _ := testWallet(t)
	_, err := w.Add(models.TypeIncome, dec(10), models.CategoryDelivery, "existing")
	require.NoError(t, err)

	imported := []models.Transaction{
		{ID: "b-1", Type: models.TypeExpense, Amount: dec(5), Category: models.CategoryToll, Date: "2026-01-05", Time: "12:00"},
	}
	require.NoError(t, w.Import(imported))

	list := w.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b-1", list[0].ID)
}

func TestClearTransactions(t *testing.T) {
	w, _ := testWallet(t)
	_, err := w.Add(models.TypeIncome, dec(10), models.CategoryDelivery, "")
	require.NoError(t, err)

	require.NoError(t, w.Clear())
	assert.Empty(t, w.List())
	assertDec(t, 0, w.TodayProfit())
}
