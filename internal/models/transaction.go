package models

import "github.com/shopspring/decimal"

// TransactionType separates money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category classifies a transaction. "delivery" is by convention an income
// category; the engine does not enforce the pairing.
type Category string

const (
	CategoryFuel        Category = "fuel"
	CategoryFood        Category = "food"
	CategoryMaintenance Category = "maintenance"
	CategoryToll        Category = "toll"
	CategoryOther       Category = "other"
	CategoryDelivery    Category = "delivery"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFuel, CategoryFood, CategoryMaintenance, CategoryToll, CategoryOther, CategoryDelivery:
		return true
	}
	return false
}

// Transaction is a single cash movement in the wallet.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Time        string          `json:"time"`
	Date        string          `json:"date"`
}
