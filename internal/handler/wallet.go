package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/ledger"
	"github.com/fazetdev/zimam-delivery/internal/models"
	"github.com/fazetdev/zimam-delivery/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WalletHandler exposes the transaction ledger and its rollups.
type WalletHandler struct {
	Wallet *ledger.Wallet
}

func NewWalletHandler(w *ledger.Wallet) *WalletHandler {
	return &WalletHandler{Wallet: w}
}

type createTransactionReq struct {
	Type        models.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    models.Category        `json:"category" binding:"required,oneof=fuel food maintenance toll other delivery"`
	Description string                 `json:"description" binding:"max=255"`
}

func (h *WalletHandler) Create(c *gin.Context) {
	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	t, err := h.Wallet.Add(req.Type, req.Amount, req.Category, req.Description)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, try again")
		return
	}

	util.Success(c, util.Response{"transaction": t})
}

func (h *WalletHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing id")
		return
	}

	var patch ledger.TransactionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if patch.Type != nil && !patch.Type.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown type")
		return
	}
	if patch.Category != nil && !patch.Category.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown category")
		return
	}
	if patch.Amount != nil {
		if err := util.ValidateAmount(*patch.Amount); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
			return
		}
	}
	if patch.Date != nil {
		if err := util.ValidateDate(*patch.Date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
			return
		}
	}
	if patch.Time != nil {
		if err := util.ValidateClock(*patch.Time); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "time must be HH:MM")
			return
		}
	}

	if err := h.Wallet.Update(id, patch); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, try again")
		return
	}
	util.Success(c, util.Response{"message": "updated"})
}

func (h *WalletHandler) Delete(c *gin.Context) {
	if err := h.Wallet.Delete(c.Param("id")); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}

func (h *WalletHandler) Clear(c *gin.Context) {
	if err := h.Wallet.Clear(); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "clear failed")
		return
	}
	util.Success(c, util.Response{"message": "cleared"})
}

func (h *WalletHandler) Import(c *gin.Context) {
	var items []models.Transaction
	if err := c.ShouldBindJSON(&items); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	for i := range items {
		if items[i].ID == "" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "record without id")
			return
		}
	}

	if err := h.Wallet.Import(items); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "import failed")
		return
	}
	util.Success(c, util.Response{"imported": len(items)})
}

func (h *WalletHandler) List(c *gin.Context) {
	items := h.Wallet.List()
	util.Success(c, util.Response{
		"items": items,
		"total": len(items),
	})
}

func (h *WalletHandler) Today(c *gin.Context) {
	items := h.Wallet.TodayTransactions()
	util.Success(c, util.Response{
		"items": items,
		"total": len(items),
	})
}

func (h *WalletHandler) Stats(c *gin.Context) {
	util.Success(c, util.Response{
		"today_income":  h.Wallet.TodayIncome(),
		"today_expense": h.Wallet.TodayExpense(),
		"today_profit":  h.Wallet.TodayProfit(),
		"today_count":   len(h.Wallet.TodayTransactions()),
	})
}

func (h *WalletHandler) Weekly(c *gin.Context) {
	util.Success(c, util.Response{"days": h.Wallet.WeeklySummary()})
}

// Monthly serves ?month=1..12&year=YYYY; both optional, defaulting to the
// current month and year.
func (h *WalletHandler) Monthly(c *gin.Context) {
	month := 0
	if s := c.Query("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month must be 1-12")
			return
		}
		month = m
	}
	year := 0
	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 2000 || y > 2200 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid year")
			return
		}
		year = y
	}

	util.Success(c, util.Response{
		"summary": h.Wallet.Monthly(time.Month(month), year),
	})
}
