package handler

import (
	"net/http"
	"strings"

	"github.com/fazetdev/zimam-delivery/internal/ledger"
	"github.com/fazetdev/zimam-delivery/internal/models"
	"github.com/fazetdev/zimam-delivery/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LogbookHandler exposes the delivery ledger. Validation of creation
// payloads happens here; the ledger stores whatever well-typed values it
// receives.
type LogbookHandler struct {
	Logbook *ledger.Logbook
}

func NewLogbookHandler(lb *ledger.Logbook) *LogbookHandler {
	return &LogbookHandler{Logbook: lb}
}

type createDeliveryReq struct {
	Customer string          `json:"customer" binding:"required,max=64"`
	Platform models.Platform `json:"platform" binding:"required,oneof=talabat jahez careem noon other"`
	Fee      decimal.Decimal `json:"fee"`
	Area     string          `json:"area" binding:"required,max=64"`
	Notes    string          `json:"notes" binding:"max=255"`
}

func (h *LogbookHandler) Create(c *gin.Context) {
	var req createDeliveryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	req.Customer = strings.TrimSpace(req.Customer)
	req.Area = strings.TrimSpace(req.Area)
	if req.Customer == "" || req.Area == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "customer and area are required")
		return
	}
	if err := util.ValidateAmount(req.Fee); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid fee")
		return
	}

	d, err := h.Logbook.Add(req.Customer, req.Platform, req.Fee, req.Area, req.Notes)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, try again")
		return
	}

	util.Success(c, util.Response{"delivery": d})
}

func (h *LogbookHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "missing id")
		return
	}

	var patch ledger.DeliveryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if patch.Platform != nil && !patch.Platform.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown platform")
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown status")
		return
	}
	if patch.Fee != nil {
		if err := util.ValidateAmount(*patch.Fee); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid fee")
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

	if err := h.Logbook.Update(id, patch); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, try again")
		return
	}
	util.Success(c, util.Response{"message": "updated"})
}

func (h *LogbookHandler) Delete(c *gin.Context) {
	if err := h.Logbook.Delete(c.Param("id")); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}

func (h *LogbookHandler) Clear(c *gin.Context) {
	if err := h.Logbook.Clear(); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "clear failed")
		return
	}
	util.Success(c, util.Response{"message": "cleared"})
}

// Import bulk-inserts already-complete records, e.g. restored from a backup
// file. Ids are kept as supplied; the caller owns their uniqueness.
func (h *LogbookHandler) Import(c *gin.Context) {
	var items []models.Delivery
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

	if err := h.Logbook.Import(items); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "import failed")
		return
	}
	util.Success(c, util.Response{"imported": len(items)})
}

func (h *LogbookHandler) List(c *gin.Context) {
	items := h.Logbook.List()
	util.Success(c, util.Response{
		"items": items,
		"total": len(items),
	})
}

func (h *LogbookHandler) Today(c *gin.Context) {
	items := h.Logbook.TodayDeliveries()
	util.Success(c, util.Response{
		"items": items,
		"total": len(items),
	})
}

func (h *LogbookHandler) Search(c *gin.Context) {
	q := c.Query("q")
	platform := c.DefaultQuery("platform", ledger.FilterAll)
	if platform != ledger.FilterAll && !models.Platform(platform).Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown platform")
		return
	}
	date := c.Query("date")
	if date != "" {
		if err := util.ValidateDate(date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
			return
		}
	}

	items := h.Logbook.Search(q, platform, date)
	util.Success(c, util.Response{
		"items": items,
		"total": len(items),
	})
}

func (h *LogbookHandler) Stats(c *gin.Context) {
	today := h.Logbook.TodayDeliveries()
	util.Success(c, util.Response{
		"today_earnings": h.Logbook.TodayEarnings(),
		"total_earnings": h.Logbook.TotalEarnings(),
		"today_count":    len(today),
		"platforms":      h.Logbook.PlatformStats(),
		"areas":          h.Logbook.AreaStats(),
	})
}
