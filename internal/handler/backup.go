package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/ledger"
	"github.com/fazetdev/zimam-delivery/internal/models"
	"github.com/fazetdev/zimam-delivery/internal/store"
	"github.com/fazetdev/zimam-delivery/internal/util"

	"github.com/gin-gonic/gin"
)

// BackupHandler downloads and restores a JSON backup of both ledgers. The
// restore path is a bulk import: records are prepended as supplied, ids
// included.
type BackupHandler struct {
	Logbook *ledger.Logbook
	Wallet  *ledger.Wallet
}

func NewBackupHandler(lb *ledger.Logbook, w *ledger.Wallet) *BackupHandler {
	return &BackupHandler{Logbook: lb, Wallet: w}
}

// backupFile is the content of a backup download.
type backupFile struct {
	Version      int                  `json:"version"`
	Created      time.Time            `json:"created"`
	Deliveries   []models.Delivery    `json:"deliveries"`
	Transactions []models.Transaction `json:"transactions"`
}

// Export serves both collections as one downloadable JSON file.
func (h *BackupHandler) Export(c *gin.Context) {
	data := backupFile{
		Version:      store.SchemaVersion,
		Created:      time.Now(),
		Deliveries:   h.Logbook.List(),
		Transactions: h.Wallet.List(),
	}
	raw, err := json.MarshalIndent(&data, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "serialize failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"zimam-backup-%s.json\"",
		time.Now().Format("20060102")))
	c.Data(http.StatusOK, "application/json", raw)
}

// Restore imports a previously downloaded backup into both ledgers.
func (h *BackupHandler) Restore(c *gin.Context) {
	var data backupFile
	if err := c.ShouldBindJSON(&data); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid backup file")
		return
	}
	if data.Version != store.SchemaVersion {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unsupported backup version")
		return
	}
	for i := range data.Deliveries {
		if data.Deliveries[i].ID == "" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "delivery without id")
			return
		}
	}
	for i := range data.Transactions {
		if data.Transactions[i].ID == "" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "transaction without id")
			return
		}
	}

	if err := h.Logbook.Import(data.Deliveries); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "restore failed")
		return
	}
	if err := h.Wallet.Import(data.Transactions); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "restore failed")
		return
	}

	util.Success(c, util.Response{
		"deliveries":   len(data.Deliveries),
		"transactions": len(data.Transactions),
	})
}
