package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/fazetdev/zimam-delivery/internal/ledger"
	"github.com/fazetdev/zimam-delivery/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler renders both collections as downloadable files. Export is a
// collaborator feature: it only consumes the ledgers' list output.
type ExportHandler struct {
	Logbook *ledger.Logbook
	Wallet  *ledger.Wallet
}

func NewExportHandler(lb *ledger.Logbook, w *ledger.Wallet) *ExportHandler {
	return &ExportHandler{Logbook: lb, Wallet: w}
}

// ExportCSV exports one collection as CSV, selected by ?set=deliveries
// (default) or ?set=transactions.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	set := c.DefaultQuery("set", "deliveries")
	if set != "deliveries" && set != "transactions" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "set must be deliveries or transactions")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s_%s.csv\"",
		set, time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if set == "deliveries" {
		writer.Write([]string{"Date", "Time", "Customer", "Platform", "Area", "Fee", "Status", "Notes"})
		for _, d := range h.Logbook.List() {
			writer.Write([]string{
				d.Date, d.Time, d.Customer, string(d.Platform),
				d.Area, d.Fee.String(), string(d.Status), d.Notes,
			})
		}
		return
	}

	writer.Write([]string{"Date", "Time", "Type", "Category", "Amount", "Description"})
	for _, t := range h.Wallet.List() {
		writer.Write([]string{
			t.Date, t.Time, string(t.Type), string(t.Category),
			t.Amount.String(), t.Description,
		})
	}
}

// ExportXLSX exports both collections as one workbook with two sheets.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	f := excelize.NewFile()

	const deliverySheet = "Deliveries"
	f.SetSheetName("Sheet1", deliverySheet)

	headers := []string{"Date", "Time", "Customer", "Platform", "Area", "Fee", "Status", "Notes"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(deliverySheet, cell, name)
	}
	for idx, d := range h.Logbook.List() {
		row := idx + 2
		f.SetCellValue(deliverySheet, fmt.Sprintf("A%d", row), d.Date)
		f.SetCellValue(deliverySheet, fmt.Sprintf("B%d", row), d.Time)
		f.SetCellValue(deliverySheet, fmt.Sprintf("C%d", row), d.Customer)
		f.SetCellValue(deliverySheet, fmt.Sprintf("D%d", row), string(d.Platform))
		f.SetCellValue(deliverySheet, fmt.Sprintf("E%d", row), d.Area)
		f.SetCellValue(deliverySheet, fmt.Sprintf("F%d", row), d.Fee.String())
		f.SetCellValue(deliverySheet, fmt.Sprintf("G%d", row), string(d.Status))
		f.SetCellValue(deliverySheet, fmt.Sprintf("H%d", row), d.Notes)
	}
	f.SetColWidth(deliverySheet, "A", "B", 12)
	f.SetColWidth(deliverySheet, "C", "E", 18)
	f.SetColWidth(deliverySheet, "H", "H", 30)

	const txSheet = "Transactions"
	if _, err := f.NewSheet(txSheet); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	txHeaders := []string{"Date", "Time", "Type", "Category", "Amount", "Description"}
	for i, name := range txHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(txSheet, cell, name)
	}
	for idx, t := range h.Wallet.List() {
		row := idx + 2
		f.SetCellValue(txSheet, fmt.Sprintf("A%d", row), t.Date)
		f.SetCellValue(txSheet, fmt.Sprintf("B%d", row), t.Time)
		f.SetCellValue(txSheet, fmt.Sprintf("C%d", row), string(t.Type))
		f.SetCellValue(txSheet, fmt.Sprintf("D%d", row), string(t.Category))
		f.SetCellValue(txSheet, fmt.Sprintf("E%d", row), t.Amount.String())
		f.SetCellValue(txSheet, fmt.Sprintf("F%d", row), t.Description)
	}
	f.SetColWidth(txSheet, "A", "B", 12)
	f.SetColWidth(txSheet, "F", "F", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"zimam_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
