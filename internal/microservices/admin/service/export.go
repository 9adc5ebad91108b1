package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"patio-system/internal/domain"
	"patio-system/internal/timewindow"
)

// Report downloads. CSV stays byte-compatible with the legacy exports the
// payroll spreadsheet macros expect; XLSX is the richer rendition.

func WritePayrollCSV(w io.Writer, rows []PayrollRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Time", "User Email", "Total Cost"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Date, r.Time, r.EmployeeEmail, r.FinalTotal.StringFixed(2)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteHappyHourCSV(w io.Writer, rows []HappyHourRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Item", "Quantity"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Date, r.Item, strconv.Itoa(r.Quantity)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteOrdersCSV is the full-dump export with one row per order.
func WriteOrdersCSV(w io.Writer, orders []domain.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Date", "Time", "Status", "Employee Email", "Items", "Subtotal", "Discount", "Total"}); err != nil {
		return err
	}
	for _, o := range orders {
		summary := ""
		for i, item := range o.Items {
			if i > 0 {
				summary += "; "
			}
			summary += fmt.Sprintf("%dx %s", item.Quantity, item.MenuItem.Name)
		}
		discount := "No"
		if o.DiscountApplied {
			discount = "Yes"
		}
		if err := cw.Write([]string{
			o.ID,
			timewindow.LocalDate(o.CreatedAt),
			timewindow.LocalTimeOfDay(o.CreatedAt),
			string(o.Status),
			o.EmployeeEmail,
			summary,
			o.Subtotal.StringFixed(2),
			discount,
			o.FinalTotal.StringFixed(2),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const payrollSheet = "Payroll"

// BuildPayrollXLSX renders the payroll report as a spreadsheet.
func BuildPayrollXLSX(rows []PayrollRow) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(payrollSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []any{"Date", "Time", "User Email", "Total Cost"}
	if err := f.SetSheetRow(payrollSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, r := range rows {
		total, _ := r.FinalTotal.Float64()
		row := []any{r.Date, r.Time, r.EmployeeEmail, total}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(payrollSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
