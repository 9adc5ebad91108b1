package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"patio-system/internal/common/logger"
	"patio-system/internal/domain"
	"patio-system/internal/timewindow"
)

// Orders is the slice of the order store the reports need. The order
// repository satisfies it.
type Orders interface {
	ListByLocalDateRange(ctx context.Context, start, end string) ([]domain.Order, error)
}

// PayrollRow is one line of the payroll deduction report: when an employee
// ordered and what their final (post-discount) total was.
type PayrollRow struct {
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	EmployeeEmail string          `json:"employee_email"`
	FinalTotal    decimal.Decimal `json:"final_total"`
}

// HappyHourRow is one line of the discount tracking report, one row per
// item of each discounted order.
type HappyHourRow struct {
	Date     string `json:"date"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type ReportServiceInterface interface {
	OrdersInRange(ctx context.Context, start, end string) ([]domain.Order, error)
	PayrollRows(orders []domain.Order) []PayrollRow
	HappyHourRows(orders []domain.Order) []HappyHourRow
}

type ReportService struct {
	orders Orders
	lg     *logger.Logger
}

func NewReportService(orders Orders, lg *logger.Logger) ReportServiceInterface {
	return &ReportService{orders: orders, lg: lg}
}

func (s *ReportService) OrdersInRange(ctx context.Context, start, end string) ([]domain.Order, error) {
	for _, d := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, &domain.ValidationError{Reason: fmt.Sprintf("bad date %q, want YYYY-MM-DD", d)}
		}
	}
	orders, err := s.orders.ListByLocalDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	s.lg.Debug("report_range_loaded", map[string]any{"start": start, "end": end, "orders": len(orders)})
	return orders, nil
}

func (s *ReportService) PayrollRows(orders []domain.Order) []PayrollRow {
	rows := make([]PayrollRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, PayrollRow{
			Date:          timewindow.LocalDate(o.CreatedAt),
			Time:          timewindow.LocalTimeOfDay(o.CreatedAt),
			EmployeeEmail: o.EmployeeEmail,
			FinalTotal:    o.FinalTotal,
		})
	}
	return rows
}

// HappyHourRows keeps discounted orders only and flattens them to one row
// per cart item.
func (s *ReportService) HappyHourRows(orders []domain.Order) []HappyHourRow {
	var rows []HappyHourRow
	for _, o := range orders {
		if !o.DiscountApplied {
			continue
		}
		date := timewindow.LocalDate(o.CreatedAt)
		for _, item := range o.Items {
			rows = append(rows, HappyHourRow{
				Date:     date,
				Item:     item.MenuItem.Name,
				Quantity: item.Quantity,
			})
		}
	}
	return rows
}
