package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patio-system/internal/common/logger"
	"patio-system/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeOrders struct {
	orders []domain.Order
}

func (f *fakeOrders) ListByLocalDateRange(_ context.Context, _, _ string) ([]domain.Order, error) {
	return f.orders, nil
}

func sampleOrders() []domain.Order {
	// 01:15 UTC June 5 is 19:15 local June 4, inside happy hour
	evening := time.Date(2024, 6, 5, 1, 15, 0, 0, time.UTC)
	noon := time.Date(2024, 6, 4, 18, 0, 0, 0, time.UTC)
	return []domain.Order{
		{
			ID:            "o1",
			CreatedAt:     evening,
			EmployeeEmail: "cook@patio.example",
			Items: []domain.CartItem{
				{MenuItem: domain.MenuItem{Name: "Patio Burger"}, Quantity: 2},
				{MenuItem: domain.MenuItem{Name: "Caesar Salad"}, Quantity: 1},
			},
			Subtotal:        dec("39.50"),
			DiscountApplied: true,
			FinalTotal:      dec("19.75"),
			Status:          domain.StatusCompleted,
		},
		{
			ID:            "o2",
			CreatedAt:     noon,
			EmployeeEmail: "host@patio.example",
			Items: []domain.CartItem{
				{MenuItem: domain.MenuItem{Name: "Fish Tacos"}, Quantity: 1},
			},
			Subtotal:        dec("14.00"),
			DiscountApplied: false,
			FinalTotal:      dec("14.00"),
			Status:          domain.StatusPending,
		},
	}
}

func newTestReports(orders []domain.Order) ReportServiceInterface {
	return NewReportService(&fakeOrders{orders: orders}, logger.New("admin-service-test"))
}

func TestOrdersInRangeValidatesDates(t *testing.T) {
	svc := newTestReports(nil)

	_, err := svc.OrdersInRange(context.Background(), "June 1", "2024-06-30")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.OrdersInRange(context.Background(), "2024-06-01", "2024-06-30")
	assert.NoError(t, err)
}

func TestPayrollRows(t *testing.T) {
	svc := newTestReports(nil)
	rows := svc.PayrollRows(sampleOrders())
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-06-04", rows[0].Date, "UTC date rolls back to the local civil date")
	assert.Equal(t, "19:15", rows[0].Time)
	assert.Equal(t, "cook@patio.example", rows[0].EmployeeEmail)
	assert.True(t, rows[0].FinalTotal.Equal(dec("19.75")))

	assert.Equal(t, "2024-06-04", rows[1].Date)
	assert.Equal(t, "12:00", rows[1].Time)
}

func TestHappyHourRowsFiltersDiscounted(t *testing.T) {
	svc := newTestReports(nil)
	rows := svc.HappyHourRows(sampleOrders())
	require.Len(t, rows, 2, "one row per item of the discounted order only")

	assert.Equal(t, HappyHourRow{Date: "2024-06-04", Item: "Patio Burger", Quantity: 2}, rows[0])
	assert.Equal(t, HappyHourRow{Date: "2024-06-04", Item: "Caesar Salad", Quantity: 1}, rows[1])
}
