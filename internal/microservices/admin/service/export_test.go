package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patio-system/internal/domain"
)

func TestWritePayrollCSV(t *testing.T) {
	rows := []PayrollRow{
		{Date: "2024-06-04", Time: "19:15", EmployeeEmail: "cook@patio.example", FinalTotal: dec("19.75")},
		{Date: "2024-06-04", Time: "12:00", EmployeeEmail: "host@patio.example", FinalTotal: dec("14.00")},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePayrollCSV(&buf, rows))

	want := "Date,Time,User Email,Total Cost\n" +
		"2024-06-04,19:15,cook@patio.example,19.75\n" +
		"2024-06-04,12:00,host@patio.example,14.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePayrollCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayrollCSV(&buf, nil))
	assert.Equal(t, "Date,Time,User Email,Total Cost\n", buf.String())
}

func TestWriteHappyHourCSV(t *testing.T) {
	rows := []HappyHourRow{
		{Date: "2024-06-04", Item: "Patio Burger", Quantity: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteHappyHourCSV(&buf, rows))

	want := "Date,Item,Quantity\n2024-06-04,Patio Burger,2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteOrdersCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOrdersCSV(&buf, sampleOrders()))

	want := "ID,Date,Time,Status,Employee Email,Items,Subtotal,Discount,Total\n" +
		"o1,2024-06-04,19:15,COMPLETED,cook@patio.example,2x Patio Burger; 1x Caesar Salad,39.50,Yes,19.75\n" +
		"o2,2024-06-04,12:00,PENDING,host@patio.example,1x Fish Tacos,14.00,No,14.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteOrdersCSVQuotesCommas(t *testing.T) {
	orders := sampleOrders()[:1]
	orders[0].Items = []domain.CartItem{
		{MenuItem: domain.MenuItem{Name: "Soup, Daily"}, Quantity: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteOrdersCSV(&buf, orders))
	assert.Contains(t, buf.String(), `"1x Soup, Daily"`)
}

func TestBuildPayrollXLSX(t *testing.T) {
	rows := []PayrollRow{
		{Date: "2024-06-04", Time: "19:15", EmployeeEmail: "cook@patio.example", FinalTotal: dec("19.75")},
	}
	f, err := BuildPayrollXLSX(rows)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Payroll"}, sheets)

	header, err := f.GetCellValue("Payroll", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	email, err := f.GetCellValue("Payroll", "C2")
	require.NoError(t, err)
	assert.Equal(t, "cook@patio.example", email)

	total, err := f.GetCellValue("Payroll", "D2")
	require.NoError(t, err)
	assert.Equal(t, "19.75", total)
}
