package handler_test

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"io"
	"testing"
	"time"

	"movieflix/constants"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptColumns() []string {
	return []string{"id", "booking_id", "customer_id", "receipt_number", "movie_title",
		"show_time", "show_date", "total_amount", "payment_method", "transaction_id"}
}

func receiptRow(id, bookingId, customerId uint) []driver.Value {
	return []driver.Value{id, bookingId, customerId, "RCP-AB12CD34EF", "Inception",
		"6:00 PM", time.Now(), 400.0, constants.PAYMENT_METHOD_RAZORPAY, "pay_xyz"}
}

func TestGetMyReceipts(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT \* FROM "receipts"`).
		WillReturnRows(sqlmock.NewRows(receiptColumns()).AddRow(receiptRow(1, 7, 3)...))
	mock.ExpectQuery(`SELECT \* FROM "receipt_seats"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "receipt_id", "row", "number"}).
			AddRow(1, 1, "A", 1).
			AddRow(2, 1, "A", 2))

	resp := getJSON(t, app, "/api/receipts/my-receipts", authToken(t, 3))
	require.Equal(t, 200, resp.StatusCode)

	var receipts []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&receipts))
	require.Len(t, receipts, 1)
	assert.Equal(t, "RCP-AB12CD34EF", receipts[0]["receiptNumber"])
	assert.Len(t, receipts[0]["seats"], 2)
}

func TestGetMyReceipts_Unauthorized(t *testing.T) {
	newMockDB(t)
	app := setupApp()

	resp := getJSON(t, app, "/api/receipts/my-receipts", "")
	assert.Equal(t, 401, resp.StatusCode)
}

func TestGetReceiptById_NotFound(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT \* FROM "receipts"`).
		WillReturnRows(sqlmock.NewRows(receiptColumns()))

	resp := getJSON(t, app, "/api/receipts/9", authToken(t, 3))
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, constants.RECEIPT_NOT_FOUND, decodeBody(t, resp)["message"])
}

func TestGetReceiptById_Forbidden(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	// owned by customer 999
	mock.ExpectQuery(`SELECT \* FROM "receipts"`).
		WillReturnRows(sqlmock.NewRows(receiptColumns()).AddRow(receiptRow(1, 7, 999)...))
	mock.ExpectQuery(`SELECT \* FROM "receipt_seats"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "receipt_id", "row", "number"}))

	resp := getJSON(t, app, "/api/receipts/1", authToken(t, 3))
	assert.Equal(t, 403, resp.StatusCode)
	assert.Equal(t, constants.ACCESS_DENIED, decodeBody(t, resp)["message"])
}

func TestGetReceiptById_Success(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT \* FROM "receipts"`).
		WillReturnRows(sqlmock.NewRows(receiptColumns()).AddRow(receiptRow(1, 7, 3)...))
	mock.ExpectQuery(`SELECT \* FROM "receipt_seats"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "receipt_id", "row", "number"}).
			AddRow(1, 1, "B", 5))

	resp := getJSON(t, app, "/api/receipts/1", authToken(t, 3))
	require.Equal(t, 200, resp.StatusCode)

	var receipt map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&receipt))
	assert.Equal(t, float64(7), receipt["bookingId"])
	assert.Equal(t, constants.PAYMENT_METHOD_RAZORPAY, receipt["paymentMethod"])
	assert.Equal(t, "pay_xyz", receipt["transactionId"])
}

func TestGetReceiptQRCode(t *testing.T) {
	mock := newMockDB(t)
	app := setupApp()

	mock.ExpectQuery(`SELECT \* FROM "receipts"`).
		WillReturnRows(sqlmock.NewRows(receiptColumns()).AddRow(receiptRow(1, 7, 3)...))
	mock.ExpectQuery(`SELECT \* FROM "receipt_seats"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "receipt_id", "row", "number"}))

	resp := getJSON(t, app, "/api/receipts/1/qr", authToken(t, 3))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	assert.True(t, bytes.HasPrefix(body, pngMagic))
}
