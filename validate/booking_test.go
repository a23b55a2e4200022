package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movieflix/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(middleware fiber.Handler, onPass func(c *fiber.Ctx) error) *fiber.App {
	app := fiber.New()
	app.Post("/", middleware, onPass)
	return app
}

func post(t *testing.T, app *fiber.App, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateOrder_PassesInputThrough(t *testing.T) {
	var got model.CreateOrderInput
	app := testApp(CreateOrder(), func(c *fiber.Ctx) error {
		got = c.Locals("input").(model.CreateOrderInput)
		return c.SendStatus(200)
	})

	resp := post(t, app,
		`{"movieId":1,"showTimeId":2,"seats":[{"row":"A","number":1},{"row":"A","number":2}],"totalAmount":400}`)

	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, uint(1), got.MovieId)
	assert.Equal(t, uint(2), got.ShowTimeId)
	assert.Len(t, got.Seats, 2)
	assert.Equal(t, 400.0, got.TotalAmount)
}

func TestCreateOrder_RejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"movieId":`},
		{"missing seats", `{"movieId":1,"showTimeId":2,"totalAmount":200}`},
		{"empty seats", `{"movieId":1,"showTimeId":2,"seats":[],"totalAmount":200}`},
		{"seat without row", `{"movieId":1,"showTimeId":2,"seats":[{"number":1}],"totalAmount":200}`},
		{"seat number zero", `{"movieId":1,"showTimeId":2,"seats":[{"row":"A","number":0}],"totalAmount":200}`},
		{"duplicate seats", `{"movieId":1,"showTimeId":2,"seats":[{"row":"A","number":1},{"row":"A","number":1}],"totalAmount":400}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(CreateOrder(), func(c *fiber.Ctx) error {
				t.Fatal("handler should not run")
				return nil
			})
			resp := post(t, app, tc.body)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestVerifyPayment_RejectsMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing signature", `{"bookingId":7,"razorpayOrderId":"order_abc","razorpayPaymentId":"pay_xyz"}`},
		{"missing order id", `{"bookingId":7,"razorpayPaymentId":"pay_xyz","razorpaySignature":"sig"}`},
		{"missing booking id", `{"razorpayOrderId":"order_abc","razorpayPaymentId":"pay_xyz","razorpaySignature":"sig"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(VerifyPayment(), func(c *fiber.Ctx) error {
				t.Fatal("handler should not run")
				return nil
			})
			resp := post(t, app, tc.body)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestGetById(t *testing.T) {
	app := fiber.New()
	app.Get("/:movieId", GetById("movieId"), func(c *fiber.Ctx) error {
		id := c.Locals("inputId").(uint)
		return c.JSON(fiber.Map{"id": id})
	})

	ok := httptest.NewRequest(http.MethodGet, "/12", nil)
	resp, err := app.Test(ok, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	for _, bad := range []string{"/abc", "/0", "/-3"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, bad, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, bad)
	}
}
