package helper

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"movieflix/config"
	"movieflix/model"
)

// Razorpay gateway service
type Razorpay struct {
	Config model.RazorpayConfig
	Client *http.Client
}

func NewRazorpay() *Razorpay {
	return &Razorpay{
		Config: model.RazorpayConfig{
			KeyId:     config.Config("RAZORPAY_KEY_ID"),
			KeySecret: config.Config("RAZORPAY_KEY_SECRET"),
			BaseURL:   config.ConfigOr("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		},
		// Bounded timeout: a hung gateway call must surface as an order
		// failure, not hold the request open.
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateOrder registers a payment intent with the gateway. Amount is in paise.
func (r *Razorpay) CreateOrder(req model.OrderRequest) (*model.OrderResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, r.Config.BaseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(r.Config.KeyId, r.Config.KeySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay order creation failed: status %d: %s", resp.StatusCode, string(body))
	}

	var order model.OrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifySignature checks the gateway callback signature:
// hex HMAC-SHA256 of "orderId|paymentId" keyed with the secret.
func (r *Razorpay) VerifySignature(orderId, paymentId, signature string) bool {
	mac := hmac.New(sha256.New, []byte(r.Config.KeySecret))
	mac.Write([]byte(orderId + "|" + paymentId))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
