package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"gocamp/dto"
	"gocamp/errors"
)

// PaymentGateway collaborator bên ngoài: tạo intent, xác thực webhook, refund.
// Mọi lời gọi gateway phải nằm ngoài transaction storage đang giữ lock.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (*dto.PaymentIntent, error)
	VerifyWebhook(payload []byte, signature string) (*dto.GatewayEvent, error)
	Refund(ctx context.Context, intentID string) error
}

// HTTPPaymentGateway client REST của payment gateway.
// Webhook được xác thực bằng HMAC-SHA256 trên raw payload.
type HTTPPaymentGateway struct {
	baseURL       string
	apiKey        string
	webhookSecret string
	client        *http.Client
}

func NewHTTPPaymentGateway(baseURL, apiKey, webhookSecret string) *HTTPPaymentGateway {
	return &HTTPPaymentGateway{
		baseURL:       strings.TrimRight(baseURL, "/"),
		apiKey:        apiKey,
		webhookSecret: webhookSecret,
		client:        &http.Client{Timeout: 15 * time.Second},
	}
}

// NewHTTPPaymentGatewayFromEnv đọc cấu hình gateway từ biến môi trường
func NewHTTPPaymentGatewayFromEnv() *HTTPPaymentGateway {
	return NewHTTPPaymentGateway(
		os.Getenv("GATEWAY_URL"),
		os.Getenv("GATEWAY_API_KEY"),
		os.Getenv("GATEWAY_WEBHOOK_SECRET"),
	)
}

func (g *HTTPPaymentGateway) CreateIntent(ctx context.Context, amount float64, currency string) (*dto.PaymentIntent, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"amount":   amount,
		"currency": currency,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/intents", bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeExternalService, "Không tạo được request đến gateway", err)
	}
	req.SetBasicAuth(g.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeExternalService, "Gọi gateway thất bại", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, errors.NewAppError(errors.ErrCodeExternalService,
			fmt.Sprintf("Gateway trả về status %s khi tạo intent", resp.Status), nil)
	}

	var out struct {
		IntentID     string `json:"intent_id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeExternalService, "Không parse được phản hồi gateway", err)
	}

	return &dto.PaymentIntent{IntentID: out.IntentID, ClientSecret: out.ClientSecret}, nil
}

// VerifyWebhook so sánh HMAC-SHA256 của payload với chữ ký trong header.
// Event giả mạo bị loại ở đây, không gây thay đổi trạng thái nào.
func (g *HTTPPaymentGateway) VerifyWebhook(payload []byte, signature string) (*dto.GatewayEvent, error) {
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.TrimSpace(signature))) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidSignature, "Chữ ký webhook không hợp lệ", nil)
	}

	var event dto.GatewayEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Payload webhook không hợp lệ", err)
	}
	if event.IntentID == "" || event.Type == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Event thiếu intent_id hoặc type", nil)
	}

	return &event, nil
}

func (g *HTTPPaymentGateway) Refund(ctx context.Context, intentID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/v1/intents/%s/refunds", g.baseURL, intentID), nil)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeExternalService, "Không tạo được request refund", err)
	}
	req.SetBasicAuth(g.apiKey, "")

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeExternalService, "Gọi refund thất bại", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errors.NewAppError(errors.ErrCodeExternalService,
			fmt.Sprintf("Gateway trả về status %s khi refund", resp.Status), nil)
	}
	return nil
}
