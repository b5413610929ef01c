package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolia/pkg/logger"
)

// PaystackPaymentService talks to the Paystack HTTP API. MPesa donations go
// through the mobile_money channel of the same gateway.
type PaystackPaymentService struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewPaystackPaymentService(secretKey string) *PaystackPaymentService {
	return &PaystackPaymentService{
		secretKey: secretKey,
		baseURL:   "https://api.paystack.co",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type paystackInitRequest struct {
	Email     string   `json:"email"`
	Amount    int64    `json:"amount"`
	Currency  string   `json:"currency,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Channels  []string `json:"channels,omitempty"`
}

type paystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string `json:"status"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Channel  string `json:"channel"`
		PaidAt   string `json:"paid_at"`
		Customer struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

func (p *PaystackPaymentService) InitializePayment(ctx context.Context, req PaymentRequest) (*PaymentInit, error) {
	logger.Info("Initializing Paystack transaction: reference=%s amount=%d %s", req.Reference, req.Amount, req.Currency)

	payload := paystackInitRequest{
		Email:     req.Email,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Reference: req.Reference,
		Channels:  req.Channels,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/transaction/initialize", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Paystack initialize error: %s", string(respBody))
		return nil, fmt.Errorf("paystack API error: %s", string(respBody))
	}

	var initResp paystackInitResponse
	if err := json.Unmarshal(respBody, &initResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}
	if !initResp.Status {
		return nil, fmt.Errorf("paystack rejected transaction: %s", initResp.Message)
	}

	return &PaymentInit{
		AuthorizationURL: initResp.Data.AuthorizationURL,
		AccessCode:       initResp.Data.AccessCode,
		Reference:        initResp.Data.Reference,
	}, nil
}

func (p *PaystackPaymentService) VerifyPayment(ctx context.Context, reference string) (*PaymentVerification, error) {
	logger.Info("Verifying Paystack transaction: reference=%s", reference)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Paystack verify error: %s", string(respBody))
		return nil, fmt.Errorf("paystack verify API error: %s", string(respBody))
	}

	var verifyResp paystackVerifyResponse
	if err := json.Unmarshal(respBody, &verifyResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	// Normalize gateway status to our internal vocabulary.
	status := "pending"
	switch verifyResp.Data.Status {
	case "success":
		status = "success"
	case "failed", "abandoned", "reversed":
		status = "failed"
	}

	paidAt, _ := time.Parse(time.RFC3339, verifyResp.Data.PaidAt)

	return &PaymentVerification{
		Reference: reference,
		Status:    status,
		Amount:    verifyResp.Data.Amount,
		Currency:  verifyResp.Data.Currency,
		Channel:   verifyResp.Data.Channel,
		Email:     verifyResp.Data.Customer.Email,
		PaidAt:    paidAt,
	}, nil
}
