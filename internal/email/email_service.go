package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Service sends transactional storefront mail. The consumer uses it to
// confirm placed orders; everything is best-effort.
type Service interface {
	SendOrderConfirmation(ctx context.Context, to, orderID string, totalPrice float64) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "onboarding@resend.dev"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   "https://api.resend.com",
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendOrderConfirmation(ctx context.Context, to, orderID string, totalPrice float64) error {
	html := fmt.Sprintf(
		"<p>Thanks for your order!</p><p>Order <strong>%s</strong> has been received and is being processed.</p><p>Order total: $%.2f</p>",
		orderID,
		totalPrice,
	)
	return s.send(ctx, to, fmt.Sprintf("Order confirmation %s", orderID), html)
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]interface{}{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("resend responded %d: %s", res.StatusCode, string(msg))
	}
	return nil
}

type noopService struct{}

func (*noopService) SendOrderConfirmation(context.Context, string, string, float64) error {
	return nil
}
