package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/choco-radar/site/config"
)

// EmailService handles sending emails via Twilio SendGrid
type EmailService struct {
	apiKey string
	from   string
}

// NewEmailService creates a new email service instance
func NewEmailService() (*EmailService, error) {
	apiKey := config.TwilioSendGridAPIKey
	fromEmail := config.TwilioFromEmail

	if apiKey == "" || fromEmail == "" {
		return nil, fmt.Errorf("missing SendGrid configuration")
	}

	return &EmailService{
		apiKey: apiKey,
		from:   fromEmail,
	}, nil
}

type sendGridPayload struct {
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	From struct {
		Email string `json:"email"`
	} `json:"from"`
	Subject string `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

// SendEmail sends an email via the SendGrid HTTP API
func (s *EmailService) SendEmail(to, subject, htmlBody string) error {
	var payload sendGridPayload
	payload.Personalizations = append(payload.Personalizations, struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	}{To: []struct {
		Email string `json:"email"`
	}{{Email: to}}})
	payload.From.Email = s.from
	payload.Subject = subject
	payload.Content = append(payload.Content, struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{Type: "text/html", Value: htmlBody})

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", "https://api.sendgrid.com/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d", resp.StatusCode)
	}
	return nil
}

// SendClaimConfirmation notifies an owner that their claim went through
func (s *EmailService) SendClaimConfirmation(to, storeName string, storeID int) error {
	subject := fmt.Sprintf("Choco Radar: you now manage %s", storeName)
	return s.SendEmail(to, subject, claimConfirmationBody(storeName, storeID))
}

func claimConfirmationBody(storeName string, storeID int) string {
	return fmt.Sprintf(`<p>Your business verification for <strong>%s</strong> was approved.</p>
<p><a href="%s/store/%d">Open your store page</a> to update stock status and post announcements.</p>`,
		storeName, config.BaseURL, storeID)
}
