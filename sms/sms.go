package sms

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	Api "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/choco-radar/site/config"
)

type SMSService struct {
	client *twilio.RestClient
	from   string
}

// NewSMSService creates a new SMS service instance
func NewSMSService() (*SMSService, error) {
	accountSid := config.TwilioAccountSID
	authToken := config.TwilioAuthToken
	fromNumber := config.TwilioFromNumber

	if accountSid == "" || authToken == "" || fromNumber == "" {
		return nil, fmt.Errorf("missing Twilio configuration")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &SMSService{
		client: client,
		from:   fromNumber,
	}, nil
}

func (s *SMSService) send(phoneNumber, message string) error {
	params := &Api.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(s.from)
	params.SetBody(message)

	_, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// SendVerificationCode sends an owner registration code via SMS
func (s *SMSService) SendVerificationCode(phoneNumber, code string) error {
	message := fmt.Sprintf("Your Choco Radar verification code is: %s. "+
		"This code expires in 10 minutes.", code)

	if err := s.send(phoneNumber, message); err != nil {
		log.Printf("[SMS] Failed to send verification code to %s: %v", phoneNumber, err)
		return err
	}

	log.Printf("[SMS] Verification code sent to %s", phoneNumber)
	return nil
}

// SendSightingAlert nudges an owner when customers report stock that
// contradicts the current listing.
func (s *SMSService) SendSightingAlert(phoneNumber, storeName string) error {
	message := fmt.Sprintf("Choco Radar: customers are reporting that %s has stock. "+
		"Update your listing if that's right.", storeName)

	if err := s.send(phoneNumber, message); err != nil {
		log.Printf("[SMS] Failed to send sighting alert to %s: %v", phoneNumber, err)
		return err
	}
	return nil
}

// MockSMSService is used for testing without sending actual SMS
type MockSMSService struct {
	sentCodes map[string]string
}

func NewMockSMSService() *MockSMSService {
	return &MockSMSService{
		sentCodes: make(map[string]string),
	}
}

func (m *MockSMSService) SendVerificationCode(phoneNumber, code string) error {
	m.sentCodes[phoneNumber] = code
	return nil
}

func (m *MockSMSService) SentCode(phoneNumber string) string {
	return m.sentCodes[phoneNumber]
}
