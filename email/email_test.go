package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/choco-radar/site/config"
)

func TestNewEmailServiceMissingConfig(t *testing.T) {
	savedKey, savedFrom := config.TwilioSendGridAPIKey, config.TwilioFromEmail
	config.TwilioSendGridAPIKey = ""
	config.TwilioFromEmail = ""
	defer func() {
		config.TwilioSendGridAPIKey, config.TwilioFromEmail = savedKey, savedFrom
	}()

	_, err := NewEmailService()
	assert.Error(t, err)
}

func TestClaimConfirmationBodyLinksStorePage(t *testing.T) {
	saved := config.BaseURL
	config.BaseURL = "https://choco-radar.example"
	defer func() { config.BaseURL = saved }()

	body := claimConfirmationBody("Choco House", 7)

	assert.Contains(t, body, "Choco House")
	assert.Contains(t, body, `href="https://choco-radar.example/store/7"`)
}
