package geoip

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/choco-radar/site/config"
)

func TestSign(t *testing.T) {
	// Signature must be deterministic for fixed inputs
	a := sign("secret", "GET", "/geolocation/v2/geoLocation?ip=1.2.3.4", "1700000000000", "access")
	b := sign("secret", "GET", "/geolocation/v2/geoLocation?ip=1.2.3.4", "1700000000000", "access")
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)

	// Any input change must change the signature
	c := sign("secret", "GET", "/geolocation/v2/geoLocation?ip=1.2.3.5", "1700000000000", "access")
	assert.NotEqual(t, a, c)
}

func TestLookupNCPWithoutCredentials(t *testing.T) {
	oldAccess, oldSecret := config.NCPAccessKey, config.NCPSecretKey
	config.NCPAccessKey, config.NCPSecretKey = "", ""
	defer func() {
		config.NCPAccessKey, config.NCPSecretKey = oldAccess, oldSecret
	}()

	_, err := lookupNCP("1.2.3.4")
	assert.Error(t, err)
}
