package config

import (
	"os"
	"time"
)

// Server settings
const (
	ServerPort         = ":8080"
	ServerUploadLimit  = 10 * 1024 * 1024 // 10MB for post photos
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute
)

// Frontend asset URLs
const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
	HTMXURL        = "https://unpkg.com/htmx.org@2.0.4"
	HTMXSSEURL     = "https://unpkg.com/htmx-ext-sse@2.2.2"
	LeafletCSSURL  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	LeafletJSURL   = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
)

// Map defaults and zoom limits
const (
	MapDefaultLat  = 37.3595704
	MapDefaultLng  = 127.105399
	MapDefaultZoom = 15
	MapMinZoom     = 8
	MapMaxZoom     = 20
)

// SearchDebounce is how long the search box waits after the last
// keystroke before firing a suggestion lookup.
const SearchDebounce = 300 * time.Millisecond

// B2 photo storage settings
const (
	B2AuthEndpoint         = "https://api.backblazeb2.com/b2api/v2/b2_authorize_account"
	B2DownloadAuthEndpoint = "/b2api/v2/b2_get_download_authorization"
	B2DownloadTokenExpiry  = 3600 // seconds
)

// NCP geolocation API (IP fallback)
const (
	NCPGeoLocationURL = "https://geolocation.apigw.ntruss.com"
	NCPGeoLocationURI = "/geolocation/v2/geoLocation"
	IPifyURL          = "https://api.ipify.org?format=json"
)

// ProductChangeChannel is the redis pub/sub channel carrying product
// snapshot change events.
const ProductChangeChannel = "products:changed"

// Environment-backed settings
var (
	DatabaseURL = getenv("DATABASE_URL", "choco-radar.db")
	BaseURL     = getenv("BASE_URL", "http://localhost:8080")

	JWTSecret = getenv("JWT_SECRET", "dev-secret-do-not-use-in-production")

	RedisAddress  = getenv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = os.Getenv("REDIS_PASSWORD")

	TwilioAccountSID     = os.Getenv("TWILIO_ACCOUNT_SID")
	TwilioAuthToken      = os.Getenv("TWILIO_AUTH_TOKEN")
	TwilioFromNumber     = os.Getenv("TWILIO_FROM_NUMBER")
	TwilioSendGridAPIKey = os.Getenv("TWILIO_SENDGRID_API_KEY")
	TwilioFromEmail      = os.Getenv("TWILIO_FROM_EMAIL")

	B2MasterKeyID   = os.Getenv("B2_MASTER_KEY_ID")
	B2KeyID         = os.Getenv("B2_KEY_ID")
	B2AppKey        = os.Getenv("B2_APP_KEY")
	B2BucketID      = os.Getenv("B2_BUCKET_ID")
	B2BucketName    = os.Getenv("B2_BUCKET_NAME")
	B2FileServerURL = os.Getenv("B2_FILE_SERVER_URL")

	NCPAccessKey = os.Getenv("NCP_ACCESS_KEY")
	NCPSecretKey = os.Getenv("NCP_SECRET_KEY")
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
