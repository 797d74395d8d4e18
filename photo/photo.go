// Package photo processes and stores announcement photos: uploads are
// resized, webp-encoded, pushed to B2, and served through cached
// signed download URLs.
package photo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	"gopkg.in/kothar/go-backblaze.v0"

	"github.com/choco-radar/site/cache"
	"github.com/choco-radar/site/config"
)

const (
	maxWidth    = 960
	webpQuality = 80
)

var (
	tokenCache *cache.Cache[string]
	bucket     *backblaze.Bucket
)

// Init initializes the token cache and the B2 bucket handle. This
// should be called during application startup; missing B2 credentials
// are not fatal, posting photos is then disabled.
func Init() error {
	var err error
	tokenCache, err = cache.New[string](func(value string) int64 {
		return int64(len(value))
	}, "B2 Token Cache")
	if err != nil {
		return err
	}

	if config.B2KeyID == "" || config.B2AppKey == "" || config.B2BucketName == "" {
		return nil
	}

	b2, err := backblaze.NewB2(backblaze.Credentials{
		AccountID:      config.B2MasterKeyID,
		KeyID:          config.B2KeyID,
		ApplicationKey: config.B2AppKey,
	})
	if err != nil {
		return fmt.Errorf("B2 auth error: %w", err)
	}

	bucket, err = b2.Bucket(config.B2BucketName)
	if err != nil {
		return fmt.Errorf("B2 bucket error: %w", err)
	}
	return nil
}

// Enabled reports whether photo storage is configured.
func Enabled() bool {
	return bucket != nil
}

// Process decodes an uploaded image, scales it down to at most
// maxWidth, and re-encodes it as webp.
func Process(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := src.Bounds()
	if b.Dx() > maxWidth {
		height := b.Dy() * maxWidth / b.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	opt := &webp.Options{Lossless: false, Quality: webpQuality}
	if err := webp.Encode(&out, src, opt); err != nil {
		return nil, fmt.Errorf("webp encode error: %w", err)
	}
	return out.Bytes(), nil
}

// Upload stores a processed photo under the store's prefix and returns
// its object key.
func Upload(storeID int, data []byte) (string, error) {
	if bucket == nil {
		return "", fmt.Errorf("B2 storage not configured")
	}

	key := fmt.Sprintf("%d/%d.webp", storeID, time.Now().UnixNano())
	_, err := bucket.UploadTypedFile(key, "image/webp", nil, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("B2 upload error: %w", err)
	}
	return key, nil
}

// SignedURL returns a download URL for a stored photo, using a cached
// per-prefix download authorization token. Returns "" when photos are
// not configured or the token lookup fails; callers fall back to not
// rendering the image.
func SignedURL(key string) string {
	if key == "" || config.B2FileServerURL == "" {
		return ""
	}

	token, err := downloadTokenForPrefixCached(keyPrefix(key))
	if err != nil || token == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s?Authorization=%s", config.B2FileServerURL, key, token)
}

// keyPrefix returns the store directory portion of a key, e.g.
// "22/1712.webp" -> "22/".
func keyPrefix(key string) string {
	for i, r := range key {
		if r == '/' {
			return key[:i+1]
		}
	}
	return key
}

func downloadTokenForPrefixCached(prefix string) (string, error) {
	if token, found := tokenCache.Get(prefix); found {
		return token, nil
	}
	token, err := downloadTokenForPrefix(prefix)
	if err != nil {
		return "", err
	}
	// Cache for slightly less than the token expiry so a cached URL
	// never outlives its authorization.
	ttl := time.Duration(config.B2DownloadTokenExpiry-600) * time.Second
	tokenCache.SetWithTTL(prefix, token, int64(len(token)), ttl)
	return token, nil
}

// downloadTokenForPrefix fetches a B2 download authorization token for
// a store directory prefix (e.g. "22/").
func downloadTokenForPrefix(prefix string) (string, error) {
	keyID := config.B2KeyID
	appKey := config.B2AppKey
	bucketID := config.B2BucketID
	if keyID == "" || appKey == "" || bucketID == "" {
		return "", fmt.Errorf("B2 credentials not set")
	}

	req, _ := http.NewRequest("GET", config.B2AuthEndpoint, nil)
	req.SetBasicAuth(keyID, appKey)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("B2 auth error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("B2 auth failed: %s", resp.Status)
	}
	var authResp struct {
		APIURL    string `json:"apiUrl"`
		AuthToken string `json:"authorizationToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return "", fmt.Errorf("B2 auth decode error: %w", err)
	}

	body, _ := json.Marshal(map[string]interface{}{
		"bucketId":               bucketID,
		"fileNamePrefix":         prefix,
		"validDurationInSeconds": int64(config.B2DownloadTokenExpiry),
	})
	req2, _ := http.NewRequest("POST", authResp.APIURL+config.B2DownloadAuthEndpoint, bytes.NewReader(body))
	req2.Header.Set("Authorization", authResp.AuthToken)
	req2.Header.Set("Content-Type", "application/json")
	resp2, err := http.DefaultClient.Do(req2)
	if err != nil {
		return "", fmt.Errorf("B2 get_download_authorization error: %w", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		return "", fmt.Errorf("B2 get_download_authorization failed: %s", resp2.Status)
	}
	var tokenResp struct {
		AuthorizationToken string `json:"authorizationToken"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("B2 token decode error: %w", err)
	}
	return tokenResp.AuthorizationToken, nil
}
