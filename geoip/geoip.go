// Package geoip resolves an approximate user coordinate from an IP
// address via the NCP Geolocation API. It is the fallback coordinate
// source when the browser provides no GPS fix.
package geoip

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/choco-radar/site/cache"
	"github.com/choco-radar/site/config"
	"github.com/choco-radar/site/geo"
)

var lookupCache *cache.Cache[geo.Point]

// Init initializes the geoip lookup cache. This should be called
// during application startup.
func Init() error {
	var err error
	lookupCache, err = cache.New[geo.Point](func(geo.Point) int64 {
		return 16
	}, "GeoIP Cache")
	return err
}

// Lookup resolves an IP address to a coordinate, from cache when
// possible. Loopback addresses are first resolved to the public IP via
// ipify so local development still yields a usable coordinate.
func Lookup(ip string) (geo.Point, error) {
	if ip == "127.0.0.1" || ip == "::1" {
		publicIP, err := publicIP()
		if err != nil {
			return geo.Point{}, fmt.Errorf("failed to resolve public IP: %w", err)
		}
		ip = publicIP
	}

	if point, found := lookupCache.Get(ip); found {
		return point, nil
	}

	point, err := lookupNCP(ip)
	if err != nil {
		return geo.Point{}, err
	}

	lookupCache.SetWithTTL(ip, point, 16, time.Hour)
	return point, nil
}

type ipifyResponse struct {
	IP string `json:"ip"`
}

func publicIP() (string, error) {
	status, body, err := fasthttp.Get(nil, config.IPifyURL)
	if err != nil {
		return "", err
	}
	if status != fasthttp.StatusOK {
		return "", fmt.Errorf("ipify returned status %d", status)
	}

	var resp ipifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	return resp.IP, nil
}

type ncpResponse struct {
	GeoLocation *struct {
		Lat  float64 `json:"lat"`
		Long float64 `json:"long"`
	} `json:"geoLocation"`
}

// lookupNCP calls the NCP Geolocation API with an HMAC-SHA256 signed
// request.
func lookupNCP(ip string) (geo.Point, error) {
	accessKey := config.NCPAccessKey
	secretKey := config.NCPSecretKey
	if accessKey == "" || secretKey == "" {
		return geo.Point{}, fmt.Errorf("NCP credentials not set")
	}

	uri := config.NCPGeoLocationURI + "?ip=" + ip + "&ext=t&enc=utf8"
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(config.NCPGeoLocationURL + uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("x-ncp-apigw-timestamp", timestamp)
	req.Header.Set("x-ncp-iam-access-key", accessKey)
	req.Header.Set("x-ncp-apigw-signature-v2", sign(secretKey, fasthttp.MethodGet, uri, timestamp, accessKey))

	if err := fasthttp.DoTimeout(req, resp, 5*time.Second); err != nil {
		return geo.Point{}, fmt.Errorf("NCP geolocation request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return geo.Point{}, fmt.Errorf("NCP geolocation returned status %d", resp.StatusCode())
	}

	var decoded ncpResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return geo.Point{}, fmt.Errorf("failed to decode NCP response: %w", err)
	}
	if decoded.GeoLocation == nil {
		return geo.Point{}, fmt.Errorf("no geolocation data for IP %s", ip)
	}

	return geo.Point{Lat: decoded.GeoLocation.Lat, Lng: decoded.GeoLocation.Long}, nil
}

// sign builds the NCP API gateway signature:
// HMAC-SHA256 over "METHOD URI\ntimestamp\naccessKey", base64 encoded.
func sign(secretKey, method, uri, timestamp, accessKey string) string {
	message := method + " " + uri + "\n" + timestamp + "\n" + accessKey
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
