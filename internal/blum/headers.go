package blum

import (
	"net/http"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

// DefaultHeaders returns the mini-app WebView header set for a fingerprint
func DefaultHeaders(fp domain.Fingerprint) http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Content-Type", "application/json")
	h.Set("Origin", appOrigin)
	h.Set("Referer", appReferer)
	h.Set("Priority", "u=1, i")
	h.Set("Sec-Ch-Ua-Mobile", "?1")
	h.Set("Sec-Ch-Ua-Platform", `"Android"`)
	h.Set("Sec-Fetch-Dest", "empty")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Sec-Fetch-Site", "same-site")
	h.Set("X-Requested-With", "org.telegram.messenger")
	if fp.UserAgent != "" {
		h.Set("User-Agent", fp.UserAgent)
	}
	if fp.SecChUa != "" {
		h.Set("Sec-Ch-Ua", fp.SecChUa)
	}
	return h
}
