// File: internal/middleware/bridgekey.go
package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
)

// BridgeKeyHeader is the shared-secret header the inbound-email bridge
// presents on every delivery.
const BridgeKeyHeader = "X-Bridge-Key"

// RequireBridgeKey rejects bridge deliveries whose shared secret does not
// match, before any store access. The comparison is constant-time.
func RequireBridgeKey(bridgeKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(BridgeKeyHeader)
			if bridgeKey == "" || presented == "" ||
				subtle.ConstantTimeCompare([]byte(presented), []byte(bridgeKey)) != 1 {
				log.Printf("[BridgeMiddleware] Rejected delivery from %s: bad or missing %s", r.RemoteAddr, BridgeKeyHeader)
				writeUnauthorized(w, "invalid bridge key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
