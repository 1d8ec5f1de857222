package iphash

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// fallbackAddr is used when no forwarded-address header is present,
// e.g. direct local requests during development.
const fallbackAddr = "127.0.0.1"

// FromRequest extracts the originating address for rate-limit identity:
// the first comma-separated entry of X-Forwarded-For, or the loopback
// fallback when the header is absent.
func FromRequest(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return fallbackAddr
	}
	addr := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	if addr == "" {
		return fallbackAddr
	}
	return addr
}

// Hash maps an address to its hex-encoded SHA-256 digest. Deterministic and
// unsalted, so the same address always yields the same identifier; the IPv4
// space is small enough that the digest is dictionary-reversible, which is an
// accepted tradeoff for a soft abuse deterrent.
func Hash(addr string) string {
	sum := sha256.Sum256([]byte(addr))
	return hex.EncodeToString(sum[:])
}
