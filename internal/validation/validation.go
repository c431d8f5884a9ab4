// Package validation holds the well-formedness checks for original
// URLs and custom short codes. Both checks are pure functions.
package validation

import (
	"net/url"
	"strings"
)

// MaxURLLength is the longest original URL accepted for shortening.
const MaxURLLength = 2048

// ValidURL reports whether rawURL is acceptable as an original URL:
// at most MaxURLLength bytes, an http or https scheme, and a non-empty
// host containing at least one dot.
func ValidURL(rawURL string) bool {
	if rawURL == "" || len(rawURL) > MaxURLLength {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := u.Hostname()

	return host != "" && strings.Contains(host, ".")
}

// ValidCode reports whether code is a well-formed short code: exactly
// length characters, all drawn from alphabet.
func ValidCode(code, alphabet string, length int) bool {
	if len(code) != length {
		return false
	}

	for i := 0; i < len(code); i++ {
		if strings.IndexByte(alphabet, code[i]) < 0 {
			return false
		}
	}

	return true
}
