package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a topology node id for safety and correctness.
// It rejects ids that could break cache keys or be used for injection.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// The layout engine itself tolerates any id (it only hashes and indexes
// them); this helper is for the API boundary where ids come from callers.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNodeID, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNodeID, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeID, "node id contains invalid control characters")
		}
	}

	return nil
}

// ValidateBaseURL validates a control-plane base URL.
// It ensures the URL has a safe scheme (http or https).
func ValidateBaseURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "base URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "base URL must use http or https scheme")
	}

	return nil
}

// ValidateCanvas validates canvas dimensions against the clamping margin.
// A canvas narrower than twice the margin has no drawable area.
func ValidateCanvas(width, height, margin float64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidConfig, "canvas dimensions must be positive")
	}
	if margin < 0 {
		return New(ErrCodeInvalidConfig, "margin cannot be negative")
	}
	if width <= 2*margin || height <= 2*margin {
		return New(ErrCodeInvalidConfig, "canvas %gx%g leaves no drawable area inside margin %g", width, height, margin)
	}
	return nil
}
