// Package device turns raw User-Agent strings into short display names for
// audit events, so operators see "Chrome on Mac OS X" instead of a full
// User-Agent header.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// Unknown is the label used when the User-Agent is empty or unparseable.
const Unknown = "Unknown Device"

// ParseUserAgent produces a human-readable device label from a User-Agent
// header value.
func ParseUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return Unknown
	}

	ua := useragent.New(raw)
	browser, _ := ua.Browser()

	platform := ua.OSInfo().Name
	if ua.Mobile() && ua.Platform() != "" {
		// On phones the platform names the device (iPhone, iPad), which is
		// more recognizable than the OS string.
		platform = ua.Platform()
	}
	if platform == "" {
		platform = ua.Platform()
	}

	switch {
	case browser != "" && platform != "":
		return browser + " on " + platform
	case browser != "":
		return browser
	case platform != "":
		return platform
	default:
		return Unknown
	}
}
