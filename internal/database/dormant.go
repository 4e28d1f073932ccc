package database

import "strings"

// IsDormantError reports whether err looks like a hosted database that has
// been suspended for inactivity rather than a hard failure. Callers use this
// to distinguish "wake it up and retry" from "storage is broken".
func IsDormantError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, keyword := range dormantErrorKeywords {
		if strings.Contains(msg, keyword) {
			return true
		}
	}
	return false
}
