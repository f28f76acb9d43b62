package utils

import "net/url"

// CheckedGlyph renders a checked flag as the glyph the admin list views show.
func CheckedGlyph(checked bool) string {
	if checked {
		return "✔"
	}
	return "✘"
}

// MapsLink builds an external map link from a free-form location string.
// Empty locations produce no link.
func MapsLink(location string) string {
	if location == "" {
		return ""
	}
	return "https://maps.google.com/?q=" + url.QueryEscape(location)
}
