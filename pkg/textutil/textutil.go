// Copyright (c) 2026 Lemraya. All rights reserved.

/*
Package textutil provides Unicode-aware comparison helpers for search terms.

Arabic and Hebrew input frequently arrives with combining diacritics in
either composed or decomposed form depending on the client's keyboard, so
equality checks normalize to NFC before comparing.
*/
package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean trims surrounding whitespace and normalizes the string to NFC.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// EqualsTerm reports whether the cleaned value exactly equals the cleaned
// term, ignoring case. Substring matches do not count.
func EqualsTerm(value, term string) bool {
	return strings.EqualFold(Clean(value), Clean(term))
}
