// Package transport embeds and extracts LZTOK tokens in URLs.
//
// The token travels as a query or fragment parameter. Transport is a
// thin adapter around the codec: it owns the percent-escaping of the
// symbol string and the plus-sign normalization that undoes ambiguous
// form decoding, and nothing else. Token contents are opaque here;
// decoding belongs to package lztok.
package transport

import (
	"fmt"
	"net/url"
	"strings"
)

// EscapeToken percent-escapes a symbol string for placement inside a
// query or fragment parameter. Of the codec alphabet only '+' and '$'
// need escaping; everything else passes through.
func EscapeToken(token string) string {
	return url.QueryEscape(token)
}

// UnescapeToken reverses EscapeToken and normalizes the result. It
// fails when the input carries malformed percent escapes.
func UnescapeToken(s string) (string, error) {
	dec, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("unescape token: %w", err)
	}
	return NormalizeToken(dec), nil
}

// NormalizeToken maps every space back to '+'. Form-style URL
// decoders turn an unescaped '+' into a space; the codec alphabet
// contains '+' and never a space, so the mapping is unambiguous. The
// normalization must run exactly once, after percent-unescaping and
// before the token reaches the decoder.
func NormalizeToken(s string) string {
	return strings.ReplaceAll(s, " ", "+")
}

// Embed places a token into rawURL under the named parameter. When
// the URL already carries a fragment, the token joins the fragment's
// parameter set: fragment-side tokens never reach server logs. Plain
// URLs get the token as a query parameter.
func Embed(rawURL, param, token string) (string, error) {
	if param == "" {
		return "", fmt.Errorf("embed token: empty parameter name")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("embed token: parse url: %w", err)
	}

	if u.Fragment != "" {
		fv, err := url.ParseQuery(u.EscapedFragment())
		if err != nil {
			return "", fmt.Errorf("embed token: parse fragment: %w", err)
		}
		fv.Set(param, token)
		u.Fragment = ""
		u.RawFragment = ""
		return u.String() + "#" + fv.Encode(), nil
	}

	q := u.Query()
	q.Set(param, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Extract pulls the named parameter out of rawURL, fragment first and
// query second, then percent-unescapes and normalizes it. The second
// return reports whether the parameter was present at all; an absent
// parameter is not an error.
func Extract(rawURL, param string) (string, bool, error) {
	if param == "" {
		return "", false, fmt.Errorf("extract token: empty parameter name")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, fmt.Errorf("extract token: parse url: %w", err)
	}

	if u.Fragment != "" {
		if fv, err := url.ParseQuery(u.EscapedFragment()); err == nil {
			if vs, ok := fv[param]; ok && len(vs) > 0 {
				return NormalizeToken(vs[0]), true, nil
			}
		}
	}

	vs, ok := u.Query()[param]
	if !ok || len(vs) == 0 {
		return "", false, nil
	}
	return NormalizeToken(vs[0]), true, nil
}
