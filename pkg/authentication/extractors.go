// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	HeaderAuthorization = "Authorization"
	SchemeBearer        = "Bearer"
)

// ExtractorFunc locates a token in the request; ("", nil) means no token is present
type ExtractorFunc func(r *http.Request) (string, error)

// FromAuthHeaderAsBearerToken reads `Authorization: Bearer <token>`
func FromAuthHeaderAsBearerToken() ExtractorFunc {
	return FromAuthHeaderWithScheme(SchemeBearer)
}

// FromAuthHeaderWithScheme reads the Authorization header for the given scheme, matched case-insensitively
func FromAuthHeaderWithScheme(scheme string) ExtractorFunc {
	scheme = strings.TrimSpace(scheme)

	return func(r *http.Request) (string, error) {
		value := strings.TrimSpace(r.Header.Get(HeaderAuthorization))
		l := len(scheme)

		if len(value) <= l+1 || !strings.EqualFold(value[:l], scheme) || value[l] != ' ' {
			return "", nil
		}

		return strings.TrimSpace(value[l+1:]), nil
	}
}

// FromHeader uses the raw header value as the token
func FromHeader(name string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		return strings.TrimSpace(r.Header.Get(name)), nil
	}
}

func FromURLQueryParameter(name string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		return r.URL.Query().Get(name), nil
	}
}

func FromCookie(name string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		c, err := r.Cookie(name)
		if errors.Is(err, http.ErrNoCookie) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return c.Value, nil
	}
}

// FromURLParam reads a chi route parameter, only populated once the route has been matched
func FromURLParam(name string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		return chi.URLParam(r, name), nil
	}
}

// FromExtractors returns the first token found, an extractor error stops the search
func FromExtractors(extractors ...ExtractorFunc) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		for _, e := range extractors {
			token, err := e(r)
			if err != nil {
				return "", err
			}
			if token != "" {
				return token, nil
			}
		}
		return "", nil
	}
}

// ExtractorFromLookup builds an extractor from a lookup string such as
// header:Authorization,query:token,cookie:jwt,param:token
// The Authorization header is read with the given scheme, other headers raw.
func ExtractorFromLookup(lookup string, scheme string) (ExtractorFunc, error) {
	extractors := make([]ExtractorFunc, 0)

	for _, part := range ParseList(lookup) {
		source, name, found := strings.Cut(part, ":")
		source = strings.TrimSpace(source)
		name = strings.TrimSpace(name)

		if !found || name == "" {
			return nil, fmt.Errorf("invalid token lookup %q, expected <source>:<name>", part)
		}

		switch source {
		case "header":
			if strings.EqualFold(name, HeaderAuthorization) && scheme != "" {
				extractors = append(extractors, FromAuthHeaderWithScheme(scheme))
			} else {
				extractors = append(extractors, FromHeader(name))
			}
		case "query":
			extractors = append(extractors, FromURLQueryParameter(name))
		case "cookie":
			extractors = append(extractors, FromCookie(name))
		case "param":
			extractors = append(extractors, FromURLParam(name))
		default:
			return nil, fmt.Errorf("unsupported token lookup source %q", source)
		}
	}

	if len(extractors) == 0 {
		return nil, ErrMissingExtractor
	}

	if len(extractors) == 1 {
		return extractors[0], nil
	}

	return FromExtractors(extractors...), nil
}
