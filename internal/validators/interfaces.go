// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks identity requests before they reach the
// services.
//
// A [Validator] reports every failing field at once as [ValidationErrors],
// whose Fields map is what the API returns as the `data` of a 422 response.
// Each failure wraps a sentinel from errors.go, so callers can also match a
// single rule with errors.Is.
package validators

import "context"

// Validator validates one request value. When fields are given, only those
// fields are checked; an unknown field name is itself an error.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
