// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package cache

import "strings"

// keySeparator joins namespace and discriminator in Key.String.
const keySeparator = "::"

// Key identifies a cached value by namespace and discriminator.
type Key struct {
	Namespace     string
	Discriminator string
}

// NewKey builds a Key from a namespace and discriminator.
func NewKey(namespace, discriminator string) Key {
	return Key{Namespace: namespace, Discriminator: discriminator}
}

// String returns the canonical "namespace::discriminator" form.
func (k Key) String() string {
	return k.Namespace + keySeparator + k.Discriminator
}

// NormalizeToken trims and lower-cases a key component so that
// equivalent user inputs map to the same key.
func NormalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
