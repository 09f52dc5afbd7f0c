// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi, falling back
// to the provided default when the string is empty or not an integer. The
// handlers use it to parse the "limit" and "offset" query parameters, where
// a garbled value should mean "use the default page window", not an error.
//
// Example:
//
//	limit := utils.AtoiDefault(c.Query("limit"), 0)  // "" -> 0
//	offset := utils.AtoiDefault("x", 0)              // unparseable -> 0
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
