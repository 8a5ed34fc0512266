// Package utils provides general-purpose helper utilities used across the
// Pad client: identifier generation, request signing, bearer token
// inspection and the resty HTTP client wrapper.
package utils
