// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pad/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// The original error stays in the chain so callers can still match adapter sentinels.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrOffline, err)
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return err
}
