// Package geo defines the geolocation collaborator consumed by the
// attendance clock-in/out flow. Position acquisition is environment-specific;
// the CLI ships a static implementation fed from configuration.
package geo

import (
	"context"
	"errors"
)

// ErrPermissionDenied is returned when the user or environment refuses to
// share a location.
var ErrPermissionDenied = errors.New("location permission denied")

// Position is a geographic fix. Accuracy is in meters.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

// Provider yields the device's current position. RequestPermission must be
// called (and succeed) before CurrentPosition.
type Provider interface {
	RequestPermission(ctx context.Context) error
	CurrentPosition(ctx context.Context) (Position, error)
}

// Static is a Provider returning a fixed position, typically the configured
// coordinates of the school or the operator's terminal.
type Static struct {
	Pos    Position
	Denied bool
}

var _ Provider = (*Static)(nil)

func (s *Static) RequestPermission(ctx context.Context) error {
	if s.Denied {
		return ErrPermissionDenied
	}
	return nil
}

func (s *Static) CurrentPosition(ctx context.Context) (Position, error) {
	if s.Denied {
		return Position{}, ErrPermissionDenied
	}
	return s.Pos, nil
}
