package spincube

import "errors"

var (
	ErrNoCamera        = errors.New("spincube: scene has no camera")
	ErrNotInScene      = errors.New("spincube: entity is not a scene member")
	ErrUnknownGeometry = errors.New("spincube: unknown geometry asset")
	ErrUnknownMaterial = errors.New("spincube: unknown material asset")
	ErrInvalidConfig   = errors.New("spincube: invalid config")
)
