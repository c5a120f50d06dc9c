package billing

import "errors"

var (
	// ErrUnknownPackage is returned when a package id is not in the catalog.
	ErrUnknownPackage = errors.New("unknown membership package")

	// ErrUnknownPlan is returned when a personal-training plan id is not in
	// the catalog.
	ErrUnknownPlan = errors.New("unknown personal training plan")

	// ErrMissingPlan is returned when personal training is selected without
	// naming a plan.
	ErrMissingPlan = errors.New("personal training plan required")
)
