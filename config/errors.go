// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrNoSpace indicates a scenario without space levels.
	ErrNoSpace = errors.New("config: scenario defines no space levels")

	// ErrNoSchedule indicates a scenario without steps.
	ErrNoSchedule = errors.New("config: scenario defines no schedule")

	// ErrInvalid indicates an out-of-range scenario value.
	ErrInvalid = errors.New("config: invalid value")
)
