// Package algo holds the pure ranking engine: scenario rules, user filters,
// ordering and intensity normalization. Nothing in here performs I/O.
package algo

import (
	"errors"
	"fmt"

	"github.com/huangsam/llmpick/schema"
)

// ErrInvalidArgument is wrapped by every error caused by a value outside a
// closed enumeration (scenario, filter mode, sort mode, benchmark, level).
var ErrInvalidArgument = errors.New("invalid argument")

// capabilityRanks maps each capability level to its ordinal rank.
var capabilityRanks = map[schema.CapabilityLevel]int{
	schema.BasicLevel:     1,
	schema.GoodLevel:      2,
	schema.AdvancedLevel:  3,
	schema.ExcellentLevel: 4,
	schema.ThinkModeLevel: 5,
}

// RankOf returns the ordinal rank of a capability level.
func RankOf(level schema.CapabilityLevel) (int, error) {
	r, ok := capabilityRanks[level]
	if !ok {
		return 0, fmt.Errorf("%w: unknown capability level '%s'", ErrInvalidArgument, level)
	}
	return r, nil
}

// atLeast reports whether level ranks at or above floor. Unknown levels never qualify.
func atLeast(level, floor schema.CapabilityLevel) bool {
	r, err := RankOf(level)
	if err != nil {
		return false
	}
	f, err := RankOf(floor)
	if err != nil {
		return false
	}
	return r >= f
}
