package analytics

import (
	"fmt"
)

// ErrRoiUndefined is returned when the implementation cost total is zero.
type ErrRoiUndefined struct {
	error
}

func NewErrRoiUndefined(storeCount int, perStoreImplementationCost float64) *ErrRoiUndefined {
	return &ErrRoiUndefined{fmt.Errorf("roi undefined: implementation cost total is zero (%d stores at %.2f per store)", storeCount, perStoreImplementationCost)}
}

// ErrEmptyScenarioSet is returned when an aggregation receives no layout scenarios.
type ErrEmptyScenarioSet struct {
	error
}

func NewErrEmptyScenarioSet(operation string) *ErrEmptyScenarioSet {
	return &ErrEmptyScenarioSet{fmt.Errorf("%s: empty scenario set", operation)}
}
