package models

import "errors"

var (
	// ErrUnknownState indicates a state name outside New, Active, Resolved, Closed, Removed
	ErrUnknownState = errors.New("unknown work item state")
)
