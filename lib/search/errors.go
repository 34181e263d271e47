// Package search walks index cursors through the edit operation tree
// of a query under an error budget and streams the resulting hits
package search

import (
	logs "github.com/osallou/fmindex-go-playground/lib/log"
)

var logger = logs.GetLogger("fmi.search")

// ConfigurationError reports an inconsistent search configuration,
// detected before any traversal starts
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return "invalid search configuration: " + e.Reason
}

// AccessError signals a read of a result field that was not selected
// in the configuration. This is a programming error, it is raised as
// a panic by the result accessors.
type AccessError struct {
	Field string
}

func (e AccessError) Error() string {
	return "access to unselected result field: " + e.Field
}
