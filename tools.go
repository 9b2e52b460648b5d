//go:build tools
// +build tools

// Package tools tracks code generators invoked through go generate so that
// go.mod and go.sum stay in sync with them.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
