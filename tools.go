//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen (invoked through
// the //go:generate directives on interface files) tracked in go.mod.
package talk

import (
	_ "go.uber.org/mock/mockgen"
)
