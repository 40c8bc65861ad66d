package model

import "github.com/code-surya/nomad/internal/constants"

// Principal is the authenticated caller as resolved from a bearer token.
type Principal struct {
	ID    string
	Email string
	Role  constants.Role
}
