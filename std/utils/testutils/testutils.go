// Package testutils holds the assertion shorthands shared by package tests.
package testutils

import (
	"github.com/stretchr/testify/require"
)

// current is the test the shorthands report to. Tests in one package run
// sequentially unless they call t.Parallel, which these helpers do not support.
var current require.TestingT

// SetT makes t the target of NoErr and Err. Call it first in every test.
func SetT(t require.TestingT) {
	current = t
}

func helper() {
	if h, ok := current.(interface{ Helper() }); ok {
		h.Helper()
	}
}

// NoErr fails the test if err is set, and returns v otherwise.
func NoErr[T any](v T, err error) T {
	helper()
	require.NoError(current, err)
	return v
}

// Err fails the test unless err is set, and returns err for further checks.
func Err[T any](_ T, err error) error {
	helper()
	require.Error(current, err)
	return err
}
