//go:build !mobile

// Package mobile is only populated with -tags mobile; see mobile.go.
package mobile

// Dummy is an exported no-op so the package builds without the mobile tag.
func Dummy() {}
