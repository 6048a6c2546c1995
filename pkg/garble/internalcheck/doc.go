// Package internalcheck holds source-policy tests for pkg/garble.
//
// The garbling library promises to be total: no operation may panic
// and no error may surface at runtime. The tests in this package load
// the library source and reject explicit panic calls, along with use
// of the legacy non-seedable math/rand package.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not
// be imported by applications. Use pkg/garble instead.
package internalcheck
