// Package proto holds the touchbase.v1.Store messages and gRPC stubs
// generated from api/touchbase/v1/store.proto. Regenerate from the
// repository root with:
//
//	buf generate
package proto
