// Package client is the CLI's boundary to the TouchBase data store.
//
// Client is the contract the services depend on; GRPCClient implements it
// over gRPC with the generated touchbase.v1.Store stubs. Every call carries the
// store public key, authenticated calls carry the access token, and an
// expired access token is refreshed once per call by a unary interceptor.
//
// Session changes (sign-in, refresh, sign-out, expiry) are published to
// subscribers registered with Subscribe.
//
// Errors: store statuses are mapped to ErrUnavailable, ErrUnauthorized,
// common.ErrorNotFound, common.ErrorValidation, or *AuthError whose text is
// the store's message unchanged.
//
// InitDatabase and RunMigrations prepare the local SQLite session file.
package client
