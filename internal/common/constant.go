package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// APIKeyHeaderName carries the store public key. Every call must present it,
// including unauthenticated ones such as SignIn.
const APIKeyHeaderName = "apikey"

// RecentMessagesLimit is how many of the latest messages the client keeps.
const RecentMessagesLimit = 10
