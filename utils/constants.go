package utils

import "time"

// ContextCachePrefix is the prefix used for Redis conversation context keys.
const ContextCachePrefix = "reception:ctx:"

// ContextCacheTTL is the time-to-live for conversation context entries.
const ContextCacheTTL = 30 * time.Minute

// ReceptionWaitTimeout bounds how long a caller waits for the resolver to
// answer before the request is reported as a transient failure.
const ReceptionWaitTimeout = 30 * time.Second
