// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis booking session keys.
const SessionCachePrefix = "booking:session:"

// SessionTTL is how long an in-progress booking draft survives without activity.
const SessionTTL = 30 * time.Minute
