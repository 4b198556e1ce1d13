// File: utils/constants.go
package utils

import "time"

const (
	// RoleCachePrefix is the prefix used for cached user roles.
	RoleCachePrefix = "role:"
	// RoleCacheTTL bounds how long a role change can take to be observed.
	RoleCacheTTL = time.Minute

	// BannerCachePrefix is the prefix used for the cached active banner.
	BannerCachePrefix = "banner:"
	BannerCacheTTL    = 10 * time.Minute

	// PrincipalKey is the gin context key holding the verified email.
	PrincipalKey = "principal"
)
