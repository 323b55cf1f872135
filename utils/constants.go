package utils

import "time"

// CatalogCacheKey holds the JSON-encoded service catalog.
const CatalogCacheKey = "catalog:services"

// AdminCachePrefix prefixes the cached admin flag of an email.
const AdminCachePrefix = "auth:admin:"

func AdminCacheKey(email string) string {
	return AdminCachePrefix + email
}

// HealthCheckInterval is how often external dependencies are pinged.
const HealthCheckInterval = 60 * time.Second
