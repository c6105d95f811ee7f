package constants

// Redis key formats
const (
	// Stats Service
	KeyDashboardStats = "stats:dashboard:%s:%s" // Format: stats:dashboard:{user_id}:{period}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)

// Cache TTLs in seconds
const (
	DashboardStatsTTL = 60
)
