package config

// Rate limit configuration for the API
type RateLimitConfig struct {
	Rate  int // Maximum requests per minute per client
	Burst int // Burst capacity
}

// DefaultRateLimitConfig covers the admin CRUD surface. The access check
// endpoint is called once per course view by the host platform, so it gets a
// much higher budget.
var DefaultRateLimitConfig = RateLimitConfig{
	Rate:  10000,
	Burst: 1500,
}

var AccessCheckRateLimitConfig = RateLimitConfig{
	Rate:  60000,
	Burst: 5000,
}
