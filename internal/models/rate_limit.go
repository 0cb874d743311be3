package models

// RateUsage is the summed quota across every token in the pool
type RateUsage struct {
	Limit     int `json:"limit"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// RateLimitReport is the /rate_limit response body
type RateLimitReport struct {
	Rate RateUsage `json:"rate"`
}
