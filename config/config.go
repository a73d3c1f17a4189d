package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string

	// LowStockThreshold is the stock level below which an inventory item is
	// reported as Low Stock. Zero stock is always Out of Stock.
	LowStockThreshold int
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
