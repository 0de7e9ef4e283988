package configs

// Redis holds configuration for the shared key-value store backing the
// frequency limiter. Addr is a host:port pair accepted by the go-redis
// client.
type Redis struct {
	// Addr is the Redis server address. Defaults to a local instance.
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// Password authenticates against the server when set.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical database number.
	DB int `env:"DB" envDefault:"0"`
}
