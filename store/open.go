package store

import (
	"context"
	"fmt"

	"BEARSTY_server/config"

	"github.com/go-redis/redis/v8"
)

// Open builds the Store selected by cfg.Driver
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return NewMemory(), nil
	case config.DriverRedis:
		return DialRedis(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case config.DriverCassandra:
		return DialCassandra(ctx, cfg.Cassandra.Hosts, cfg.Cassandra.Keyspace, cfg.Cassandra.Consistency)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
