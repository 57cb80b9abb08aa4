package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// Redis layout:
//
//	<Kind>:<id>      hash {data, version}
//	ids:<Kind>       INCR counter for id allocation
//	index:<Kind>     sorted set of ids scored by id (creation order)
const (
	fieldData    = "data"
	fieldVersion = "version"
)

// Redis is a Store backed by a redis server. Commit is a WATCH/MULTI/EXEC
// transaction over every record key.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing client
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// DialRedis connects and pings the server
func DialRedis(ctx context.Context, opts *redis.Options) (*Redis, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return NewRedis(client), nil
}

func idsKey(kind Kind) string {
	return "ids:" + string(kind)
}

func indexKey(kind Kind) string {
	return "index:" + string(kind)
}

// Insert implements Store
func (r *Redis) Insert(ctx context.Context, kind Kind, data []byte) (*Record, error) {
	id, err := r.client.Incr(ctx, idsKey(kind)).Result()
	if err != nil {
		return nil, fmt.Errorf("allocate %s id: %w", kind, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key(kind, id), fieldData, data, fieldVersion, 1)
		pipe.ZAdd(ctx, indexKey(kind), &redis.Z{Score: float64(id), Member: id})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", key(kind, id), err)
	}

	return &Record{Kind: kind, ID: id, Version: 1, Data: data}, nil
}

func hydrate(kind Kind, id int64, res map[string]string) (*Record, error) {
	if len(res) == 0 {
		return nil, ErrNotFound
	}
	version, err := strconv.ParseInt(res[fieldVersion], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt version on %s: %w", key(kind, id), err)
	}
	return &Record{Kind: kind, ID: id, Version: version, Data: []byte(res[fieldData])}, nil
}

// Get implements Store
func (r *Redis) Get(ctx context.Context, kind Kind, id int64) (*Record, error) {
	res, err := r.client.HGetAll(ctx, key(kind, id)).Result()
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key(kind, id), err)
	}
	return hydrate(kind, id, res)
}

// List implements Store
func (r *Redis) List(ctx context.Context, kind Kind, offset int, limit int) ([]*Record, error) {
	if limit == 0 {
		return []*Record{}, nil
	}
	stop := int64(-1)
	if limit > 0 && limit <= math.MaxInt-offset {
		stop = int64(offset + limit - 1)
	}

	members, err := r.client.ZRange(ctx, indexKey(kind), int64(offset), stop).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	ids := make([]int64, len(members))
	cmds := make([]*redis.StringStringMapCmd, len(members))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, member := range members {
			id, err := strconv.ParseInt(member, 10, 64)
			if err != nil {
				return fmt.Errorf("corrupt index member %q: %w", member, err)
			}
			ids[i] = id
			cmds[i] = pipe.HGetAll(ctx, key(kind, id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	recs := make([]*Record, 0, len(members))
	for i, cmd := range cmds {
		rec, err := hydrate(kind, ids[i], cmd.Val())
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Commit implements Store
func (r *Redis) Commit(ctx context.Context, recs ...*Record) error {
	keys := make([]string, len(recs))
	for i, rec := range recs {
		keys[i] = key(rec.Kind, rec.ID)
	}

	txf := func(tx *redis.Tx) error {
		for i, rec := range recs {
			version, err := tx.HGet(ctx, keys[i], fieldVersion).Int64()
			if err == redis.Nil {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			if version != rec.Version {
				return ErrConflict
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, rec := range recs {
				pipe.HSet(ctx, keys[i], fieldData, rec.Data, fieldVersion, rec.Version+1)
			}
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, keys...)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrConflict
	}
	if err != nil {
		if err == ErrNotFound || err == ErrConflict {
			return err
		}
		return fmt.Errorf("commit %v: %w", keys, err)
	}

	for _, rec := range recs {
		rec.Version++
	}
	return nil
}

// Delete implements Store
func (r *Redis) Delete(ctx context.Context, kind Kind, id int64) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, key(kind, id))
		pipe.ZRem(ctx, indexKey(kind), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key(kind, id), err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close implements Store
func (r *Redis) Close() error {
	return r.client.Close()
}
