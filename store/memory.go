package store

import (
	"context"
	"sort"
	"sync"

	"github.com/segmentio/fasthash/fnv1a"
)

const shardCount = 32

type memoryRecord struct {
	version int64
	data    []byte
}

type memoryShard struct {
	records map[string]memoryRecord
	sync.RWMutex
}

type memoryShards []*memoryShard

func (ms memoryShards) index(k string) int {
	return int(fnv1a.HashString32(k) % shardCount)
}

// Memory is an in-process Store. Records are spread over fnv1a-selected
// shards; Commit locks every touched shard in index order.
type Memory struct {
	shards memoryShards

	// mu guards seq and order
	mu    sync.Mutex
	seq   map[Kind]int64
	order map[Kind][]int64
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	shards := make(memoryShards, shardCount)
	for i := range shards {
		shards[i] = &memoryShard{records: make(map[string]memoryRecord)}
	}
	return &Memory{
		shards: shards,
		seq:    make(map[Kind]int64),
		order:  make(map[Kind][]int64),
	}
}

func clone(data []byte) []byte {
	return append([]byte(nil), data...)
}

// Insert implements Store
func (m *Memory) Insert(ctx context.Context, kind Kind, data []byte) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.seq[kind]++
	id := m.seq[kind]

	k := key(kind, id)
	shard := m.shards[m.shards.index(k)]
	shard.Lock()
	shard.records[k] = memoryRecord{version: 1, data: clone(data)}
	shard.Unlock()

	m.order[kind] = append(m.order[kind], id)
	m.mu.Unlock()

	return &Record{Kind: kind, ID: id, Version: 1, Data: clone(data)}, nil
}

// Get implements Store
func (m *Memory) Get(ctx context.Context, kind Kind, id int64) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := key(kind, id)
	shard := m.shards[m.shards.index(k)]
	shard.RLock()
	rec, ok := shard.records[k]
	shard.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &Record{Kind: kind, ID: id, Version: rec.version, Data: clone(rec.data)}, nil
}

// List implements Store
func (m *Memory) List(ctx context.Context, kind Kind, offset int, limit int) ([]*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	ids := append([]int64(nil), m.order[kind]...)
	m.mu.Unlock()

	start, end := window(len(ids), offset, limit)
	recs := make([]*Record, 0, end-start)
	for _, id := range ids[start:end] {
		rec, err := m.Get(ctx, kind, id)
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
func (m *Memory) Commit(ctx context.Context, recs ...*Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keys := make([]string, len(recs))
	touched := make(map[int]bool)
	for i, rec := range recs {
		keys[i] = key(rec.Kind, rec.ID)
		touched[m.shards.index(keys[i])] = true
	}

	indexes := make([]int, 0, len(touched))
	for i := range touched {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	for _, i := range indexes {
		m.shards[i].Lock()
	}
	defer func() {
		for _, i := range indexes {
			m.shards[i].Unlock()
		}
	}()

	for i, rec := range recs {
		current, ok := m.shards[m.shards.index(keys[i])].records[keys[i]]
		if !ok {
			return ErrNotFound
		}
		if current.version != rec.Version {
			return ErrConflict
		}
	}

	for i, rec := range recs {
		m.shards[m.shards.index(keys[i])].records[keys[i]] = memoryRecord{version: rec.Version + 1, data: clone(rec.Data)}
	}
	for _, rec := range recs {
		rec.Version++
	}
	return nil
}

// Delete implements Store
func (m *Memory) Delete(ctx context.Context, kind Kind, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(kind, id)
	shard := m.shards[m.shards.index(k)]
	shard.Lock()
	_, ok := shard.records[k]
	delete(shard.records, k)
	shard.Unlock()
	if !ok {
		return ErrNotFound
	}

	ids := m.order[kind]
	for i, existing := range ids {
		if existing == id {
			m.order[kind] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// Close implements Store
func (m *Memory) Close() error {
	return nil
}
