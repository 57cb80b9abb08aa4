package store

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"
)

// sequenceAttempts bounds the compare-and-set loop allocating ids
const sequenceAttempts = 16

// Cassandra is a Store backed by a Cassandra/ScyllaDB keyspace. Records of one
// kind share a partition, so a Commit touching a single kind is one
// conditional logged batch. A Commit spanning kinds runs one lightweight
// transaction per record in argument order and can stop half way.
type Cassandra struct {
	session *gocql.Session
}

// NewCassandra wraps an existing session and creates the tables if needed
func NewCassandra(ctx context.Context, session *gocql.Session) (*Cassandra, error) {
	err := session.Query(`
		CREATE TABLE IF NOT EXISTS entities (
			kind text,
			id bigint,
			data blob,
			version bigint,
			PRIMARY KEY (kind, id))
		WITH CLUSTERING ORDER BY (id ASC) AND
		compaction = { 'class' :  'LeveledCompactionStrategy'  };
	`).WithContext(ctx).Exec()
	if err != nil {
		return nil, fmt.Errorf("create entities: %w", err)
	}

	err = session.Query(`
		CREATE TABLE IF NOT EXISTS entity_sequences (
			kind text,
			next_id bigint,
			PRIMARY KEY (kind));
	`).WithContext(ctx).Exec()
	if err != nil {
		return nil, fmt.Errorf("create entity_sequences: %w", err)
	}

	return &Cassandra{session: session}, nil
}

// DialCassandra opens a session on the keyspace
func DialCassandra(ctx context.Context, hosts []string, keyspace string, consistency string) (*Cassandra, error) {
	level, err := gocql.ParseConsistencyWrapper(consistency)
	if err != nil {
		return nil, err
	}

	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = level
	cluster.SerialConsistency = gocql.Serial

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("cassandra session %v: %w", hosts, err)
	}

	c, err := NewCassandra(ctx, session)
	if err != nil {
		session.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cassandra) nextID(ctx context.Context, kind Kind) (int64, error) {
	for i := 0; i < sequenceAttempts; i++ {
		var next int64
		err := c.session.Query(`
			SELECT next_id FROM entity_sequences WHERE kind = ? LIMIT 1;`,
			string(kind),
		).WithContext(ctx).Scan(&next)

		if err == gocql.ErrNotFound {
			applied, err := c.session.Query(`
				INSERT INTO entity_sequences (kind, next_id)
				VALUES(?,?)
				IF NOT EXISTS;`,
				string(kind),
				int64(2),
			).WithContext(ctx).MapScanCAS(make(map[string]interface{}))
			if err != nil {
				return 0, err
			}
			if applied {
				return 1, nil
			}
			continue
		}
		if err != nil {
			return 0, err
		}

		applied, err := c.session.Query(`
			UPDATE entity_sequences
			SET next_id = ?
			WHERE kind = ?
			IF next_id = ?;`,
			next+1,
			string(kind),
			next,
		).WithContext(ctx).MapScanCAS(make(map[string]interface{}))
		if err != nil {
			return 0, err
		}
		if applied {
			return next, nil
		}
	}
	return 0, fmt.Errorf("allocate %s id: %w", kind, ErrConflict)
}

// Insert implements Store
func (c *Cassandra) Insert(ctx context.Context, kind Kind, data []byte) (*Record, error) {
	id, err := c.nextID(ctx, kind)
	if err != nil {
		return nil, err
	}

	applied, err := c.session.Query(`
		INSERT INTO entities (kind, id, data, version)
		VALUES(?,?,?,?)
		IF NOT EXISTS;`,
		string(kind),
		id,
		data,
		int64(1),
	).WithContext(ctx).MapScanCAS(make(map[string]interface{}))
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", key(kind, id), err)
	}
	if !applied {
		return nil, fmt.Errorf("insert %s: %w", key(kind, id), ErrConflict)
	}

	return &Record{Kind: kind, ID: id, Version: 1, Data: data}, nil
}

// Get implements Store
func (c *Cassandra) Get(ctx context.Context, kind Kind, id int64) (*Record, error) {
	rec := &Record{Kind: kind, ID: id}
	err := c.session.Query(`
		SELECT data, version FROM entities WHERE kind = ? AND id = ? LIMIT 1;`,
		string(kind),
		id,
	).WithContext(ctx).Scan(&rec.Data, &rec.Version)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key(kind, id), err)
	}
	return rec, nil
}

// List implements Store
func (c *Cassandra) List(ctx context.Context, kind Kind, offset int, limit int) ([]*Record, error) {
	iter := c.session.Query(`
		SELECT id, data, version FROM entities WHERE kind = ?;`,
		string(kind),
	).WithContext(ctx).PageSize(500).Iter()

	recs := make([]*Record, 0)
	var (
		id      int64
		data    []byte
		version int64
		skipped int
	)
	for limit < 0 || len(recs) < limit {
		if !iter.Scan(&id, &data, &version) {
			break
		}
		if skipped < offset {
			skipped++
			continue
		}
		recs = append(recs, &Record{Kind: kind, ID: id, Version: version, Data: clone(data)})
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return recs, nil
}

const commitStatement = `
	UPDATE entities
	SET data = ?, version = ?
	WHERE kind = ? AND id = ?
	IF version = ?;`

func casResult(applied bool, current map[string]interface{}) error {
	if applied {
		return nil
	}
	if current["version"] == nil {
		return ErrNotFound
	}
	return ErrConflict
}

// Commit implements Store
func (c *Cassandra) Commit(ctx context.Context, recs ...*Record) error {
	if len(recs) == 0 {
		return nil
	}

	sameKind := true
	for _, rec := range recs[1:] {
		if rec.Kind != recs[0].Kind {
			sameKind = false
		}
	}

	if sameKind && len(recs) > 1 {
		batch := c.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
		for _, rec := range recs {
			batch.Query(commitStatement, rec.Data, rec.Version+1, string(rec.Kind), rec.ID, rec.Version)
		}
		current := make(map[string]interface{})
		applied, iter, err := c.session.MapExecuteBatchCAS(batch, current)
		if iter != nil {
			iter.Close()
		}
		if err != nil {
			return fmt.Errorf("commit batch %s: %w", recs[0].Kind, err)
		}
		if err := casResult(applied, current); err != nil {
			return err
		}
		for _, rec := range recs {
			rec.Version++
		}
		return nil
	}

	for _, rec := range recs {
		current := make(map[string]interface{})
		applied, err := c.session.Query(commitStatement,
			rec.Data,
			rec.Version+1,
			string(rec.Kind),
			rec.ID,
			rec.Version,
		).WithContext(ctx).MapScanCAS(current)
		if err != nil {
			return fmt.Errorf("commit %s: %w", key(rec.Kind, rec.ID), err)
		}
		if err := casResult(applied, current); err != nil {
			return err
		}
		rec.Version++
	}
	return nil
}

// Delete implements Store
func (c *Cassandra) Delete(ctx context.Context, kind Kind, id int64) error {
	applied, err := c.session.Query(`
		DELETE FROM entities WHERE kind = ? AND id = ? IF EXISTS;`,
		string(kind),
		id,
	).WithContext(ctx).MapScanCAS(make(map[string]interface{}))
	if err != nil {
		return fmt.Errorf("delete %s: %w", key(kind, id), err)
	}
	if !applied {
		return ErrNotFound
	}
	return nil
}

// Close implements Store
func (c *Cassandra) Close() error {
	c.session.Close()
	return nil
}
