package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	// Handle is a live database connection: the client plus the database
	// the collections hang off.
	Handle struct {
		Client *mongo.Client
		DB     *mongo.Database
	}

	// DialFunc establishes one physical database connection.
	DialFunc func(ctx context.Context) (*Handle, error)

	// Cache memoizes a database handle for the lifetime of the process.
	// It has three states: empty (no handle, no attempt), connecting
	// (exactly one attempt in flight, shared by every concurrent caller)
	// and connected (handle cached, Acquire is free). A failed attempt
	// returns the cache to empty so the next Acquire retries from
	// scratch. Construct one at startup and inject it; there is no
	// package-level instance.
	Cache struct {
		dial DialFunc

		mu      sync.Mutex
		handle  *Handle
		pending *attempt
	}

	attempt struct {
		done   chan struct{}
		handle *Handle
		err    error
	}
)

func (h *Handle) Collection(name string) *mongo.Collection {
	return h.DB.Collection(name)
}

// DialMongo returns a DialFunc that connects to the given mongodb URI and
// verifies the connection with a ping before handing it out. An empty URI
// is a configuration error, reported without touching the network.
func DialMongo(uri, dbname string) DialFunc {
	return func(ctx context.Context) (*Handle, error) {
		if uri == "" {
			return nil, ConfigError{Name: "MONGODB_URI"}
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			client.Disconnect(context.Background())
			return nil, err
		}
		db := client.Database(dbname)
		if err := ensureIndexes(ctx, db); err != nil {
			client.Disconnect(context.Background())
			return nil, err
		}
		return &Handle{Client: client, DB: db}, nil
	}
}

func NewCache(dial DialFunc) *Cache {
	return &Cache{dial: dial}
}

// Acquire returns the cached handle, joining the in-flight attempt when one
// exists or starting a new one otherwise. Every caller waiting on the same
// attempt observes the same outcome: one handle, or one error. The attempt
// itself is not bound to any single caller's context; a caller that gives
// up early gets ctx.Err() while the attempt keeps going for the others.
func (c *Cache) Acquire(ctx context.Context) (*Handle, error) {
	c.mu.Lock()
	if c.handle != nil {
		h := c.handle
		c.mu.Unlock()
		return h, nil
	}
	att := c.pending
	if att == nil {
		att = &attempt{done: make(chan struct{})}
		c.pending = att
		go c.connect(att)
	}
	c.mu.Unlock()
	select {
	case <-att.done:
		return att.handle, att.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Reset discards the cached handle so the next Acquire dials again. An
// in-flight attempt is left alone.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.handle = nil
	c.mu.Unlock()
}

func (c *Cache) connect(att *attempt) {
	h, err := c.dial(context.Background())
	att.handle, att.err = h, err
	c.mu.Lock()
	if err == nil {
		c.handle = h
	}
	c.pending = nil
	c.mu.Unlock()
	close(att.done)
}
