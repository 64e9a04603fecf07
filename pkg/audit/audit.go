// Package audit records status transitions in a MongoDB collection.
//
// Every accepted order or custom-form status change is written as one
// document so support staff can answer "who moved this order to Shipped and
// when" without trawling application logs. Writes are designed for zero
// impact on the request path:
//
//   - Entries are enqueued into a buffered channel (non-blocking).
//   - A single background goroutine drains the channel and performs
//     InsertMany in batches.
//   - If the channel is full the entry is dropped; auditing must never
//     block a status update.
//
// When MONGO_URI is not configured the package is a no-op and Record
// silently discards entries.
package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/kashvi-admin/config"
	"github.com/shashiranjanraj/kashvi-admin/pkg/reqid"
)

const (
	queueSize  = 4096
	batchSize  = 50
	drainTick  = 2 * time.Second
	collection = "status_audit"
)

// Entry is the document shape stored in MongoDB.
type Entry struct {
	Time      time.Time `bson:"time"`
	Entity    string    `bson:"entity"` // "order" | "custom_form"
	EntityID  uint      `bson:"entity_id"`
	From      string    `bson:"from"`
	To        string    `bson:"to"`
	ActorID   uint      `bson:"actor_id,omitempty"`
	RequestID string    `bson:"request_id,omitempty"`
}

// Trail is the async writer. The zero value is a disabled trail.
type Trail struct {
	col    *mongo.Collection
	client *mongo.Client
	queue  chan Entry
	done   chan struct{}
}

var trail = &Trail{} // disabled until Connect succeeds

// Connect opens the MongoDB connection and starts the drain goroutine.
// A missing MONGO_URI is not an error: the trail stays disabled.
func Connect() error {
	uri := config.MongoURI()
	if uri == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("audit: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("audit: ping: %w", err)
	}

	col := client.Database(config.MongoDatabase()).Collection(collection)

	// Time index so the trail can be queried and trimmed by age.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "time", Value: -1}},
	})

	trail = &Trail{
		col:    col,
		client: client,
		queue:  make(chan Entry, queueSize),
		done:   make(chan struct{}),
	}
	go trail.drainLoop()
	return nil
}

// Record enqueues a status-transition entry. Non-blocking; the request_id is
// taken from ctx when present.
func Record(ctx context.Context, entity string, entityID uint, from, to string, actorID uint) {
	if trail.queue == nil {
		return
	}
	e := Entry{
		Time:      time.Now().UTC(),
		Entity:    entity,
		EntityID:  entityID,
		From:      from,
		To:        to,
		ActorID:   actorID,
		RequestID: reqid.FromCtx(ctx),
	}
	select {
	case trail.queue <- e:
	default:
		// queue full — drop rather than block the status update
	}
}

// Close flushes pending entries and disconnects. Safe to call when disabled.
func Close() {
	if trail.done == nil {
		return
	}
	select {
	case <-trail.done:
	default:
		close(trail.done)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = trail.client.Disconnect(ctx)
}

func (t *Trail) drainLoop() {
	ticker := time.NewTicker(drainTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _ = t.col.InsertMany(ctx, batch) // best-effort
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case e := <-t.queue:
			batch = append(batch, e)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-t.done:
			for len(t.queue) > 0 {
				batch = append(batch, <-t.queue)
			}
			flush()
			return
		}
	}
}
