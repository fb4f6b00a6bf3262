package registry

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/sigil/pkg/symbol"
)

// DefaultMongoCollection is the collection symbols are read from when none
// is configured.
const DefaultMongoCollection = "symbols"

// MongoConfig configures a [MongoSource].
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoSource reads symbol definitions from a MongoDB collection. Each
// document has the same shape as a JSON symbol file.
type MongoSource struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoSource connects to MongoDB and verifies the connection.
func NewMongoSource(ctx context.Context, cfg MongoConfig) (*MongoSource, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	name := cfg.Collection
	if name == "" {
		name = DefaultMongoCollection
	}
	return &MongoSource{
		client: client,
		coll:   client.Database(cfg.Database).Collection(name),
	}, nil
}

// NewMongoSourceFromCollection wraps an existing collection.
func NewMongoSourceFromCollection(coll *mongo.Collection) *MongoSource {
	return &MongoSource{coll: coll}
}

func (s *MongoSource) String() string {
	return "mongo:" + s.coll.Database().Name() + "." + s.coll.Name()
}

// Load implements [Source]. Documents are returned sorted by name.
func (s *MongoSource) Load(ctx context.Context) ([]*symbol.Definition, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find symbols: %w", err)
	}
	defer cur.Close(ctx)

	var defs []*symbol.Definition
	if err := cur.All(ctx, &defs); err != nil {
		return nil, fmt.Errorf("decode symbols: %w", err)
	}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return defs, nil
}

// Close disconnects the client when the source owns it.
func (s *MongoSource) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
