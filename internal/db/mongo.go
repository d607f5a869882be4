package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/utils"
)

// Logical collection names.
const (
	CollectionDraw       = "draw"
	CollectionPrediction = "prediction"
)

const connectTimeout = 10 * time.Second

type MongoService struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

func NewMongoService(log *logger.Logger) (*MongoService, error) {
	serviceLog := log.With("service", "MongoService")

	log.Info("Loading environment variables...")
	databaseURL := utils.GetEnv("DATABASE_URL", "mongodb://localhost:27017", log)
	databaseName := utils.GetEnv("DATABASE_NAME", "appdb", log)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	log.Info("Connecting to Mongo...")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(databaseURL))
	if err != nil {
		serviceLog.Error("Failed to connect to Mongo", "error", err)
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		serviceLog.Error("Failed to ping Mongo", "error", err)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoService{
		client: client,
		db:     client.Database(databaseName),
		log:    serviceLog,
	}, nil
}

// EnsureIndexes creates the collection indexes used by the read paths.
// CreateMany is idempotent, so this is safe to run on every startup.
func (s *MongoService) EnsureIndexes(ctx context.Context) error {
	s.log.Info("Ensuring Mongo indexes...")

	_, err := s.db.Collection(CollectionDraw).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure draw indexes: %w", err)
	}

	_, err = s.db.Collection(CollectionPrediction).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "matched.latest_match", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure prediction indexes: %w", err)
	}

	s.log.Debug("Mongo indexes ensured")
	return nil
}

func (s *MongoService) Database() *mongo.Database {
	return s.db
}

func (s *MongoService) Close(ctx context.Context) error {
	s.log.Info("Disconnecting from Mongo...")
	return s.client.Disconnect(ctx)
}
