package database

import (
	"context"
	"time"

	"gest35bi/config"
	"gest35bi/logger"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client and pings the primary. A client is only returned
// when the ping succeeds.
func Connect(ctx context.Context, cfg config.Database) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	return client, nil
}

// IsReplicaSet reports whether the deployment is a replica set, logging
// its name. Failures are logged and reported as false.
func IsReplicaSet(ctx context.Context, client *mongo.Client) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result bson.M
	err := client.Database("admin").RunCommand(ctx, bson.M{"hello": 1}).Decode(&result)
	if err != nil {
		logger.L.WithError(err).Warn("failed to inspect MongoDB deployment")
		return false
	}

	if setName, exists := result["setName"]; exists {
		logger.L.WithField("set_name", setName).Info("MongoDB is part of a replica set")
		return true
	}

	logger.L.Info("MongoDB is not part of a replica set")
	return false
}
