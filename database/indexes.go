package database

import (
	"context"
	"fmt"
	"time"

	"gest35bi/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func IndicatorIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		// DASHBOARD: grouping and per-OEO counts
		// Used by: CountByCategory aggregation
		{
			Keys:    bson.D{{Key: "oeo", Value: 1}},
			Options: options.Index().SetName("idx_oeo"),
		},
	}
}

func CreateIndicatorIndexes(ctx context.Context, collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	names, err := collection.Indexes().CreateMany(ctx, IndicatorIndexes())
	if err != nil {
		return fmt.Errorf("failed to create indicator indexes: %w", err)
	}

	logger.L.WithField("indexes", names).Info("indicator indexes ready")
	return nil
}
