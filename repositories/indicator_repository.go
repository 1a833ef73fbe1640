package repository

import (
	"context"
	"errors"
	"time"

	"gest35bi/apperrors"
	"gest35bi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=indicator_repository.go -destination=mocks/indicator_repository_mock.go -package=mocks

type IndicatorRepository interface {
	Create(ctx context.Context, indicator *models.Indicator) error
	GetAll(ctx context.Context) ([]models.Indicator, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Indicator, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.IndicatorUpdate) (*models.Indicator, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetMonthlyValue(ctx context.Context, id primitive.ObjectID, month, value string) (*models.Indicator, error)
	// Analytics
	CountByCategory(ctx context.Context) ([]models.CategoryCount, error)
}

type indicatorRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewIndicatorRepository(collection *mongo.Collection) IndicatorRepository {
	return &indicatorRepository{
		collection: collection,
		now:        time.Now,
	}
}

const entityName = "indicator"

func notFound(id primitive.ObjectID) error {
	return apperrors.NewNotFoundError(entityName, id.Hex())
}

func (r *indicatorRepository) Create(ctx context.Context, indicator *models.Indicator) error {
	now := r.now().UTC()
	indicator.ID = primitive.NewObjectID()
	indicator.Metadata.CreatedAt = now
	indicator.Metadata.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, indicator); err != nil {
		return apperrors.NewStoreError("insert indicator", err)
	}
	return nil
}

func (r *indicatorRepository) GetAll(ctx context.Context) ([]models.Indicator, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewStoreError("find indicators", err)
	}
	defer cursor.Close(ctx)

	indicators := []models.Indicator{}
	if err = cursor.All(ctx, &indicators); err != nil {
		return nil, apperrors.NewStoreError("decode indicators", err)
	}

	return indicators, nil
}

func (r *indicatorRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Indicator, error) {
	var indicator models.Indicator
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&indicator)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperrors.NewStoreError("find indicator", err)
	}

	return &indicator, nil
}

func (r *indicatorRepository) Update(ctx context.Context, id primitive.ObjectID, update models.IndicatorUpdate) (*models.Indicator, error) {
	set := bson.M{"metadata.updated_at": r.now().UTC()}
	if update.Name != nil {
		set["nome"] = *update.Name
	}
	if update.Target != nil {
		set["meta"] = *update.Target
	}
	if update.Category != nil {
		set["oeo"] = *update.Category
	}

	return r.findOneAndSet(ctx, id, set, "update indicator")
}

func (r *indicatorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewStoreError("delete indicator", err)
	}

	if result.DeletedCount == 0 {
		return notFound(id)
	}

	return nil
}

// SetMonthlyValue writes a single month with a field-level $set, so writes to
// different months never clobber each other.
func (r *indicatorRepository) SetMonthlyValue(ctx context.Context, id primitive.ObjectID, month, value string) (*models.Indicator, error) {
	key, ok := models.NormalizeMonth(month)
	if !ok {
		return nil, apperrors.NewInvalidMonthError(month)
	}

	set := bson.M{
		"desempenhos." + key:  value,
		"metadata.updated_at": r.now().UTC(),
	}

	return r.findOneAndSet(ctx, id, set, "set monthly value")
}

func (r *indicatorRepository) findOneAndSet(ctx context.Context, id primitive.ObjectID, set bson.M, op string) (*models.Indicator, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var indicator models.Indicator
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&indicator)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, apperrors.NewStoreError(op, err)
	}

	return &indicator, nil
}

// CountByCategory counts indicators per raw oeo value. Documents written
// before categories were typed hold strings, so one category can come back
// in more than one row.
func (r *indicatorRepository) CountByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$oeo",
			"total": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.NewStoreError("count indicators by category", err)
	}
	defer cursor.Close(ctx)

	counts := []models.CategoryCount{}
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, apperrors.NewStoreError("decode category counts", err)
	}

	return counts, nil
}
