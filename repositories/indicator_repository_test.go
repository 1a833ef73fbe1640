package repository

import (
	"context"
	"testing"

	"gest35bi/apperrors"
	"gest35bi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func indicatorDoc(id primitive.ObjectID, name string, oeo any, months bson.D) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "nome", Value: name},
		{Key: "meta", Value: "95%"},
		{Key: "oeo", Value: oeo},
		{Key: "desempenhos", Value: months},
	}
}

func TestIndicatorRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewIndicatorRepository(mt.Coll)

		indicator := models.NewIndicator("Uptime", "99.9%", 4)
		require.NoError(mt, repo.Create(ctx, indicator))

		assert.False(mt, indicator.ID.IsZero())
		assert.False(mt, indicator.Metadata.CreatedAt.IsZero())
		assert.Equal(mt, indicator.Metadata.CreatedAt, indicator.Metadata.UpdatedAt)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
	})

	mt.Run("create surfaces store errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := NewIndicatorRepository(mt.Coll)

		err := repo.Create(ctx, models.NewIndicator("Uptime", "99.9%", 4))
		assert.ErrorIs(mt, err, apperrors.ErrStore)
	})

	mt.Run("get all decodes every batch", func(mt *mtest.T) {
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		ns := namespace(mt)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				indicatorDoc(first, "Disponibilidade", int32(3), bson.D{{Key: "janeiro", Value: "90%"}})),
			mtest.CreateCursorResponse(1, ns, mtest.NextBatch,
				indicatorDoc(second, "Legado", "4", bson.D{})),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)
		repo := NewIndicatorRepository(mt.Coll)

		indicators, err := repo.GetAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, indicators, 2)

		assert.Equal(mt, first, indicators[0].ID)
		assert.Equal(mt, models.Category(3), indicators[0].Category)
		assert.Equal(mt, "90%", indicators[0].MonthlyValues.January)
		assert.Equal(mt, second, indicators[1].ID)
		assert.Equal(mt, models.Category(4), indicators[1].Category)
	})

	mt.Run("get all returns an empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		repo := NewIndicatorRepository(mt.Coll)

		indicators, err := repo.GetAll(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, indicators)
		assert.Empty(mt, indicators)
	})

	mt.Run("get all surfaces command errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
			Name:    "BadValue",
		}))
		repo := NewIndicatorRepository(mt.Coll)

		_, err := repo.GetAll(ctx)
		assert.ErrorIs(mt, err, apperrors.ErrStore)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			indicatorDoc(id, "Disponibilidade", int32(2), bson.D{{Key: "marco", Value: "10%"}})))
		repo := NewIndicatorRepository(mt.Coll)

		indicator, err := repo.GetByID(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, id, indicator.ID)
		assert.Equal(mt, "10%", indicator.MonthlyValues.March)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		repo := NewIndicatorRepository(mt.Coll)

		_, err := repo.GetByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("update returns the post image", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "value",
			Value: indicatorDoc(id, "Renomeado", int32(5), bson.D{}),
		}))
		repo := NewIndicatorRepository(mt.Coll)

		name := "Renomeado"
		category := models.Category(5)
		indicator, err := repo.Update(ctx, id, models.IndicatorUpdate{Name: &name, Category: &category})
		require.NoError(mt, err)
		assert.Equal(mt, "Renomeado", indicator.Name)
		assert.Equal(mt, models.Category(5), indicator.Category)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		set := evt.Command.Lookup("update", "$set").Document()
		assert.Equal(mt, "Renomeado", set.Lookup("nome").StringValue())
		assert.Equal(mt, int32(5), set.Lookup("oeo").Int32())
		_, err = set.LookupErr("meta")
		assert.Error(mt, err, "meta must not be touched")
	})

	mt.Run("update not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))
		repo := NewIndicatorRepository(mt.Coll)

		target := "100%"
		_, err := repo.Update(ctx, primitive.NewObjectID(), models.IndicatorUpdate{Target: &target})
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))
		repo := NewIndicatorRepository(mt.Coll)

		assert.NoError(mt, repo.Delete(ctx, primitive.NewObjectID()))
	})

	mt.Run("delete not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))
		repo := NewIndicatorRepository(mt.Coll)

		err := repo.Delete(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("set monthly value touches a single month", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "value",
			Value: indicatorDoc(id, "Disponibilidade", int32(1), bson.D{{Key: "marco", Value: "10%"}}),
		}))
		repo := NewIndicatorRepository(mt.Coll)

		indicator, err := repo.SetMonthlyValue(ctx, id, "march", "10%")
		require.NoError(mt, err)
		assert.Equal(mt, "10%", indicator.MonthlyValues.March)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		set := evt.Command.Lookup("update", "$set").Document()
		assert.Equal(mt, "10%", set.Lookup("desempenhos.marco").StringValue())
		_, err = set.LookupErr("desempenhos")
		assert.Error(mt, err, "the whole month map must not be rewritten")
	})

	mt.Run("set monthly value rejects unknown months before the store", func(mt *mtest.T) {
		repo := NewIndicatorRepository(mt.Coll)

		_, err := repo.SetMonthlyValue(ctx, primitive.NewObjectID(), "13th-month", "1")
		assert.ErrorIs(mt, err, apperrors.ErrInvalidMonth)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("count by category", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int32(4)}, {Key: "total", Value: int32(2)}},
			bson.D{{Key: "_id", Value: "4"}, {Key: "total", Value: int32(1)}},
			bson.D{{Key: "_id", Value: nil}, {Key: "total", Value: int32(3)}},
		))
		repo := NewIndicatorRepository(mt.Coll)

		counts, err := repo.CountByCategory(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, []models.CategoryCount{
			{Category: 4, Total: 2},
			{Category: 4, Total: 1},
			{Category: 0, Total: 3},
		}, counts)
	})
}
