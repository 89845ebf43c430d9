package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tourly/internal/models/db_models"
)

type DashboardRepository interface {
	SumBookingPrices(ctx context.Context) (float64, error)
	CountUsersByRole(ctx context.Context, role db_models.Role) (int64, error)
	CountPackages(ctx context.Context) (int64, error)
	CountStories(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *mongo.Database
}

func NewDashboardRepository(db *mongo.Database) DashboardRepository {
	return &dashboardRepository{db: db}
}

// SumBookingPrices sums the price of every booking, not just completed ones.
func (r *dashboardRepository) SumBookingPrices(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cursor, err := r.db.Collection("bookings").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (r *dashboardRepository) CountUsersByRole(ctx context.Context, role db_models.Role) (int64, error) {
	return r.db.Collection("users").CountDocuments(ctx, bson.M{"role": role})
}

func (r *dashboardRepository) CountPackages(ctx context.Context) (int64, error) {
	return r.db.Collection("packages").CountDocuments(ctx, bson.M{})
}

func (r *dashboardRepository) CountStories(ctx context.Context) (int64, error) {
	return r.db.Collection("stories").CountDocuments(ctx, bson.M{})
}
