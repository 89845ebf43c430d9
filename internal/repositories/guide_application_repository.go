package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tourly/internal/models/db_models"
)

type GuideApplicationRepository interface {
	FindAll(ctx context.Context) ([]db_models.GuideApplication, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*db_models.GuideApplication, error)
	FindPendingByEmail(ctx context.Context, email string) (*db_models.GuideApplication, error)
	Insert(ctx context.Context, app *db_models.GuideApplication) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type guideApplicationRepository struct {
	coll *mongo.Collection
}

func NewGuideApplicationRepository(db *mongo.Database) GuideApplicationRepository {
	return &guideApplicationRepository{coll: db.Collection("guideApplications")}
}

func (r *guideApplicationRepository) FindAll(ctx context.Context) ([]db_models.GuideApplication, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var apps []db_models.GuideApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *guideApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*db_models.GuideApplication, error) {
	var app db_models.GuideApplication
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *guideApplicationRepository) FindPendingByEmail(ctx context.Context, email string) (*db_models.GuideApplication, error) {
	var app db_models.GuideApplication
	err := r.coll.FindOne(ctx, bson.M{"email": email, "status": "pending"}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *guideApplicationRepository) Insert(ctx context.Context, app *db_models.GuideApplication) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, app)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *guideApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
