package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tourly/internal/models/db_models"
)

type PackageRepository interface {
	FindAll(ctx context.Context) ([]db_models.TourPackage, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*db_models.TourPackage, error)
	Sample(ctx context.Context, n int) ([]db_models.TourPackage, error)
	Insert(ctx context.Context, pkg *db_models.TourPackage) (primitive.ObjectID, error)
}

type packageRepository struct {
	coll *mongo.Collection
}

func NewPackageRepository(db *mongo.Database) PackageRepository {
	return &packageRepository{coll: db.Collection("packages")}
}

func (r *packageRepository) FindAll(ctx context.Context) ([]db_models.TourPackage, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var packages []db_models.TourPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*db_models.TourPackage, error) {
	var pkg db_models.TourPackage
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

// Sample draws up to n distinct documents using the store's $sample stage.
func (r *packageRepository) Sample(ctx context.Context, n int) ([]db_models.TourPackage, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var packages []db_models.TourPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) Insert(ctx context.Context, pkg *db_models.TourPackage) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, pkg)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}
