package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tourly/internal/models/db_models"
)

type StoryRepository interface {
	Find(ctx context.Context, authorEmail string) ([]db_models.Story, error)
	Sample(ctx context.Context, n int) ([]db_models.Story, error)
	Insert(ctx context.Context, story *db_models.Story) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	// PatchImages appends addImages, pulls every occurrence of removeImage
	// and stamps lastUpdated. The append and the pull run as two separate
	// single-document updates: the store refuses $push and $pull on the
	// same path within one update.
	PatchImages(ctx context.Context, id primitive.ObjectID, addImages []string, removeImage string) (int64, error)
}

type storyRepository struct {
	coll *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) StoryRepository {
	return &storyRepository{coll: db.Collection("stories")}
}

func (r *storyRepository) Find(ctx context.Context, authorEmail string) ([]db_models.Story, error) {
	query := bson.M{}
	if authorEmail != "" {
		query["authorEmail"] = authorEmail
	}
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	var stories []db_models.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) Sample(ctx context.Context, n int) ([]db_models.Story, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var stories []db_models.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) Insert(ctx context.Context, story *db_models.Story) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, story)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *storyRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *storyRepository) PatchImages(ctx context.Context, id primitive.ObjectID, addImages []string, removeImage string) (int64, error) {
	update := bson.M{
		"$set": bson.M{"lastUpdated": time.Now()},
	}
	if len(addImages) > 0 {
		update["$push"] = bson.M{"images": bson.M{"$each": addImages}}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, nil
	}

	if removeImage != "" {
		_, err = r.coll.UpdateOne(ctx, bson.M{"_id": id},
			bson.M{"$pull": bson.M{"images": removeImage}})
		if err != nil {
			return 0, err
		}
	}
	return res.MatchedCount, nil
}
