package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
)

type UserRepository interface {
	Find(ctx context.Context, name, email string, role db_models.Role) ([]db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindGuideByID(ctx context.Context, id primitive.ObjectID) (*db_models.User, error)
	FindByRole(ctx context.Context, role db_models.Role) ([]db_models.User, error)
	Insert(ctx context.Context, user *db_models.User) (primitive.ObjectID, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role db_models.Role) (int64, error)
	SetRoleByEmail(ctx context.Context, email string, role db_models.Role) (int64, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, patch request_models.UpdateProfileRequest) (int64, error)
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

func (r *userRepository) Find(ctx context.Context, name, email string, role db_models.Role) ([]db_models.User, error) {
	query := bson.M{}
	if name != "" {
		query["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if email != "" {
		query["email"] = bson.M{"$regex": email, "$options": "i"}
	}
	if role != "" {
		query["role"] = role
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	var users []db_models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindGuideByID(ctx context.Context, id primitive.ObjectID) (*db_models.User, error) {
	var user db_models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "role": db_models.RoleTourGuide}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByRole(ctx context.Context, role db_models.Role) ([]db_models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	var users []db_models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *userRepository) SetRole(ctx context.Context, id primitive.ObjectID, role db_models.Role) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *userRepository) SetRoleByEmail(ctx context.Context, email string, role db_models.Role) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// UpdateProfile patches only the provided fields and always stamps updatedAt.
func (r *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, patch request_models.UpdateProfileRequest) (int64, error) {
	fields := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Photo != nil {
		fields["photo"] = *patch.Photo
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
