package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tourly/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*db_models.Booking, error)
	FindByTourist(ctx context.Context, email string) ([]db_models.Booking, error)
	FindByGuide(ctx context.Context, email string) ([]db_models.Booking, error)
	SetPayment(ctx context.Context, id primitive.ObjectID, transactionID string) (int64, error)
	// TransitionStatus is a conditional single-document update: it only
	// matches when the booking currently holds the `from` status.
	TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to db_models.BookingStatus, stampField string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type bookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{coll: db.Collection("bookings")}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByTourist(ctx context.Context, email string) ([]db_models.Booking, error) {
	return r.findByField(ctx, "touristEmail", email)
}

func (r *bookingRepository) FindByGuide(ctx context.Context, email string) ([]db_models.Booking, error) {
	return r.findByField(ctx, "guideEmail", email)
}

func (r *bookingRepository) findByField(ctx context.Context, field, value string) ([]db_models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, err
	}
	var bookings []db_models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) SetPayment(ctx context.Context, id primitive.ObjectID, transactionID string) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":        db_models.BookingInReview,
			"transactionId": transactionID,
			"paidAt":        time.Now(),
		}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *bookingRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to db_models.BookingStatus, stampField string) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, stampField: time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
