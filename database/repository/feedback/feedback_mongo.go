package feedbackRepo

import (
	"context"
	"fmt"
	"time"

	"itsourstudio/database"
	"itsourstudio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	coll := database.MongoClient.Database("itsourstudio").Collection("feedbacks")
	repo := &MongoFeedbackRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFeedbackRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new feedback document.
func (r *MongoFeedbackRepo) Create(f *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	f.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *MongoFeedbackRepo) findAll(filter bson.M) ([]models.Feedback, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedbacks, nil
}

// GetAll retrieves every feedback entry, newest first.
func (r *MongoFeedbackRepo) GetAll() ([]models.Feedback, error) {
	return r.findAll(bson.M{})
}

// GetApproved retrieves only feedback approved for public display.
func (r *MongoFeedbackRepo) GetApproved() ([]models.Feedback, error) {
	return r.findAll(bson.M{"show_in_testimonials": true})
}

// SetVisibility toggles whether an entry appears in public testimonials.
func (r *MongoFeedbackRepo) SetVisibility(id string, show bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"show_in_testimonials": show}})
	if err != nil {
		return fmt.Errorf("failed to update feedback visibility: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("feedback with id %s not found", id)
	}
	return nil
}

// Delete removes a feedback document.
func (r *MongoFeedbackRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("feedback with id %s not found", id)
	}
	return nil
}
