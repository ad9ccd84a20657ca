package mongodb

import (
	"context"
	"errors"
	"time"

	"rioserver/internal/models"
	"rioserver/internal/repositories/interfaces"
	"rioserver/internal/utils"
	"rioserver/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	flightCollection    = "flightSubmissions"
	logisticsCollection = "logisticsSubmissions"
)

// collectionFor is a pure function of the form type.
func collectionFor(formType models.FormType) string {
	if formType == models.FormTypeFlight {
		return flightCollection
	}
	return logisticsCollection
}

type submissionRepository struct {
	db *database.MongoDB
}

// NewSubmissionRepository wraps an explicitly constructed database
// handle. A nil handle is a valid degraded state: every call fails with
// a PersistenceError and callers apply their own failure policy.
func NewSubmissionRepository(db *database.MongoDB) interfaces.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Insert(ctx context.Context, formType models.FormType, payload interface{}, attachments []models.AttachmentMeta) (string, error) {
	if r.db == nil {
		return "", utils.NewPersistenceError("MONGODB_URI is not configured", nil)
	}

	doc := models.Submission{
		FormType:            formType,
		Data:                payload,
		AttachmentsMetadata: attachments,
		CreatedAt:           time.Now().UTC(),
	}

	res, err := r.db.Collection(collectionFor(formType)).InsertOne(ctx, doc)
	if err != nil {
		return "", utils.NewPersistenceError("failed to persist submission", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", utils.NewPersistenceError("unexpected inserted id type", nil)
	}
	return oid.Hex(), nil
}

func (r *submissionRepository) ListRecent(ctx context.Context, formType models.FormType, limit int64) ([]models.Submission, error) {
	if formType != models.FormTypeFlight && formType != models.FormTypeLogistics {
		return nil, utils.NewValidationError("formType must be 'flight' or 'logistics'")
	}
	if r.db == nil {
		return nil, utils.NewPersistenceError("MONGODB_URI is not configured", nil)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.db.Collection(collectionFor(formType)).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, utils.NewPersistenceError("failed to fetch submissions", err)
	}
	defer cursor.Close(ctx)

	submissions := make([]models.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, utils.NewPersistenceError("failed to decode submissions", err)
	}
	return submissions, nil
}

func (r *submissionRepository) GetByID(ctx context.Context, formType models.FormType, id string) (*models.Submission, error) {
	// Syntactic check first: a malformed id never reaches the database.
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewValidationError("Invalid submission id")
	}
	if r.db == nil {
		return nil, utils.NewPersistenceError("MONGODB_URI is not configured", nil)
	}

	var sub models.Submission
	err = r.db.Collection(collectionFor(formType)).FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrSubmissionNotFound
		}
		return nil, utils.NewPersistenceError("failed to fetch submission", err)
	}
	return &sub, nil
}
