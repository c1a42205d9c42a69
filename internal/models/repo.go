package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Validate = validator.New()

// EventsRepo owns the events collection and is the single writer of the
// registered counter.
type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	// IncrementRegistered adds one to the counter. With enforceCapacity it
	// only succeeds while registered < capacity, returning ErrEventFull
	// otherwise. Atomic relative to concurrent registrations.
	IncrementRegistered(ctx context.Context, id string, enforceCapacity bool) error
	// DecrementRegistered subtracts one from the counter, flooring at 0.
	DecrementRegistered(ctx context.Context, id string) error
}

// RegistrationsRepo owns the registrations collection and the
// one-registration-per-(event, email) guarantee.
type RegistrationsRepo interface {
	// CreateRegistration persists a registration, returning
	// ErrAlreadyRegistered when an active record with the same
	// (event_id, email) pair exists.
	CreateRegistration(ctx context.Context, reg *Registration) (*Registration, error)
	GetRegistrationByID(ctx context.Context, id string) (*Registration, error)
	ListRegistrations(ctx context.Context) ([]*Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Registration, error)
	// DeleteRegistration removes a registration, returning ErrNotFound when
	// it is already gone so a raced double-cancel decrements only once.
	DeleteRegistration(ctx context.Context, id string) error
	// DeleteByEvent removes every registration for an event (cascade on
	// event deletion) and reports how many were removed.
	DeleteByEvent(ctx context.Context, eventID string) (int64, error)
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// compound index on (event_id, email) is what makes the duplicate guard hold
// under concurrent writers rather than only under the read-then-insert path.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, RegistrationsColName)
	if err != nil {
		return err
	}

	_, err = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "event_id", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create registration indexes: %v", err)
	}
	return nil
}
