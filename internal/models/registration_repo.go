package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateRegistration(ctx context.Context, reg *Registration) (*Registration, error) {
	if err := reg.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare registration for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, RegistrationsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, reg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("error inserting registration: %v", err)
	}
	return reg, nil
}

func (mdb *MongodbRepo) GetRegistrationByID(ctx context.Context, id string) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, RegistrationsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var reg Registration
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding registration: %v", err)
	}
	return &reg, nil
}

func (mdb *MongodbRepo) ListRegistrations(ctx context.Context) ([]*Registration, error) {
	return mdb.findRegistrations(ctx, bson.M{})
}

func (mdb *MongodbRepo) ListByEvent(ctx context.Context, eventID string) ([]*Registration, error) {
	return mdb.findRegistrations(ctx, bson.M{"event_id": eventID})
}

func (mdb *MongodbRepo) findRegistrations(ctx context.Context, filter bson.M) ([]*Registration, error) {
	col, err := mdb.GetCollection(ctx, RegistrationsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "registered_at", Value: 1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding registrations: %v", err)
	}
	defer cursor.Close(ctx)

	regs := []*Registration{}
	for cursor.Next(ctx) {
		var reg Registration
		if err := cursor.Decode(&reg); err != nil {
			return nil, fmt.Errorf("error decoding registration: %v", err)
		}
		regs = append(regs, &reg)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return regs, nil
}

func (mdb *MongodbRepo) DeleteRegistration(ctx context.Context, id string) error {
	col, err := mdb.GetCollection(ctx, RegistrationsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting registration: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) DeleteByEvent(ctx context.Context, eventID string) (int64, error) {
	col, err := mdb.GetCollection(ctx, RegistrationsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteMany(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return 0, fmt.Errorf("error deleting registrations for event: %v", err)
	}
	return res.DeletedCount, nil
}
