package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection           = "users"
	ClassesCollection         = "classes"
	EnrolledClassesCollection = "enrolledClasses"

	connectTimeout = 10 * time.Second
)

// Store bundles the repositories sharing one client.
type Store struct {
	client      *mongo.Client
	Users       *UserRepository
	Classes     *ClassRepository
	Enrollments *EnrollmentRepository
}

// Connect opens the client and pings the primary before returning it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		if derr := client.Disconnect(context.Background()); derr != nil {
			log.Printf("⚠️ Database disconnect: %v", derr)
		}
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Println("✅ Pinged your deployment. You successfully connected to MongoDB!")
	return client, nil
}

func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		client:      client,
		Users:       NewUserRepository(db.Collection(UsersCollection)),
		Classes:     NewClassRepository(db.Collection(ClassesCollection)),
		Enrollments: NewEnrollmentRepository(db.Collection(EnrolledClassesCollection)),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the shared client; call it once the HTTP server has drained.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
