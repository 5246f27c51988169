package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
	"github.com/1himan/task-management-assignment/internal/service/auth"
	"github.com/1himan/task-management-assignment/internal/store"
)

// userDocument is the BSON shape of a user in the users collection.
// The hashed credential is stored under "password" and never leaves
// this package in that form except on the domain User's HashedPassword.
type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	HashedPassword string             `bson:"password"`
	CreatedAt      time.Time          `bson:"created_at"`
}

// toDomain converts the stored document into a domain User.
func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID.Hex(),
		Username:       d.Username,
		HashedPassword: d.HashedPassword,
		CreatedAt:      d.CreatedAt,
	}
}

// MongoUserStore implements the store.UserStore interface using a MongoDB
// collection as the storage backend.
type MongoUserStore struct {
	coll       *mongo.Collection
	bcryptCost int
	logger     *slog.Logger
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore
// interface. It accepts a database handle that should be initialized and
// managed by the caller, and the bcrypt cost used when hashing passwords
// during registration. If logger is nil, a default logger will be used.
func NewMongoUserStore(db *mongo.Database, bcryptCost int, logger *slog.Logger) *MongoUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoUserStore{
		coll:       db.Collection(usersCollection),
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create
// It validates the user, hashes the plaintext password, and inserts the
// document. Uniqueness is enforced by the username index rather than a
// lookup first, so concurrent registrations cannot race past each other.
// Returns store.ErrUsernameExists if the username is already taken.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate user data
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	hashed, err := auth.HashPassword(user.Password, s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	doc := &userDocument{
		Username:       user.Username,
		HashedPassword: hashed,
		CreatedAt:      user.CreatedAt,
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn("username already taken during user creation",
				slog.String("username", user.Username))
			return fmt.Errorf("%w: %q", store.ErrUsernameExists, user.Username)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return MapError(err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error("unexpected inserted ID type for user",
			slog.String("username", user.Username))
		return fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}

	// Fill in the generated identity and drop the plaintext password;
	// from here on only the hash exists.
	user.ID = oid.Hex()
	user.HashedPassword = hashed
	user.Password = ""

	log.Info("user created successfully",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))
	return nil
}

// GetByID implements store.UserStore.GetByID
// It retrieves a user by the hex form of their object ID.
// Returns store.ErrUserNotFound if the user does not exist or the ID is
// malformed; a malformed ID cannot address any stored user.
func (s *MongoUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.String("user_id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Debug("malformed user ID", slog.String("user_id", id))
		return nil, store.ErrUserNotFound
	}

	var doc userDocument
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("user not found", slog.String("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return nil, err
	}

	log.Debug("user retrieved successfully", slog.String("user_id", id))
	return doc.toDomain(), nil
}

// GetByUsername implements store.UserStore.GetByUsername
// It retrieves a user by their unique username.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *MongoUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by username", slog.String("username", username))

	var doc userDocument
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("user not found", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}

	log.Debug("user retrieved successfully",
		slog.String("user_id", doc.ID.Hex()),
		slog.String("username", username))
	return doc.toDomain(), nil
}
