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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/1himan/task-management-assignment/internal/domain"
	"github.com/1himan/task-management-assignment/internal/platform/logger"
	"github.com/1himan/task-management-assignment/internal/store"
)

// defaultListLimit caps task listings when the caller does not provide a
// positive limit.
const defaultListLimit = 100

// taskDocument is the BSON shape of a task in the tasks collection.
type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	Priority    string             `bson:"priority"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// toDomain converts the stored document into a domain Task.
func (d *taskDocument) toDomain() *domain.Task {
	return &domain.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Status:      domain.Status(d.Status),
		Priority:    domain.Priority(d.Priority),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// MongoTaskStore implements the store.TaskStore interface using a MongoDB
// collection as the storage backend.
type MongoTaskStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoTaskStore creates a new MongoDB implementation of the TaskStore
// interface. It accepts a database handle that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func NewMongoTaskStore(db *mongo.Database, logger *slog.Logger) *MongoTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoTaskStore{
		coll:   db.Collection(tasksCollection),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure MongoTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MongoTaskStore)(nil)

// Create implements store.TaskStore.Create
// It saves a new task and fills in the generated ID on the provided task.
// Returns validation errors from the domain Task if data is invalid.
func (s *MongoTaskStore) Create(ctx context.Context, task *domain.Task) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate task data
	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return err
	}

	doc := &taskDocument{
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return MapError(err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		log.Error("unexpected inserted ID type for task",
			slog.String("title", task.Title))
		return fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	task.ID = oid.Hex()

	log.Info("task created successfully",
		slog.String("task_id", task.ID),
		slog.String("status", string(task.Status)),
		slog.String("priority", string(task.Priority)))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// It retrieves a task by the hex form of its object ID.
// Returns store.ErrTaskNotFound if the task does not exist or the ID is
// malformed; a malformed ID cannot address any stored task.
func (s *MongoTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.String("task_id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Debug("malformed task ID", slog.String("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	var doc taskDocument
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("task not found", slog.String("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id))
		return nil, err
	}

	log.Debug("task retrieved successfully", slog.String("task_id", id))
	return doc.toDomain(), nil
}

// List implements store.TaskStore.List
// It retrieves tasks matching the filter, newest first, capped at limit
// documents. An empty filter matches every task.
// Returns an empty slice if no tasks match.
func (s *MongoTaskStore) List(
	ctx context.Context,
	filter domain.TaskFilter,
	limit int,
) ([]*domain.Task, error) {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := filter.Validate(); err != nil {
		log.Warn("task filter validation failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	log.Debug("listing tasks",
		slog.String("status", string(filter.Status)),
		slog.String("priority", string(filter.Priority)),
		slog.Int("limit", limit))

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Priority != "" {
		query["priority"] = string(filter.Priority)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.coll.Find(ctx, query, findOpts)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", err.Error()),
			slog.String("status", string(filter.Status)),
			slog.String("priority", string(filter.Priority)))
		return nil, err
	}
	defer func() {
		if err := cur.Close(ctx); err != nil {
			log.Error("failed to close cursor", slog.String("error", err.Error()))
		}
	}()

	var tasks []*domain.Task
	for cur.Next(ctx) {
		var doc taskDocument
		if err := cur.Decode(&doc); err != nil {
			log.Error("failed to decode task document",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, doc.toDomain())
	}

	if err := cur.Err(); err != nil {
		log.Error("error after iterating cursor",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no tasks found
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("listed tasks",
		slog.String("status", string(filter.Status)),
		slog.String("priority", string(filter.Priority)),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// Update implements store.TaskStore.Update
// It replaces the mutable fields of an existing task and advances its
// update timestamp.
// Returns store.ErrTaskNotFound if the task does not exist and
// domain.ErrInvalidID if the ID is malformed.
func (s *MongoTaskStore) Update(ctx context.Context, task *domain.Task) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("updating task", slog.String("task_id", task.ID))

	oid, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		log.Warn("malformed task ID for update", slog.String("task_id", task.ID))
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, task.ID)
	}

	// Validate task data
	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return err
	}

	updatedAt := time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":       task.Title,
		"description": task.Description,
		"status":      string(task.Status),
		"priority":    string(task.Priority),
		"updated_at":  updatedAt,
	}}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return MapError(err)
	}

	// If no document matched, the task didn't exist
	if res.MatchedCount == 0 {
		log.Debug("task not found for update", slog.String("task_id", task.ID))
		return store.ErrTaskNotFound
	}

	task.UpdatedAt = updatedAt

	log.Info("task updated successfully",
		slog.String("task_id", task.ID),
		slog.String("status", string(task.Status)))
	return nil
}

// Delete implements store.TaskStore.Delete
// It removes a task from the collection by its ID.
// Returns store.ErrTaskNotFound if the task does not exist and
// domain.ErrInvalidID if the ID is malformed.
func (s *MongoTaskStore) Delete(ctx context.Context, id string) error {
	// Get the logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("deleting task", slog.String("task_id", id))

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Warn("malformed task ID for delete", slog.String("task_id", id))
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id))
		return MapError(err)
	}

	// If no document was deleted, the task didn't exist
	if res.DeletedCount == 0 {
		log.Debug("task not found for delete", slog.String("task_id", id))
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully", slog.String("task_id", id))
	return nil
}
