package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/1himan/task-management-assignment/internal/domain"
)

func TestTaskDocumentToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	doc := &taskDocument{
		ID:          oid,
		Title:       "write deployment docs",
		Description: "cover compose and env vars",
		Status:      "pending",
		Priority:    "high",
		CreatedAt:   created,
		UpdatedAt:   updated,
	}

	task := doc.toDomain()

	assert.Equal(t, oid.Hex(), task.ID)
	assert.Equal(t, "write deployment docs", task.Title)
	assert.Equal(t, "cover compose and env vars", task.Description)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, created, task.CreatedAt)
	assert.Equal(t, updated, task.UpdatedAt)

	// The converted task must satisfy domain validation.
	assert.NoError(t, task.Validate())
}

func TestUserDocumentToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	doc := &userDocument{
		ID:             oid,
		Username:       "alice",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:      created,
	}

	user := doc.toDomain()

	assert.Equal(t, oid.Hex(), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, doc.HashedPassword, user.HashedPassword)
	assert.Equal(t, created, user.CreatedAt)

	// Users loaded from storage carry no plaintext password.
	assert.Empty(t, user.Password)
	assert.NoError(t, user.Validate())
}
