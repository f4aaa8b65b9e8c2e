package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/task-api/internal/core/domain"
)

const tasksCollection = "tasks"

// TaskRepository implements ports.TaskRepository using MongoDB.
type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(tasksCollection)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category,omitempty"`
	Priority    string             `bson:"priority"`
	DueDate     *time.Time         `bson:"due_date,omitempty"`
	IsCompleted bool               `bson:"is_completed"`
	UserID      string             `bson:"user_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func toMongoTask(t *domain.Task) mongoTask {
	return mongoTask{
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
	}
}

func (mt *mongoTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		Category:    mt.Category,
		Priority:    domain.Priority(mt.Priority),
		DueDate:     mt.DueDate,
		IsCompleted: mt.IsCompleted,
		UserID:      mt.UserID,
		CreatedAt:   mt.CreatedAt,
	}
}

// Create inserts a new task document and returns it with the generated id.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	doc := toMongoTask(task)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	var mt mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TaskRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	return r.findMany(ctx, bson.M{"user_id": ownerID})
}

// SearchByTitle matches the owner's tasks whose title contains query,
// case-insensitively. The query is quoted so regex metacharacters are
// treated literally.
func (r *TaskRepository) SearchByTitle(ctx context.Context, ownerID, query string) ([]*domain.Task, error) {
	return r.findMany(ctx, bson.M{
		"user_id": ownerID,
		"title":   primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"},
	})
}

func (r *TaskRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Task, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []*domain.Task
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// Update replaces the stored document. The _id and owner are never changed;
// the service layer has already loaded and authorized the task.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	oid, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoTask(task))
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by list and search queries.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
