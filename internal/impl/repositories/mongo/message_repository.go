package repositories_mongo

import (
	"context"
	"time"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/domain/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// messageDoc is the persisted shape. The conversation id is stored as
// the hex string the conversation repository handed out, not as an
// ObjectID reference.
type messageDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ConversationID string             `bson:"conversation_id"`
	Role           string             `bson:"role"`
	Content        string             `bson:"content"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d *messageDoc) toEntity() *entities.Message {
	return &entities.Message{
		ID:             d.ID.Hex(),
		ConversationID: d.ConversationID,
		Role:           entities.Role(d.Role),
		Content:        d.Content,
		CreatedAt:      d.CreatedAt,
	}
}

type MongoMessageRepository struct {
	collection *mongo.Collection
}

func NewMongoMessageRepository(collection *mongo.Collection) *MongoMessageRepository {
	return &MongoMessageRepository{
		collection: collection,
	}
}

func (r *MongoMessageRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	message.CreatedAt = time.Now()

	doc := messageDoc{
		ConversationID: message.ConversationID,
		Role:           string(message.Role),
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, &doc)
	if err != nil {
		return errors.StoreUnavailableErrorf("failed to create message: %v", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.InternalErrorf("unexpected inserted id type %T", result.InsertedID)
	}
	message.ID = oid.Hex()

	return nil
}

func (r *MongoMessageRepository) ListMessages(ctx context.Context, conversationID string) ([]*entities.Message, error) {
	// Oldest first; _id breaks ties between same-instant inserts.
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, errors.StoreUnavailableErrorf("failed to list messages: %v", err)
	}
	defer cursor.Close(ctx)

	var messages []*entities.Message
	for cursor.Next(ctx) {
		var doc messageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.InternalErrorf("failed to decode message: %v", err)
		}
		messages = append(messages, doc.toEntity())
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.InternalErrorf("failed to list messages: %v", err)
	}

	return messages, nil
}

var _ interfaces.MessageRepository = (*MongoMessageRepository)(nil)
