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

// conversationListLimit caps how many conversations a single list call
// returns, newest first.
const conversationListLimit = 100

// conversationDoc is the persisted shape. MongoDB mints the ObjectID;
// the domain entity only ever sees its hex form.
type conversationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	CreatedBy string             `bson:"created_by,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *conversationDoc) toEntity() *entities.Conversation {
	return &entities.Conversation{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
	}
}

type MongoConversationRepository struct {
	collection *mongo.Collection
}

func NewMongoConversationRepository(collection *mongo.Collection) *MongoConversationRepository {
	return &MongoConversationRepository{
		collection: collection,
	}
}

func (r *MongoConversationRepository) CreateConversation(ctx context.Context, conversation *entities.Conversation) error {
	conversation.CreatedAt = time.Now()

	doc := conversationDoc{
		Title:     conversation.Title,
		CreatedBy: conversation.CreatedBy,
		CreatedAt: conversation.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, &doc)
	if err != nil {
		return errors.StoreUnavailableErrorf("failed to create conversation: %v", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.InternalErrorf("unexpected inserted id type %T", result.InsertedID)
	}
	conversation.ID = oid.Hex()

	return nil
}

func (r *MongoConversationRepository) GetConversation(ctx context.Context, id string) (*entities.Conversation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFoundErrorf("conversation not found: %s", id)
	}

	var doc conversationDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFoundErrorf("conversation not found: %s", id)
	}
	if err != nil {
		return nil, errors.StoreUnavailableErrorf("failed to get conversation: %v", err)
	}

	return doc.toEntity(), nil
}

func (r *MongoConversationRepository) ListConversations(ctx context.Context) ([]*entities.Conversation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(conversationListLimit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.StoreUnavailableErrorf("failed to list conversations: %v", err)
	}
	defer cursor.Close(ctx)

	var conversations []*entities.Conversation
	for cursor.Next(ctx) {
		var doc conversationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.InternalErrorf("failed to decode conversation: %v", err)
		}
		conversations = append(conversations, doc.toEntity())
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.InternalErrorf("failed to list conversations: %v", err)
	}

	return conversations, nil
}

func (r *MongoConversationRepository) ValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

var _ interfaces.ConversationRepository = (*MongoConversationRepository)(nil)
