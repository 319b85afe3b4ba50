package repositories_json

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/errors"
	"github.com/drujensen/aichat/internal/domain/interfaces"

	"github.com/google/uuid"
)

// conversationListLimit caps how many conversations a single list call
// returns, newest first.
const conversationListLimit = 100

type JsonConversationRepository struct {
	mu       sync.RWMutex
	filePath string
	data     []*entities.Conversation
}

func NewJSONConversationRepository(dataDir string) (interfaces.ConversationRepository, error) {
	filePath := filepath.Join(dataDir, "conversations.json")
	repo := &JsonConversationRepository{
		filePath: filePath,
		data:     []*entities.Conversation{},
	}

	if err := repo.load(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *JsonConversationRepository) load() error {
	data, err := os.ReadFile(r.filePath)
	if os.IsNotExist(err) {
		return nil // File doesn't exist yet, start with empty data
	}
	if err != nil {
		return errors.InternalErrorf("failed to read conversations.json: %v", err)
	}

	var conversations []*entities.Conversation
	if err := json.Unmarshal(data, &conversations); err != nil {
		return errors.InternalErrorf("failed to unmarshal conversations.json: %v", err)
	}

	// Validate UUIDs
	for _, conversation := range conversations {
		if conversation.ID == "" {
			return errors.InternalErrorf("conversation is missing an ID")
		}
		if _, err := uuid.Parse(conversation.ID); err != nil {
			return errors.InternalErrorf("conversation has an invalid UUID: %v", err)
		}
	}

	r.data = conversations
	return nil
}

func (r *JsonConversationRepository) save() error {
	data, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return errors.InternalErrorf("failed to marshal conversations: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.filePath), 0755); err != nil {
		return errors.InternalErrorf("failed to create directory: %v", err)
	}

	if err := os.WriteFile(r.filePath, data, 0644); err != nil {
		return errors.InternalErrorf("failed to write conversations.json: %v", err)
	}

	return nil
}

func (r *JsonConversationRepository) CreateConversation(ctx context.Context, conversation *entities.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	conversation.CreatedAt = time.Now()

	r.data = append(r.data, conversation)
	return r.save()
}

func (r *JsonConversationRepository) GetConversation(ctx context.Context, id string) (*entities.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, conversation := range r.data {
		if conversation.ID == id {
			copied := *conversation
			return &copied, nil
		}
	}
	return nil, errors.NotFoundErrorf("conversation not found: %s", id)
}

func (r *JsonConversationRepository) ListConversations(ctx context.Context) ([]*entities.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Walk backwards so same-instant entries keep reverse insertion order.
	conversationsCopy := make([]*entities.Conversation, 0, len(r.data))
	for i := len(r.data) - 1; i >= 0; i-- {
		copied := *r.data[i]
		conversationsCopy = append(conversationsCopy, &copied)
	}

	sort.SliceStable(conversationsCopy, func(i, j int) bool {
		return conversationsCopy[i].CreatedAt.After(conversationsCopy[j].CreatedAt)
	})

	if len(conversationsCopy) > conversationListLimit {
		conversationsCopy = conversationsCopy[:conversationListLimit]
	}

	return conversationsCopy, nil
}

func (r *JsonConversationRepository) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

var _ interfaces.ConversationRepository = (*JsonConversationRepository)(nil)
