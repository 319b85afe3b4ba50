package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/events"
	"github.com/drujensen/aichat/internal/domain/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ChatHub struct {
	connections map[string][]*websocket.Conn
	register    chan registration
	unregister  chan unregistration
	broadcast   chan broadcastMessage
}

type registration struct {
	ConversationID string
	conn           *websocket.Conn
}

type unregistration struct {
	ConversationID string
	conn           *websocket.Conn
}

type broadcastMessage struct {
	ConversationID string
	message        *entities.Message
}

func NewChatHub() *ChatHub {
	return &ChatHub{
		connections: make(map[string][]*websocket.Conn),
		register:    make(chan registration),
		unregister:  make(chan unregistration),
		broadcast:   make(chan broadcastMessage),
	}
}

func (h *ChatHub) Run() {
	for {
		select {
		case reg := <-h.register:
			h.connections[reg.ConversationID] = append(h.connections[reg.ConversationID], reg.conn)
		case unreg := <-h.unregister:
			if conns, ok := h.connections[unreg.ConversationID]; ok {
				for i, conn := range conns {
					if conn == unreg.conn {
						h.connections[unreg.ConversationID] = append(conns[:i], conns[i+1:]...)
						break
					}
				}
				if len(h.connections[unreg.ConversationID]) == 0 {
					delete(h.connections, unreg.ConversationID)
				}
			}
		case msg := <-h.broadcast:
			if conns, ok := h.connections[msg.ConversationID]; ok {
				// Dead connections are dropped inline; this loop is
				// the unregister reader, so it cannot send to itself.
				kept := conns[:0]
				for _, conn := range conns {
					err := conn.WriteJSON(msg.message)
					if err != nil {
						log.Println("Write error:", err)
						conn.Close()
						continue
					}
					kept = append(kept, conn)
				}
				if len(kept) == 0 {
					delete(h.connections, msg.ConversationID)
				} else {
					h.connections[msg.ConversationID] = kept
				}
			}
		}
	}
}

// Subscribe wires the hub to the message-added event stream so every
// persisted message is pushed to the sockets watching its conversation.
// The returned function cancels the subscription.
func (h *ChatHub) Subscribe() func() {
	return events.SubscribeToMessageAdded(func(data events.MessageAddedEventData) {
		h.MessageListener(data.ConversationID, data.Message)
	})
}

func (h *ChatHub) MessageListener(conversationID string, message *entities.Message) {
	h.broadcast <- broadcastMessage{conversationID, message}
}

func ChatHandler(hub *ChatHub, messageService services.MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conversationID := r.URL.Query().Get("conversation_id")
		if conversationID == "" {
			http.Error(w, "Missing conversation_id", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Upgrade error:", err)
			return
		}
		defer conn.Close()

		hub.register <- registration{conversationID, conn}

		defer func() {
			hub.unregister <- unregistration{conversationID, conn}
		}()

		for {
			var frame struct {
				Content string `json:"content"`
			}
			err := conn.ReadJSON(&frame)
			if err != nil {
				log.Println("Read error:", err)
				break
			}

			// Both the stored user message and the generated reply come
			// back through the broadcast loop, so the inbound side only
			// hands the content off.
			_, err = messageService.SendMessage(r.Context(), conversationID, frame.Content)
			if err != nil {
				log.Println("SendMessage error:", err)
				conn.WriteJSON(map[string]string{"error": err.Error()})
			}
		}
	}
}
