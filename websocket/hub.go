package websocket

import (
	"encoding/json"
	"log"
)

// Hub maintains the set of active clients and routes event messages to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	direct     chan directMessage
	register   chan *Client
	unregister chan *Client
}

type directMessage struct {
	userID  uint
	payload []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		direct:     make(chan directMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		case msg := <-h.direct:
			for client := range h.clients {
				if client.userID != msg.userID {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastEvent sends an event to every connected client.
func (h *Hub) BroadcastEvent(eventType string, payload interface{}) {
	message, err := marshalEvent(eventType, payload)
	if err != nil {
		return
	}
	h.broadcast <- message
}

// NotifyUser sends an event to the connections of a single user.
func (h *Hub) NotifyUser(userID uint, eventType string, payload interface{}) {
	message, err := marshalEvent(eventType, payload)
	if err != nil {
		return
	}
	h.direct <- directMessage{userID: userID, payload: message}
}

func marshalEvent(eventType string, payload interface{}) ([]byte, error) {
	message, err := json.Marshal(map[string]interface{}{
		"event": eventType,
		"data":  payload,
	})
	if err != nil {
		log.Printf("[WS] Error marshaling %s event: %v", eventType, err)
		return nil, err
	}
	return message, nil
}
