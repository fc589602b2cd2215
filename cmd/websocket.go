package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"waataxi/internal/models"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
)

type Client struct {
	ID     string
	Socket *websocket.Conn
}

type unreg struct {
	clientID string
	conn     *websocket.Conn
}

// WebSocketManager fans ride events out to every connected client. All
// access to clients happens on the Run goroutine.
type WebSocketManager struct {
	clients    map[string]*websocket.Conn
	broadcast  chan models.RideEvent
	register   chan Client
	unregister chan unreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*websocket.Conn),
		broadcast:  make(chan models.RideEvent, 64),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

// RideUpdated queues a ride event for broadcast. The send never blocks: if
// the feed is saturated the event is dropped.
func (ws *WebSocketManager) RideUpdated(ride models.Ride) {
	select {
	case ws.broadcast <- models.RideEvent{Type: "ride_updated", Ride: ride}:
	default:
	}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			if old, ok := ws.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			ws.clients[client.ID] = client.Socket
			log.Printf("WS register client=%s", client.ID)

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.clientID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.clientID)
				log.Printf("WS unregister client=%s", u.clientID)
			}

		case event := <-ws.broadcast:
			for id, conn := range ws.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("broadcast error to=%s: %v", id, err)
					_ = conn.Close()
					delete(ws.clients, id)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// The first frame from the client must be { "clientId": "<id>" }.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		ClientID string `json:"clientId"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.ClientID == "" {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	app.wsManager.register <- Client{ID: hello.ClientID, Socket: conn}

	go pingLoop(app.wsManager, conn, hello.ClientID)
	go readLoop(app.wsManager, conn, hello.ClientID)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, clientID string) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{clientID: clientID, conn: conn}
			return
		}
	}
}

// The feed is one-way. Reading serves only to notice disconnects and keep
// pong handling alive.
func readLoop(ws *WebSocketManager, conn *websocket.Conn, clientID string) {
	defer func() {
		ws.unregister <- unreg{clientID: clientID, conn: conn}
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
