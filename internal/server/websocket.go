package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"shackchat/internal/chat"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSConnection maintains one chat connection with a client. done is closed
// when the writer exits so the reader never blocks on a dead send queue.
type WSConnection struct {
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	sess   *chat.Session
	server *Server
}

// wsRequest is an incoming chat message
type wsRequest struct {
	Message string `json:"message"`
}

// wsResponse carries the reply and the cart state after the turn
type wsResponse struct {
	Reply string      `json:"reply"`
	Cart  interface{} `json:"cart"`
	Total float64     `json:"total"`
}

// handleWebSocket upgrades the connection and attaches it to the session
// named by the token query parameter
func (s *Server) handleWebSocket(c *gin.Context) {
	sessionID, err := s.parseToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	sess, ok := s.session(sessionID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown session"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wsConn := &WSConnection{
		conn:   conn,
		send:   make(chan []byte, 16),
		done:   make(chan struct{}),
		sess:   sess,
		server: s,
	}

	go wsConn.writePump()
	wsConn.readPump(c.Request.Context())
}

// readPump reads chat messages and routes each through the conversation
// router, one turn at a time
func (wc *WSConnection) readPump(ctx context.Context) {
	defer func() {
		close(wc.send)
		wc.conn.Close()
	}()

	wc.conn.SetReadLimit(64 * 1024)

	for {
		_, raw, err := wc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(raw, &req); err != nil || req.Message == "" {
			continue
		}

		wc.sess.Acquire()
		wc.sess.AddMessage("user", req.Message)
		reply := wc.server.chat.HandleMessage(ctx, wc.sess, req.Message)
		wc.sess.AddMessage("assistant", reply)
		resp := wsResponse{
			Reply: reply,
			Cart:  wc.sess.Cart.Lines(),
			Total: wc.sess.Cart.Total(),
		}
		wc.sess.Release()

		payload, err := json.Marshal(resp)
		if err != nil {
			log.Printf("failed to marshal ws response: %v", err)
			continue
		}
		if !wc.enqueue(payload) {
			return
		}
	}
}

// enqueue hands a payload to the writer, reporting false when the writer has
// exited so the reader can stop instead of blocking on a full queue
func (wc *WSConnection) enqueue(payload []byte) bool {
	select {
	case wc.send <- payload:
		return true
	case <-wc.done:
		return false
	}
}

// writePump sends queued responses to the client. On exit it closes the
// connection so a blocked ReadMessage fails instead of leaking the reader.
func (wc *WSConnection) writePump() {
	defer func() {
		close(wc.done)
		wc.conn.Close()
	}()

	for payload := range wc.send {
		wc.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := wc.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
