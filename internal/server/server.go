package server

import (
	"net/http"
	"sync"

	"shackchat/internal/chat"
	"shackchat/internal/menu"
	"shackchat/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server exposes the conversation over HTTP and WebSocket. Each session owns
// its cart exclusively; sessions are looked up by the ID carried in the
// signed session token.
type Server struct {
	router  *gin.Engine
	chat    *chat.Router
	catalog *menu.Catalog
	monitor *monitoring.Monitor
	secret  []byte

	mu       sync.RWMutex
	sessions map[string]*chat.Session
}

// NewServer creates the API server around a conversation router
func NewServer(chatRouter *chat.Router, catalog *menu.Catalog, monitor *monitoring.Monitor, secret string) *Server {
	s := &Server{
		router:   gin.Default(),
		chat:     chatRouter,
		catalog:  catalog,
		monitor:  monitor,
		secret:   []byte(secret),
		sessions: make(map[string]*chat.Session),
	}

	s.setupRoutes()
	return s
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "shackchat API is running"})
	})

	s.router.POST("/api/v1/sessions", s.CreateSession)
	s.router.GET("/api/v1/menu", s.GetMenu)
	s.router.GET("/api/v1/metrics", s.GetMetrics)
	s.router.GET("/ws", s.handleWebSocket)

	v1 := s.router.Group("/api/v1", s.AuthMiddleware())
	{
		v1.POST("/chat", s.Chat)
		v1.GET("/cart", s.GetCart)
		v1.POST("/cart/clear", s.ClearCart)
		v1.POST("/checkout", s.Checkout)
		v1.POST("/key", s.SetAPIKey)
	}
}

// newSession registers a fresh session and returns it
func (s *Server) newSession() *chat.Session {
	sess := chat.NewSession(uuid.NewString())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// session looks up a session by ID
func (s *Server) session(id string) (*chat.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	return sess, ok
}
