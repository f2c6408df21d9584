package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateSession starts a new conversation session and returns its token
func (s *Server) CreateSession(c *gin.Context) {
	sess := s.newSession()

	token, err := s.issueToken(sess.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"token":      token,
		"message":    "Welcome to Shake Shack! How can I help you today?",
	})
}

// Chat handles one conversation turn for the session
func (s *Server) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := currentSession(c)
	sess.Acquire()
	defer sess.Release()

	sess.AddMessage("user", req.Message)
	reply := s.chat.HandleMessage(c.Request.Context(), sess, req.Message)
	sess.AddMessage("assistant", reply)

	c.JSON(http.StatusOK, gin.H{
		"reply": reply,
		"cart":  sess.Cart.Lines(),
		"total": sess.Cart.Total(),
	})
}

// GetCart returns the session's current order
func (s *Server) GetCart(c *gin.Context) {
	sess := currentSession(c)
	sess.Acquire()
	defer sess.Release()

	c.JSON(http.StatusOK, gin.H{
		"lines":   sess.Cart.Lines(),
		"total":   sess.Cart.Total(),
		"summary": sess.Cart.Summary(),
	})
}

// ClearCart empties the session's order
func (s *Server) ClearCart(c *gin.Context) {
	sess := currentSession(c)
	sess.Acquire()
	defer sess.Release()

	c.JSON(http.StatusOK, gin.H{"message": sess.Cart.Clear(), "total": sess.Cart.Total()})
}

// Checkout finalizes the session's order through the conversation router so
// the cart-preserving failure semantics stay in one place
func (s *Server) Checkout(c *gin.Context) {
	sess := currentSession(c)
	sess.Acquire()
	defer sess.Release()

	reply := s.chat.HandleMessage(c.Request.Context(), sess, "checkout")
	c.JSON(http.StatusOK, gin.H{
		"message": reply,
		"cart":    sess.Cart.Lines(),
		"total":   sess.Cart.Total(),
	})
}

// SetAPIKey stores a user-supplied OpenAI key on the session. The session
// key takes precedence over the process-wide environment key.
func (s *Server) SetAPIKey(c *gin.Context) {
	var req struct {
		APIKey string `json:"api_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := currentSession(c)
	sess.Acquire()
	defer sess.Release()

	sess.SetAPIKey(req.APIKey)
	c.JSON(http.StatusOK, gin.H{"message": "API key updated for this session"})
}

// GetMenu returns the full menu, optionally filtered by category
func (s *Server) GetMenu(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"items": s.catalog.ItemsByCategory(category)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     s.catalog.AllItems(),
		"formatted": s.catalog.Formatted(),
	})
}

// GetMetrics returns the in-process metric snapshot
func (s *Server) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.Snapshot())
}
