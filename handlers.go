package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"budgeteer/models"
)

// Server wires the authenticator and the ledger store into the HTTP surface.
type Server struct {
	auth   *Auth
	ledger LedgerStore
	log    *logrus.Logger
}

func NewServer(auth *Auth, ledger LedgerStore, log *logrus.Logger) *Server {
	return &Server{auth: auth, ledger: ledger, log: log}
}

func (s *Server) setupRoutes(r *gin.Engine) {
	r.GET("/healthz", s.healthHandler)
	r.POST("/register", s.registerHandler)
	r.POST("/login", s.loginHandler)
	authGroup := r.Group("")
	authGroup.Use(s.bearerAuthMiddleware())
	authGroup.POST("/transactions", s.createTransactionHandler)
	authGroup.GET("/transactions", s.listTransactionsHandler)
	authGroup.DELETE("/transactions/:id", s.deleteTransactionHandler)
}

// bearerAuthMiddleware distinguishes two failure kinds: a missing token is
// 401, a token that is present but fails verification is 403.
func (s *Server) bearerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimSpace(authHeader[len("Bearer "):])
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := s.auth.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// userIDFromContext returns the identity set by bearerAuthMiddleware.
func userIDFromContext(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) registerHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}
	user, err := s.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
		case errors.Is(err, ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully.", "userId": user.ID})
}

func (s *Server) loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}
	accessToken, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Invalid credentials stay 400 on this wire contract.
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

func (s *Server) createTransactionHandler(c *gin.Context) {
	var req struct {
		Date     string   `json:"date"`
		Amount   *float64 `json:"amount"`
		Category string   `json:"category"`
		Type     string   `json:"type"`
		Currency string   `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" || req.Amount == nil || req.Type == "" || req.Currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.Type != models.TypeExpense && req.Type != models.TypeIncome {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be expense or income"})
		return
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "Misc"
	}

	// Ownership always comes from the token, never from the body.
	tx := models.Transaction{
		UserID:   userIDFromContext(c),
		Date:     req.Date,
		Amount:   *req.Amount,
		Category: category,
		Type:     req.Type,
		Currency: req.Currency,
	}
	if err := s.ledger.Insert(c.Request.Context(), &tx); err != nil {
		if errors.Is(err, ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// listOptions is resolved once per request from the query string.
type listOptions struct {
	ascending bool
}

// resolveListOptions handles both query forms; ascending wins when both are
// given. Default is newest first.
func resolveListOptions(c *gin.Context) listOptions {
	opts := listOptions{ascending: false}
	if v, ok := c.GetQuery("ascending"); ok {
		opts.ascending = v == "true"
	} else if v, ok := c.GetQuery("order"); ok {
		opts.ascending = strings.EqualFold(v, "asc")
	}
	return opts
}

func (s *Server) listTransactionsHandler(c *gin.Context) {
	opts := resolveListOptions(c)
	items, err := s.ledger.ListByUser(c.Request.Context(), userIDFromContext(c), opts.ascending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) deleteTransactionHandler(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a row.
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found or not authorized."})
		return
	}
	deleted, err := s.ledger.DeleteByID(c.Request.Context(), uint(id64), userIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found or not authorized."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully."})
}
