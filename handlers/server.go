// Package handlers wires the HTTP surface: routing, request validation, and
// translation of store results into JSON responses.
package handlers

import (
	"log"
	"net/http"

	"spendtrack/auth"
	"spendtrack/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	store  *store.Store
	tokens *auth.TokenService
	debug  bool
}

func NewServer(st *store.Store, tokens *auth.TokenService, debug bool) *Server {
	return &Server{store: st, tokens: tokens, debug: debug}
}

// Routes registers all endpoints on the engine. Every expense route passes
// through authRequired before it can touch expense data.
func (s *Server) Routes(r *gin.Engine) {
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)
	authGroup.POST("/logout", s.logout)
	authGroup.GET("/profile", s.authRequired(), s.profile)

	expenses := r.Group("/api/expenses")
	expenses.Use(s.authRequired())
	expenses.POST("", s.addExpense)
	expenses.GET("", s.getExpenses)
	expenses.GET("/summary", s.getMonthlySummary)
	expenses.PUT("/:id", s.updateExpense)
	expenses.DELETE("/:id", s.deleteExpense)
}

// serverError logs the failure and hides its detail from the client unless
// debug mode is on.
func (s *Server) serverError(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	body := gin.H{"error": "Internal Server Error"}
	if s.debug {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
