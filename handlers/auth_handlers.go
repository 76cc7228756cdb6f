package handlers

import (
	"errors"
	"net/http"

	"spendtrack/models"
	"spendtrack/store"

	"github.com/gin-gonic/gin"
)

func userPayload(u *models.User) gin.H {
	return gin.H{"id": u.ID, "username": u.Username, "email": u.Email}
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "All fields are required",
			"message": "Please provide a valid username, email, and password to register.",
		})
		return
	}
	user, err := s.store.CreateUser(req.Username, req.Email, req.Password)
	if errors.Is(err, store.ErrDuplicateIdentity) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Username or email already exists",
			"message": "Please choose a different username or email address.",
		})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    userPayload(user),
	})
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Username and password are required",
			"message": "Please provide both username and password to log in.",
		})
		return
	}
	user, err := s.store.VerifyCredentials(req.Username, req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid credentials",
			"message": "The username or password you entered is incorrect. Please try again.",
		})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userPayload(user),
		"token":   token,
	})
}

func (s *Server) profile(c *gin.Context) {
	user, err := s.store.FindByID(currentUserID(c))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "User not found",
			"message": "The user profile could not be found. Please check your session or login again.",
		})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved successfully",
		"user":    userPayload(user),
	})
}

// logout clears any client-held token cookie. Tokens are stateless, so a
// live token stays valid until its natural expiry; there is no server-side
// revocation list.
func (s *Server) logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
