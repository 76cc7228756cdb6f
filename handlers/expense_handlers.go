package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spendtrack/models"
	"spendtrack/store"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type expenseRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Notes    *string `json:"notes"`
}

// validate rejects malformed input before the store is invoked.
func (r *expenseRequest) validate() (time.Time, error) {
	if r.Amount <= 0 {
		return time.Time{}, fmt.Errorf("amount must be a positive number")
	}
	if strings.TrimSpace(r.Category) == "" {
		return time.Time{}, fmt.Errorf("category must not be empty")
	}
	date, err := time.ParseInLocation(dateLayout, r.Date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

func expensePayload(e *models.Expense) gin.H {
	return gin.H{
		"id":       e.ID,
		"amount":   e.Amount,
		"category": e.Category,
		"date":     e.Date.UTC().Format(dateLayout),
		"notes":    e.Notes,
		"userId":   e.UserID,
	}
}

// monthYear parses the month/year query pair. With required unset the pair
// may be absent entirely, but never half-supplied.
func monthYear(c *gin.Context, required bool) (int, int, error) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" && yearStr == "" {
		if required {
			return 0, 0, fmt.Errorf("month and year are required")
		}
		return 0, 0, nil
	}
	if monthStr == "" || yearStr == "" {
		return 0, 0, fmt.Errorf("month and year must be provided together")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be a number between 1 and 12")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1000 || year > 9999 {
		return 0, 0, fmt.Errorf("year must be a 4-digit number")
	}
	return month, year, nil
}

// addExpense creates a new expense for the authenticated user.
func (s *Server) addExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Amount, category, and date are required",
			"details": "Please ensure all required fields are provided.",
		})
		return
	}
	date, err := req.validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   err.Error(),
			"details": "Please ensure all required fields are valid.",
		})
		return
	}
	exp, err := s.store.CreateExpense(currentUserID(c), req.Amount, req.Category, date, req.Notes)
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense added successfully",
		"data":    expensePayload(exp),
	})
}

// getExpenses lists the user's expenses, optionally filtered to one calendar
// month. An empty result is reported as 404 rather than an empty list.
func (s *Server) getExpenses(c *gin.Context) {
	month, year, err := monthYear(c, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   err.Error(),
			"details": "Please provide both the month and year to filter expenses.",
		})
		return
	}
	expenses, err := s.store.ListByUser(currentUserID(c), month, year)
	if err != nil {
		s.serverError(c, err)
		return
	}
	if len(expenses) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "No expenses found",
			"details": "Try checking the input values or if you have expenses logged for the selected period.",
		})
		return
	}
	data := make([]gin.H, 0, len(expenses))
	for i := range expenses {
		data = append(data, expensePayload(&expenses[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Expenses retrieved successfully",
		"data":    data,
	})
}

func (s *Server) getMonthlySummary(c *gin.Context) {
	month, year, err := monthYear(c, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   err.Error(),
			"details": "Please provide both the month and year to get the summary.",
		})
		return
	}
	sum, err := s.store.MonthlySummary(currentUserID(c), month, year)
	if err != nil {
		s.serverError(c, err)
		return
	}
	if len(sum.ByCategory) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "No summary found for the given month and year",
			"details": "Check if there are any expenses logged for the selected period.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Summary retrieved successfully",
		"data": gin.H{
			"total":      sum.Total,
			"byCategory": sum.ByCategory,
		},
	})
}

func (s *Server) updateExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid expense id",
			"details": "The expense id must be a number.",
		})
		return
	}
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Amount, category, and date are required",
			"details": "Please ensure all required fields are provided.",
		})
		return
	}
	date, err := req.validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   err.Error(),
			"details": "Please ensure all required fields are valid.",
		})
		return
	}
	exp, err := s.store.UpdateExpense(uint(id), currentUserID(c), req.Amount, req.Category, date, req.Notes)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Expense not found or not authorized",
			"details": "Please check the expense ID and your authorization rights.",
		})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Expense updated successfully",
		"data":    expensePayload(exp),
	})
}

func (s *Server) deleteExpense(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid expense id",
			"details": "The expense id must be a number.",
		})
		return
	}
	exp, err := s.store.DeleteExpense(uint(id), currentUserID(c))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Expense not found or not authorized",
			"details": "Expense with the provided ID was not found or you are not authorized to delete it.",
		})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Expense deleted successfully",
		"data":    expensePayload(exp),
	})
}
