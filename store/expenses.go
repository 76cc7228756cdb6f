package store

import (
	"time"

	"spendtrack/models"
)

// Summary holds one calendar month's category totals for a user.
type Summary struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"byCategory"`
}

func (s *Store) CreateExpense(userID uint, amount float64, category string, date time.Time, notes *string) (*models.Expense, error) {
	exp := models.Expense{UserID: userID, Amount: amount, Category: category, Date: date, Notes: notes}
	tx, cancel := s.session()
	defer cancel()
	if err := tx.Create(&exp).Error; err != nil {
		return nil, classify(err)
	}
	return &exp, nil
}

// monthRange returns the [start, end) window covering the given calendar
// month. Filtering on a range keeps one query text valid on both Postgres
// and the sqlite test driver.
func monthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// ListByUser returns the user's expenses, newest date first, with insertion
// order breaking ties. A month and year of zero means no filter.
func (s *Store) ListByUser(userID uint, month, year int) ([]models.Expense, error) {
	tx, cancel := s.session()
	defer cancel()
	q := tx.Where("user_id = ?", userID)
	if month != 0 && year != 0 {
		start, end := monthRange(month, year)
		q = q.Where("date >= ? AND date < ?", start, end)
	}
	var expenses []models.Expense
	if err := q.Order("date DESC, id ASC").Find(&expenses).Error; err != nil {
		return nil, classify(err)
	}
	return expenses, nil
}

// MonthlySummary sums the user's expenses for one calendar month, grouped by
// category. Zero matching rows yield an empty map, not an error.
func (s *Store) MonthlySummary(userID uint, month, year int) (*Summary, error) {
	start, end := monthRange(month, year)
	tx, cancel := s.session()
	defer cancel()
	rows, err := tx.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("category, sum(amount) as total").
		Group("category").
		Rows()
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	sum := &Summary{ByCategory: map[string]float64{}}
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, classify(err)
		}
		sum.ByCategory[category] = total
		sum.Total += total
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return sum, nil
}

// UpdateExpense replaces all mutable fields of the expense, but only when it
// is owned by userID. A missing or unowned id is ErrNotFound either way, so
// the caller learns nothing about other users' rows.
func (s *Store) UpdateExpense(id, userID uint, amount float64, category string, date time.Time, notes *string) (*models.Expense, error) {
	tx, cancel := s.session()
	defer cancel()
	updates := map[string]interface{}{
		"amount":   amount,
		"category": category,
		"date":     date,
		"notes":    notes,
	}
	res := tx.Model(&models.Expense{}).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
	if res.Error != nil {
		return nil, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var exp models.Expense
	if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&exp).Error; err != nil {
		return nil, classify(err)
	}
	return &exp, nil
}

// DeleteExpense removes the expense when owned by userID and returns the
// deleted row so handlers can echo it. Same ownership-blind ErrNotFound
// semantics as UpdateExpense.
func (s *Store) DeleteExpense(id, userID uint) (*models.Expense, error) {
	tx, cancel := s.session()
	defer cancel()
	var exp models.Expense
	if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&exp).Error; err != nil {
		return nil, classify(err)
	}
	if err := tx.Delete(&models.Expense{}, exp.ID).Error; err != nil {
		return nil, classify(err)
	}
	return &exp, nil
}
