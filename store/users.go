package store

import (
	"errors"

	"spendtrack/auth"
	"spendtrack/models"
)

// CreateUser hashes the password and inserts a new user. A taken username or
// email surfaces as ErrDuplicateIdentity.
func (s *Store) CreateUser(username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{Username: username, Email: email, HashedPass: hash}
	tx, cancel := s.session()
	defer cancel()
	if err := tx.Create(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// FindByUsername returns ErrNotFound when no such user exists. Absence is a
// valid result, not a fault.
func (s *Store) FindByUsername(username string) (*models.User, error) {
	var user models.User
	tx, cancel := s.session()
	defer cancel()
	if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (s *Store) FindByID(id uint) (*models.User, error) {
	var user models.User
	tx, cancel := s.session()
	defer cancel()
	if err := tx.First(&user, id).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// VerifyCredentials returns the user only when the username exists and the
// password matches its hash. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *Store) VerifyCredentials(username, password string) (*models.User, error) {
	user, err := s.FindByUsername(username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.HashedPass, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
