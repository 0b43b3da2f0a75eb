package database

import (
	"errors"

	"neuroscan/config"
	"neuroscan/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateEmail is returned when a signup collides with a registered email.
	ErrDuplicateEmail = errors.New("email is already registered")
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")
)

// CreateUser hashes the password and persists a new user. The prior lookup
// gives a friendly answer for the common case; the unique constraint on
// users.email stays authoritative when two signups race, so a conflicting
// insert still comes back as ErrDuplicateEmail.
func CreateUser(name, email string, age uint, gender, password string) (*models.User, error) {
	db := Database.Db

	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Age:      age,
		Gender:   gender,
		Password: string(hashedPassword),
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by their email address.
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by primary key.
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := Database.Db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials checks a plaintext password against the stored hash.
// Unknown email and wrong password both collapse to false so the caller
// cannot tell which one failed.
func VerifyCredentials(email, password string) bool {
	user, err := GetUserByEmail(email)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
