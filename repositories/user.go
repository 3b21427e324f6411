package repositories

import (
	"github.com/teamtasker/database"
	"github.com/teamtasker/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByUserID retrieves a user by its UserId
func (r *UserRepository) FindByUserID(userID string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "user_id = ?", userID)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// FindByUserIDs retrieves all users whose UserId is in the given list
func (r *UserRepository) FindByUserIDs(userIDs []string) ([]models.User, error) {
	var users []models.User
	if len(userIDs) == 0 {
		return users, nil
	}
	result := database.DB.Where("user_id IN ?", userIDs).Find(&users)
	return users, result.Error
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := database.DB.Find(&users)
	return users, result.Error
}

// EmailExists checks whether an account with this email already exists
func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CreateTx inserts a new user within the given transaction
func (r *UserRepository) CreateTx(tx *gorm.DB, user *models.User) error {
	return tx.Create(user).Error
}

// DeleteByEmails removes all users with the given emails and returns how
// many were deleted
func (r *UserRepository) DeleteByEmails(emails []string) (int64, error) {
	result := database.DB.Where("email IN ?", emails).Delete(&models.User{})
	return result.RowsAffected, result.Error
}
