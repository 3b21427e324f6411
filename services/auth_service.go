package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/teamtasker/database"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/logging"
	"github.com/teamtasker/models"
	"github.com/teamtasker/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Token lifetime is deliberately short: team roles are resolved once at
// login and frozen into the token, so the lifetime bounds their staleness.
const tokenLifetime = time.Hour

// Register creates a new account of the given base type
func Register(req dto.RegisterRequest, userType models.UserType) (*models.User, error) {
	userRepo := repositories.NewUserRepository()

	exists, err := userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: email is already registered", ErrConflict)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Email:      req.Email,
		Password:   string(hashedPassword),
		Contact:    req.Contact,
		Profilepic: models.DefaultProfilePic,
		UserType:   userType,
	}

	counterRepo := repositories.NewCounterRepository()
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := counterRepo.NextID(tx, "User")
		if err != nil {
			return err
		}
		user.UserID = id
		return userRepo.CreateTx(tx, &user)
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Infof("registered %s (%s)", user.UserID, user.UserType)
	return &user, nil
}

// Login authenticates a user and returns a token. ProjectManager and Admin
// tokens carry the base type only; for plain users the Team collection is
// consulted to derive the TeamLeader/TeamMember role set, which is embedded
// in the token for all subsequent team/task authorization.
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	userRepo := repositories.NewUserRepository()

	user, err := userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrDenied)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrDenied)
	}

	var roles []string
	if user.UserType == models.UserTypeUser {
		roles, err = ResolveTeamRoles(user.UserID)
		if err != nil {
			return nil, err
		}
	}

	token, expiresAt, err := GenerateToken(user, roles)
	if err != nil {
		return nil, err
	}

	// Clear password from response
	responseUser := user
	responseUser.Password = ""

	if roles == nil {
		roles = []string{}
	}
	return &dto.AuthResponse{
		Token:     token,
		User:      responseUser,
		UserRoles: roles,
		ExpiresAt: expiresAt,
	}, nil
}

// ResolveTeamRoles derives the team-relationship role set for a user by
// querying Team membership. A user can be both leader and member, or
// neither.
func ResolveTeamRoles(userID string) ([]string, error) {
	teamRepo := repositories.NewTeamRepository()

	isLeader, err := teamRepo.IsLeader(userID)
	if err != nil {
		return nil, err
	}
	isMember, err := teamRepo.IsMember(userID)
	if err != nil {
		return nil, err
	}

	var roles []string
	if isLeader {
		roles = append(roles, models.RoleTeamLeader)
	}
	if isMember {
		roles = append(roles, models.RoleTeamMember)
	}
	return roles, nil
}

// GetUser retrieves a user by ID
func GetUser(userID string) (*models.User, error) {
	var user models.User
	result := database.DB.First(&user, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, result.Error
	}
	return &user, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(user models.User, roles []string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(tokenLifetime)

	claims := dto.TokenClaims{
		UserID:    user.UserID,
		Email:     user.Email,
		UserType:  string(user.UserType),
		UserRoles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// DeleteUsersByEmail bulk-deletes accounts by email (admin only)
func DeleteUsersByEmail(emails []string) (int64, error) {
	userRepo := repositories.NewUserRepository()
	deleted, err := userRepo.DeleteByEmails(emails)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, fmt.Errorf("%w: no users found with the provided emails", ErrNotFound)
	}
	logging.Logger.Infof("deleted %d user(s)", deleted)
	return deleted, nil
}

// ListUsers retrieves all accounts (admin only)
func ListUsers() ([]models.User, error) {
	userRepo := repositories.NewUserRepository()
	users, err := userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}
