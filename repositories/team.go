package repositories

import (
	"github.com/teamtasker/database"
	"github.com/teamtasker/models"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct{}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{}
}

// memberPattern matches a user ID inside the JSON-encoded members column.
// IDs are stored quoted, so "User-3" cannot match "User-33".
func memberPattern(userID string) string {
	return `%"` + userID + `"%`
}

// FindByTeamID retrieves a team by its TeamId
func (r *TeamRepository) FindByTeamID(teamID string) (models.Team, error) {
	var team models.Team
	result := database.DB.First(&team, "team_id = ?", teamID)
	return team, result.Error
}

// FindAll retrieves all teams
func (r *TeamRepository) FindAll() ([]models.Team, error) {
	var teams []models.Team
	result := database.DB.Find(&teams)
	return teams, result.Error
}

// FindByLeader retrieves all teams led by the given user
func (r *TeamRepository) FindByLeader(userID string) ([]models.Team, error) {
	var teams []models.Team
	result := database.DB.Where("team_leader = ?", userID).Find(&teams)
	return teams, result.Error
}

// FindByMember retrieves all teams the given user is a member of
func (r *TeamRepository) FindByMember(userID string) ([]models.Team, error) {
	var teams []models.Team
	result := database.DB.Where("members LIKE ?", memberPattern(userID)).Find(&teams)
	return teams, result.Error
}

// IsLeader checks whether the user leads any team
func (r *TeamRepository) IsLeader(userID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Team{}).Where("team_leader = ?", userID).Count(&count).Error
	return count > 0, err
}

// IsMember checks whether the user is a member of any team
func (r *TeamRepository) IsMember(userID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Team{}).
		Where("members LIKE ?", memberPattern(userID)).Count(&count).Error
	return count > 0, err
}

// CreateTx inserts a new team within the given transaction
func (r *TeamRepository) CreateTx(tx *gorm.DB, team *models.Team) error {
	return tx.Create(team).Error
}
