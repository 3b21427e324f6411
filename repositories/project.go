package repositories

import (
	"github.com/teamtasker/database"
	"github.com/teamtasker/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByProjectID retrieves a project by its ProjectId
func (r *ProjectRepository) FindByProjectID(projectID string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "project_id = ?", projectID)
	return project, result.Error
}

// FindByProjectIDs retrieves all projects whose ProjectId is in the list
func (r *ProjectRepository) FindByProjectIDs(projectIDs []string) ([]models.Project, error) {
	var projects []models.Project
	if len(projectIDs) == 0 {
		return projects, nil
	}
	result := database.DB.Where("project_id IN ?", projectIDs).Find(&projects)
	return projects, result.Error
}

// FindByCreator retrieves all projects created by the given manager
func (r *ProjectRepository) FindByCreator(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("created_by = ?", userID).Find(&projects)
	return projects, result.Error
}

// FindUnassigned retrieves projects that appear in no assignment log
func (r *ProjectRepository) FindUnassigned(assignedProjectIDs []string) ([]models.Project, error) {
	var projects []models.Project
	db := database.DB
	if len(assignedProjectIDs) > 0 {
		db = db.Where("project_id NOT IN ?", assignedProjectIDs)
	}
	result := db.Find(&projects)
	return projects, result.Error
}

// CreateTx inserts a new project within the given transaction
func (r *ProjectRepository) CreateTx(tx *gorm.DB, project *models.Project) error {
	return tx.Create(project).Error
}
