package repositories

import (
	"github.com/teamtasker/database"
	"github.com/teamtasker/models"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignment logs
type AssignmentRepository struct{}

// NewAssignmentRepository creates a new assignment repository instance
func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{}
}

// taskPattern matches a task ID inside the JSON-encoded tasks_ids column
func taskPattern(taskID string) string {
	return `%"` + taskID + `"%`
}

// FindByProjectID retrieves the log for a project. A project has at most
// one active assignment.
func (r *AssignmentRepository) FindByProjectID(projectID string) (models.AssignedProjectLog, error) {
	var log models.AssignedProjectLog
	result := database.DB.First(&log, "project_id = ?", projectID)
	return log, result.Error
}

// FindByProjectAndTeam retrieves the log binding a project to a team
func (r *AssignmentRepository) FindByProjectAndTeam(projectID, teamID string) (models.AssignedProjectLog, error) {
	var log models.AssignedProjectLog
	result := database.DB.First(&log, "project_id = ? AND team_id = ?", projectID, teamID)
	return log, result.Error
}

// FindByTeamID retrieves all logs referencing the team
func (r *AssignmentRepository) FindByTeamID(teamID string) ([]models.AssignedProjectLog, error) {
	var logs []models.AssignedProjectLog
	result := database.DB.Where("team_id = ?", teamID).Find(&logs)
	return logs, result.Error
}

// FindByTaskID retrieves the log whose tasks_ids list contains the task
func (r *AssignmentRepository) FindByTaskID(taskID string) (models.AssignedProjectLog, error) {
	var log models.AssignedProjectLog
	result := database.DB.First(&log, "tasks_ids LIKE ?", taskPattern(taskID))
	return log, result.Error
}

// AssignedProjectIDs returns the ProjectIds of every assigned project
func (r *AssignmentRepository) AssignedProjectIDs() ([]string, error) {
	var ids []string
	err := database.DB.Model(&models.AssignedProjectLog{}).Pluck("project_id", &ids).Error
	return ids, err
}

// ExistsForProject checks whether the project is already assigned
func (r *AssignmentRepository) ExistsForProject(projectID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.AssignedProjectLog{}).
		Where("project_id = ?", projectID).Count(&count).Error
	return count > 0, err
}

// CreateTx inserts a new log within the given transaction
func (r *AssignmentRepository) CreateTx(tx *gorm.DB, log *models.AssignedProjectLog) error {
	return tx.Create(log).Error
}

// AppendTaskTx adds a task ID to the log's tasks_ids list within the given
// transaction. The caller creates the task in the same transaction, so the
// task either exists linked or not at all.
func (r *AssignmentRepository) AppendTaskTx(tx *gorm.DB, assignProjectID, taskID string) error {
	var log models.AssignedProjectLog
	if err := tx.First(&log, "assign_project_id = ?", assignProjectID).Error; err != nil {
		return err
	}
	log.TasksIDs = append(log.TasksIDs, taskID)
	return tx.Model(&models.AssignedProjectLog{}).
		Where("assign_project_id = ?", log.AssignProjectID).
		Update("tasks_ids", log.TasksIDs).Error
}

// PruneTasksTx removes the given task IDs from every log that references
// them, within the given transaction
func (r *AssignmentRepository) PruneTasksTx(tx *gorm.DB, taskIDs []string) error {
	db := tx
	for i, id := range taskIDs {
		if i == 0 {
			db = db.Where("tasks_ids LIKE ?", taskPattern(id))
		} else {
			db = db.Or("tasks_ids LIKE ?", taskPattern(id))
		}
	}

	var logs []models.AssignedProjectLog
	if err := db.Find(&logs).Error; err != nil {
		return err
	}
	for _, log := range logs {
		pruned := log.TasksIDs.Remove(taskIDs)
		if err := tx.Model(&models.AssignedProjectLog{}).
			Where("assign_project_id = ?", log.AssignProjectID).
			Update("tasks_ids", pruned).Error; err != nil {
			return err
		}
	}
	return nil
}
