package repositories

import (
	"github.com/teamtasker/database"
	"github.com/teamtasker/models"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindByTaskID retrieves a task by its TaskId
func (r *TaskRepository) FindByTaskID(taskID string) (models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, "task_id = ?", taskID)
	return task, result.Error
}

// FindByTaskIDs retrieves all tasks whose TaskId is in the list
func (r *TaskRepository) FindByTaskIDs(taskIDs []string) ([]models.Task, error) {
	var tasks []models.Task
	if len(taskIDs) == 0 {
		return tasks, nil
	}
	result := database.DB.Where("task_id IN ?", taskIDs).Find(&tasks)
	return tasks, result.Error
}

// CreateTx inserts a new task within the given transaction
func (r *TaskRepository) CreateTx(tx *gorm.DB, task *models.Task) error {
	return tx.Create(task).Error
}

// Save persists changes to an existing task
func (r *TaskRepository) Save(task *models.Task) error {
	return database.DB.Save(task).Error
}

// DeleteByTaskIDsTx removes the given tasks within the transaction and
// returns how many were deleted
func (r *TaskRepository) DeleteByTaskIDsTx(tx *gorm.DB, taskIDs []string) (int64, error) {
	result := tx.Where("task_id IN ?", taskIDs).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}
