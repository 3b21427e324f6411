package services

import (
	"errors"
	"fmt"

	"github.com/teamtasker/database"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/logging"
	"github.com/teamtasker/models"
	"github.com/teamtasker/repositories"
	"github.com/teamtasker/utils"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo       *repositories.TaskRepository
	teamRepo       *repositories.TeamRepository
	userRepo       *repositories.UserRepository
	assignmentRepo *repositories.AssignmentRepository
	counterRepo    *repositories.CounterRepository
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo:       repositories.NewTaskRepository(),
		teamRepo:       repositories.NewTeamRepository(),
		userRepo:       repositories.NewUserRepository(),
		assignmentRepo: repositories.NewAssignmentRepository(),
		counterRepo:    repositories.NewCounterRepository(),
	}
}

// CreateTask creates a task under a project's assignment log. The task and
// the log's tasks_ids append share one transaction: a task either exists
// linked to exactly one log, or not at all. An empty assignedTo broadcasts
// the task to the team's whole member list.
func (s *TaskService) CreateTask(req dto.CreateTaskRequest) (*models.Task, error) {
	var log models.AssignedProjectLog
	var err error
	if req.TeamID != "" {
		log, err = s.assignmentRepo.FindByProjectAndTeam(req.ProjectID, req.TeamID)
	} else {
		log, err = s.assignmentRepo.FindByProjectID(req.ProjectID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assigned project log not found", ErrNotFound)
		}
		return nil, err
	}

	team, err := s.teamRepo.FindByTeamID(log.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: team not found", ErrNotFound)
		}
		return nil, err
	}

	deadline, err := utils.ParseDeadline(req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	assignedTo := models.StringList(req.AssignedTo)
	if len(assignedTo) == 0 {
		// Broadcast assignment: the stored member list, leader excluded
		assignedTo = team.Members
	} else {
		users, err := s.userRepo.FindByUserIDs(assignedTo)
		if err != nil {
			return nil, err
		}
		if len(users) != len(assignedTo) {
			return nil, fmt.Errorf("%w: assigned user not found", ErrNotFound)
		}
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  assignedTo,
		Deadline:    deadline,
		Status:      models.TaskStatusPending,
		Submittedby: models.NotSubmitted,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.counterRepo.NextID(tx, "Task")
		if err != nil {
			return err
		}
		task.TaskID = id
		if err := s.taskRepo.CreateTx(tx, &task); err != nil {
			return err
		}
		return s.assignmentRepo.AppendTaskTx(tx, log.AssignProjectID, task.TaskID)
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Infof("created task %s under %s", task.TaskID, log.AssignProjectID)
	return &task, nil
}

// SubmitTask attaches a member's work to a task. The status is forced to
// In Progress whether the task was Pending, Re Assigned or already In
// Progress; re-submission simply overwrites. Completed tasks cannot be
// reopened by a member.
func (s *TaskService) SubmitTask(taskID string, req dto.SubmitTaskRequest) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanSubmit() {
		return nil, fmt.Errorf("%w: completed tasks cannot be resubmitted", ErrConflict)
	}

	task.GitHubURL = req.GitHubURL
	task.Context = req.Context
	task.Submittedby = req.Submittedby
	task.Status = models.TaskStatusInProgress
	if err := s.taskRepo.Save(&task); err != nil {
		return nil, err
	}

	logging.Logger.Infof("task %s submitted by %s", task.TaskID, task.Submittedby)
	return &task, nil
}

// CompleteTask moves a task to Completed. Only tasks that are exactly
// In Progress qualify; anything else is a state conflict and the task is
// left unchanged.
func (s *TaskService) CompleteTask(taskID string) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanComplete() {
		return nil, fmt.Errorf("%w: only tasks in 'In Progress' can be marked as completed", ErrConflict)
	}

	task.Status = models.TaskStatusCompleted
	if err := s.taskRepo.Save(&task); err != nil {
		return nil, err
	}

	logging.Logger.Infof("task %s completed", task.TaskID)
	return &task, nil
}

// ReassignTask sends a task back to the member with feedback. The prior
// submission is cleared and the member's explanation in Context is
// overwritten by the feedback.
func (s *TaskService) ReassignTask(taskID, feedback string) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanReassign() {
		return nil, fmt.Errorf("%w: only submitted or completed tasks can be re-assigned", ErrConflict)
	}

	task.Status = models.TaskStatusReAssigned
	task.GitHubURL = ""
	task.Context = feedback
	task.Submittedby = models.NotSubmitted
	if err := s.taskRepo.Save(&task); err != nil {
		return nil, err
	}

	logging.Logger.Infof("task %s re-assigned", task.TaskID)
	return &task, nil
}

// ResetTask is the plain Pending reset: submission fields are cleared with
// no feedback requirement.
func (s *TaskService) ResetTask(taskID string) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanReset() {
		return nil, fmt.Errorf("%w: only pending or re-assigned tasks can be reset", ErrConflict)
	}

	task.Status = models.TaskStatusPending
	task.GitHubURL = ""
	task.Context = ""
	task.Submittedby = models.NotSubmitted
	if err := s.taskRepo.Save(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask edits a task's fields. An empty assignedTo broadcasts to the
// member list of the team resolved through the task's assignment log.
func (s *TaskService) UpdateTask(taskID string, req dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	deadline, err := utils.ParseDeadline(req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	assignedTo := models.StringList(req.AssignedTo)
	if len(assignedTo) == 0 {
		log, err := s.assignmentRepo.FindByTaskID(taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: assigned project log not found", ErrNotFound)
			}
			return nil, err
		}
		team, err := s.teamRepo.FindByTeamID(log.TeamID)
		if err != nil {
			return nil, err
		}
		assignedTo = team.Members
	}

	task.Title = req.Title
	task.Description = req.Description
	task.AssignedTo = assignedTo
	task.Deadline = deadline
	task.GitHubURL = req.GitHubURL
	task.Context = req.Context
	if err := s.taskRepo.Save(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTasks bulk-deletes tasks and prunes their IDs from every
// assignment log in a single transaction, so a log never references a
// task that no longer exists.
func (s *TaskService) DeleteTasks(taskIDs []string) (int64, error) {
	var deleted int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = s.taskRepo.DeleteByTaskIDsTx(tx, taskIDs)
		if err != nil {
			return err
		}
		return s.assignmentRepo.PruneTasksTx(tx, taskIDs)
	})
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, fmt.Errorf("%w: no tasks were deleted", ErrNotFound)
	}

	logging.Logger.Infof("deleted %d task(s)", deleted)
	return deleted, nil
}

// TaskDetail retrieves a single task
func (s *TaskService) TaskDetail(taskID string) (*models.Task, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ProjectTasks lists a project's tasks through its assignment log, with
// resolved user details for everyone the tasks are assigned to. The log's
// task list is authoritative: tasks not referenced there do not appear.
func (s *TaskService) ProjectTasks(projectID, currentUserID string) (*dto.ProjectTasksResponse, error) {
	log, err := s.assignmentRepo.FindByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no assigned project log found for this project", ErrNotFound)
		}
		return nil, err
	}

	tasks, err := s.taskRepo.FindByTaskIDs(log.TasksIDs)
	if err != nil {
		return nil, err
	}

	// Unique assignee IDs across all tasks
	seen := make(map[string]bool)
	var assigneeIDs []string
	for _, task := range tasks {
		for _, id := range task.AssignedTo {
			if !seen[id] {
				seen[id] = true
				assigneeIDs = append(assigneeIDs, id)
			}
		}
	}

	users, err := s.userRepo.FindByUserIDs(assigneeIDs)
	if err != nil {
		return nil, err
	}
	members := make([]dto.MemberInfo, 0, len(users))
	for _, u := range users {
		members = append(members, dto.MemberInfo{
			UserID:     u.UserID,
			Firstname:  u.Firstname,
			Lastname:   u.Lastname,
			Profilepic: u.Profilepic,
		})
	}

	response := dto.ProjectTasksResponse{
		Tasks:   tasks,
		Members: members,
	}
	if currentUserID != "" {
		if user, err := s.userRepo.FindByUserID(currentUserID); err == nil {
			user.Password = ""
			response.CurrentUser = &user
		}
	}
	return &response, nil
}

func (s *TaskService) findTask(taskID string) (models.Task, error) {
	task, err := s.taskRepo.FindByTaskID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return task, fmt.Errorf("%w: task not found", ErrNotFound)
		}
		return task, err
	}
	return task, nil
}
