package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/teamtasker/database"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/logging"
	"github.com/teamtasker/models"
	"github.com/teamtasker/repositories"
	"github.com/teamtasker/utils"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo    *repositories.ProjectRepository
	teamRepo       *repositories.TeamRepository
	userRepo       *repositories.UserRepository
	assignmentRepo *repositories.AssignmentRepository
	counterRepo    *repositories.CounterRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo:    repositories.NewProjectRepository(),
		teamRepo:       repositories.NewTeamRepository(),
		userRepo:       repositories.NewUserRepository(),
		assignmentRepo: repositories.NewAssignmentRepository(),
		counterRepo:    repositories.NewCounterRepository(),
	}
}

// CreateProject creates a project and, when a team is supplied, its
// assignment log in the same transaction
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest, createdBy string) (*models.Project, error) {
	var team models.Team
	var deadline time.Time
	var err error
	if req.AssignedTeam != nil {
		deadline, err = utils.ParseDeadline(req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		team, err = s.teamRepo.FindByTeamID(req.AssignedTeam.TeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: team not found", ErrNotFound)
			}
			return nil, err
		}
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   createdBy,
		Status:      models.ProjectStatusPending,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.counterRepo.NextID(tx, "Project")
		if err != nil {
			return err
		}
		project.ProjectID = id
		if err := s.projectRepo.CreateTx(tx, &project); err != nil {
			return err
		}

		if req.AssignedTeam == nil {
			return nil
		}
		assignID, err := s.counterRepo.NextID(tx, "AssignProject")
		if err != nil {
			return err
		}
		log := models.AssignedProjectLog{
			AssignProjectID: assignID,
			ProjectID:       project.ProjectID,
			TeamID:          team.TeamID,
			AssignedBy:      createdBy,
			Deadline:        deadline,
			TasksIDs:        models.StringList{},
		}
		return s.assignmentRepo.CreateTx(tx, &log)
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Infof("created project %s", project.ProjectID)
	return &project, nil
}

// AssignProject links an existing project to an existing team. A project
// can be referenced by at most one assignment log at a time.
func (s *ProjectService) AssignProject(projectID, teamID, deadlineStr string) (*models.AssignedProjectLog, error) {
	project, err := s.projectRepo.FindByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project not found", ErrNotFound)
		}
		return nil, err
	}

	deadline, err := utils.ParseDeadline(deadlineStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	assigned, err := s.assignmentRepo.ExistsForProject(projectID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, fmt.Errorf("%w: project is already assigned to a team", ErrConflict)
	}

	team, err := s.teamRepo.FindByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: team not found", ErrNotFound)
		}
		return nil, err
	}

	log := models.AssignedProjectLog{
		ProjectID:  project.ProjectID,
		TeamID:     team.TeamID,
		AssignedBy: project.CreatedBy,
		Deadline:   deadline,
		TasksIDs:   models.StringList{},
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		assignID, err := s.counterRepo.NextID(tx, "AssignProject")
		if err != nil {
			return err
		}
		log.AssignProjectID = assignID
		return s.assignmentRepo.CreateTx(tx, &log)
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Infof("assigned project %s to team %s", project.ProjectID, team.TeamID)
	return &log, nil
}

// ListProjects retrieves a manager's projects, each merged with its
// assignment log when one exists
func (s *ProjectService) ListProjects(createdBy string) ([]dto.ProjectWithLog, error) {
	projects, err := s.projectRepo.FindByCreator(createdBy)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProjectWithLog, 0, len(projects))
	for _, project := range projects {
		entry := dto.ProjectWithLog{Project: project, TasksIDs: []string{}}
		log, err := s.assignmentRepo.FindByProjectID(project.ProjectID)
		if err == nil {
			deadline := log.Deadline
			entry.TeamID = log.TeamID
			entry.Deadline = &deadline
			entry.TasksIDs = log.TasksIDs
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// UnassignedProjects retrieves projects that appear in no assignment log
func (s *ProjectService) UnassignedProjects() ([]models.Project, error) {
	assignedIDs, err := s.assignmentRepo.AssignedProjectIDs()
	if err != nil {
		return nil, err
	}
	return s.projectRepo.FindUnassigned(assignedIDs)
}

// ProjectTeamMembers resolves member details for the team a project is
// assigned to
func (s *ProjectService) ProjectTeamMembers(projectID string) ([]dto.MemberInfo, error) {
	log, err := s.assignmentRepo.FindByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no assigned project log found for this project", ErrNotFound)
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

	users, err := s.userRepo.FindByUserIDs(team.Members)
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
	return members, nil
}
