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

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo       *repositories.TeamRepository
	userRepo       *repositories.UserRepository
	projectRepo    *repositories.ProjectRepository
	assignmentRepo *repositories.AssignmentRepository
	counterRepo    *repositories.CounterRepository
}

// NewTeamService creates a new team service instance
func NewTeamService() *TeamService {
	return &TeamService{
		teamRepo:       repositories.NewTeamRepository(),
		userRepo:       repositories.NewUserRepository(),
		projectRepo:    repositories.NewProjectRepository(),
		assignmentRepo: repositories.NewAssignmentRepository(),
		counterRepo:    repositories.NewCounterRepository(),
	}
}

// CreateTeam creates a team and, when a project is supplied, its assignment
// log in the same transaction. The leader is removed from the member list
// if present; after that at least two members must remain.
func (s *TeamService) CreateTeam(req dto.CreateTeamRequest, createdBy string) (*models.Team, error) {
	// Leader is stored separately, never in the member list
	members := make(models.StringList, 0, len(req.Members))
	for _, m := range req.Members {
		if m != req.TeamLeader {
			members = append(members, m)
		}
	}
	if len(members) < 2 {
		return nil, fmt.Errorf("%w: a team needs at least two members besides the leader", ErrInvalid)
	}

	// All referenced users must exist
	wanted := append([]string{req.TeamLeader}, members...)
	users, err := s.userRepo.FindByUserIDs(wanted)
	if err != nil {
		return nil, err
	}
	if len(users) != len(wanted) {
		return nil, fmt.Errorf("%w: one or more team members do not exist", ErrNotFound)
	}

	var project models.Project
	var deadline time.Time
	if req.AssignedProject != nil {
		deadline, err = utils.ParseDeadline(req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		project, err = s.projectRepo.FindByProjectID(req.AssignedProject.ProjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: project not found", ErrNotFound)
			}
			return nil, err
		}
		assigned, err := s.assignmentRepo.ExistsForProject(project.ProjectID)
		if err != nil {
			return nil, err
		}
		if assigned {
			return nil, fmt.Errorf("%w: project is already assigned to a team", ErrConflict)
		}
	}

	team := models.Team{
		TeamName:   req.TeamName,
		TeamLeader: req.TeamLeader,
		Members:    members,
		CreatedBy:  createdBy,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.counterRepo.NextID(tx, "Team")
		if err != nil {
			return err
		}
		team.TeamID = id
		if err := s.teamRepo.CreateTx(tx, &team); err != nil {
			return err
		}

		if req.AssignedProject == nil {
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

	logging.Logger.Infof("created team %s (leader %s)", team.TeamID, team.TeamLeader)
	return &team, nil
}

// ListTeams retrieves every team with resolved member details
func (s *TeamService) ListTeams() (*dto.TeamListResponse, error) {
	teams, err := s.teamRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return s.withMembers(teams)
}

// TeamsForLeader retrieves the teams the user leads
func (s *TeamService) TeamsForLeader(userID string) (*dto.TeamListResponse, error) {
	teams, err := s.teamRepo.FindByLeader(userID)
	if err != nil {
		return nil, err
	}
	return s.withMembers(teams)
}

// TeamsForMember retrieves the teams the user belongs to
func (s *TeamService) TeamsForMember(userID string) (*dto.TeamListResponse, error) {
	teams, err := s.teamRepo.FindByMember(userID)
	if err != nil {
		return nil, err
	}
	return s.withMembers(teams)
}

// TeamProjects lists the projects assigned to a team, each merged with its
// log's deadline and task list
func (s *TeamService) TeamProjects(teamID string) (*dto.TeamProjectsResponse, error) {
	team, err := s.teamRepo.FindByTeamID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: team not found", ErrNotFound)
		}
		return nil, err
	}

	logs, err := s.assignmentRepo.FindByTeamID(teamID)
	if err != nil {
		return nil, err
	}

	response := dto.TeamProjectsResponse{
		Projects: make([]dto.ProjectWithLog, 0, len(logs)),
		TeamName: team.TeamName,
	}
	if len(logs) == 0 {
		return &response, nil
	}

	projectIDs := make([]string, 0, len(logs))
	byProject := make(map[string]models.AssignedProjectLog, len(logs))
	for _, log := range logs {
		projectIDs = append(projectIDs, log.ProjectID)
		byProject[log.ProjectID] = log
	}

	projects, err := s.projectRepo.FindByProjectIDs(projectIDs)
	if err != nil {
		return nil, err
	}
	for _, project := range projects {
		log := byProject[project.ProjectID]
		deadline := log.Deadline
		response.Projects = append(response.Projects, dto.ProjectWithLog{
			Project:  project,
			TeamID:   log.TeamID,
			Deadline: &deadline,
			TasksIDs: log.TasksIDs,
		})
	}
	return &response, nil
}

// withMembers resolves member details for each team
func (s *TeamService) withMembers(teams []models.Team) (*dto.TeamListResponse, error) {
	response := dto.TeamListResponse{
		Teams:       teams,
		MembersData: make([]dto.TeamMembers, 0, len(teams)),
	}
	for _, team := range teams {
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
		response.MembersData = append(response.MembersData, dto.TeamMembers{
			TeamID:  team.TeamID,
			Members: members,
		})
	}
	return &response, nil
}
