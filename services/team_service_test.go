package services

import (
	"errors"
	"testing"

	"github.com/teamtasker/database"
	"github.com/teamtasker/dto"
	"github.com/teamtasker/models"
)

func TestCreateTeam(t *testing.T) {
	setupTestDB(t)
	svc := NewTeamService()

	seedUser(t, "User-00001")
	seedUser(t, "User-00002")
	seedUser(t, "User-00003")

	team, err := svc.CreateTeam(dto.CreateTeamRequest{
		TeamName:   "Backend",
		TeamLeader: "User-00001",
		Members:    []string{"User-00002", "User-00003"},
	}, "User-00099")
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if team.TeamID != "Team-00001" {
		t.Errorf("TeamID = %q, want Team-00001", team.TeamID)
	}
	if team.Members.Contains("User-00001") {
		t.Error("leader ended up in the member list")
	}
}

func TestCreateTeamFiltersLeaderFromMembers(t *testing.T) {
	setupTestDB(t)
	svc := NewTeamService()

	seedUser(t, "User-00001")
	seedUser(t, "User-00002")
	seedUser(t, "User-00003")

	// Leader listed among members: filtered out, then too few remain
	_, err := svc.CreateTeam(dto.CreateTeamRequest{
		TeamName:   "Backend",
		TeamLeader: "User-00001",
		Members:    []string{"User-00001", "User-00002"},
	}, "User-00099")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}

	// With enough members besides the leader, creation succeeds
	team, err := svc.CreateTeam(dto.CreateTeamRequest{
		TeamName:   "Backend",
		TeamLeader: "User-00001",
		Members:    []string{"User-00001", "User-00002", "User-00003"},
	}, "User-00099")
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if len(team.Members) != 2 {
		t.Errorf("members = %v, want the two non-leaders", team.Members)
	}
}

func TestCreateTeamUnknownMember(t *testing.T) {
	setupTestDB(t)
	svc := NewTeamService()

	seedUser(t, "User-00001")
	seedUser(t, "User-00002")

	_, err := svc.CreateTeam(dto.CreateTeamRequest{
		TeamName:   "Backend",
		TeamLeader: "User-00001",
		Members:    []string{"User-00002", "User-00042"},
	}, "User-00099")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestCreateTeamWithProject(t *testing.T) {
	setupTestDB(t)
	svc := NewTeamService()

	seedUser(t, "User-00001")
	seedUser(t, "User-00002")
	seedUser(t, "User-00003")
	seedProject(t, "Project-00001", "User-00099")

	team, err := svc.CreateTeam(dto.CreateTeamRequest{
		TeamName:        "Backend",
		TeamLeader:      "User-00001",
		Members:         []string{"User-00002", "User-00003"},
		AssignedProject: &dto.ProjectRef{ProjectID: "Project-00001"},
		Deadline:        "2026-12-01",
	}, "User-00099")
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	var log models.AssignedProjectLog
	if err := database.DB.First(&log, "project_id = ?", "Project-00001").Error; err != nil {
		t.Fatalf("assignment log not created: %v", err)
	}
	if log.TeamID != team.TeamID {
		t.Errorf("log.TeamID = %q, want %q", log.TeamID, team.TeamID)
	}
	if log.AssignProjectID != "AssignProject-00001" {
		t.Errorf("AssignProjectID = %q, want AssignProject-00001", log.AssignProjectID)
	}
	if len(log.TasksIDs) != 0 {
		t.Errorf("new log TasksIDs = %v, want empty", log.TasksIDs)
	}
}

func TestCreateTeamProjectAlreadyAssigned(t *testing.T) {
	setupTestDB(t)
	svc := NewTeamService()

	seedUser(t, "User-00001")
	seedUser(t, "User-00002")
	seedUser(t, "User-00003")
	seedProject(t, "Project-00001", "User-00099")
	seedTeam(t, "Team-00077", "User-00050", "User-00051", "User-00052")
	seedLog(t, "AssignProject-00001", "Project-00001", "Team-00077")

	_, err := svc.CreateTeam(dto.CreateTeamRequest{
		TeamName:        "Backend",
		TeamLeader:      "User-00001",
		Members:         []string{"User-00002", "User-00003"},
		AssignedProject: &dto.ProjectRef{ProjectID: "Project-00001"},
		Deadline:        "2026-12-01",
	}, "User-00099")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}

	// The conflict must not leave a half-created team behind
	var count int64
	database.DB.Model(&models.Team{}).Count(&count)
	if count != 1 {
		t.Errorf("team count = %d, want only the seeded team", count)
	}
}

func TestTeamsForLeaderAndMember(t *testing.T) {
	setupTestDB(t)
	svc := NewTeamService()

	seedUser(t, "User-00001")
	seedUser(t, "User-00002")
	seedUser(t, "User-00003")
	seedTeam(t, "Team-00001", "User-00001", "User-00002", "User-00003")
	seedTeam(t, "Team-00002", "User-00002", "User-00001", "User-00003")

	asLeader, err := svc.TeamsForLeader("User-00001")
	if err != nil {
		t.Fatalf("TeamsForLeader: %v", err)
	}
	if len(asLeader.Teams) != 1 || asLeader.Teams[0].TeamID != "Team-00001" {
		t.Errorf("leader teams = %v, want [Team-00001]", asLeader.Teams)
	}

	asMember, err := svc.TeamsForMember("User-00001")
	if err != nil {
		t.Fatalf("TeamsForMember: %v", err)
	}
	if len(asMember.Teams) != 1 || asMember.Teams[0].TeamID != "Team-00002" {
		t.Errorf("member teams = %v, want [Team-00002]", asMember.Teams)
	}
	if len(asMember.MembersData) != 1 {
		t.Fatalf("membersData = %v, want one entry", asMember.MembersData)
	}
}

func TestTeamProjects(t *testing.T) {
	setupTestDB(t)
	svc := NewTeamService()

	seedTeam(t, "Team-00001", "User-00001", "User-00002", "User-00003")
	seedProject(t, "Project-00001", "User-00099")
	seedLog(t, "AssignProject-00001", "Project-00001", "Team-00001")

	resp, err := svc.TeamProjects("Team-00001")
	if err != nil {
		t.Fatalf("TeamProjects: %v", err)
	}
	if resp.TeamName != "Team Team-00001" {
		t.Errorf("TeamName = %q", resp.TeamName)
	}
	if len(resp.Projects) != 1 {
		t.Fatalf("projects = %v, want one", resp.Projects)
	}
	p := resp.Projects[0]
	if p.ProjectID != "Project-00001" || p.TeamID != "Team-00001" || p.Deadline == nil {
		t.Errorf("merged project = %+v", p)
	}
}

func TestTeamProjectsUnknownTeam(t *testing.T) {
	setupTestDB(t)
	svc := NewTeamService()

	_, err := svc.TeamProjects("Team-00042")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
