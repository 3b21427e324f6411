package services

import (
	"testing"
	"time"

	"github.com/teamtasker/database"
	"github.com/teamtasker/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level connection at an in-memory sqlite
// database for the duration of one test. The pool is capped at a single
// connection because every new sqlite :memory: connection is a fresh,
// empty database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Project{},
		&models.AssignedProjectLog{},
		&models.Task{},
		&models.Counter{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	database.DB = db
	t.Cleanup(func() { sqlDB.Close() })
}

func seedUser(t *testing.T, id string) models.User {
	t.Helper()
	user := models.User{
		UserID:    id,
		Firstname: "Test",
		Lastname:  "User",
		Email:     id + "@example.com",
		Password:  "irrelevant",
		UserType:  models.UserTypeUser,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return user
}

func seedTeam(t *testing.T, id, leader string, members ...string) models.Team {
	t.Helper()
	team := models.Team{
		TeamID:     id,
		TeamName:   "Team " + id,
		TeamLeader: leader,
		Members:    models.StringList(members),
		CreatedBy:  "User-00099",
	}
	if err := database.DB.Create(&team).Error; err != nil {
		t.Fatalf("seed team %s: %v", id, err)
	}
	return team
}

func seedProject(t *testing.T, id, createdBy string) models.Project {
	t.Helper()
	project := models.Project{
		ProjectID:   id,
		Title:       "Project " + id,
		Description: "seeded project",
		CreatedBy:   createdBy,
		Status:      models.ProjectStatusPending,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("seed project %s: %v", id, err)
	}
	return project
}

func seedLog(t *testing.T, id, projectID, teamID string) models.AssignedProjectLog {
	t.Helper()
	log := models.AssignedProjectLog{
		AssignProjectID: id,
		ProjectID:       projectID,
		TeamID:          teamID,
		AssignedBy:      "User-00099",
		Deadline:        time.Now().Add(24 * time.Hour),
		TasksIDs:        models.StringList{},
	}
	if err := database.DB.Create(&log).Error; err != nil {
		t.Fatalf("seed log %s: %v", id, err)
	}
	return log
}
