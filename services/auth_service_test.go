package services

import (
	"errors"
	"testing"

	"github.com/teamtasker/dto"
	"github.com/teamtasker/models"
)

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	setupTestDB(t)

	first, err := Register(dto.RegisterRequest{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	}, models.UserTypeUser)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if first.UserID != "User-00001" {
		t.Errorf("first UserID = %q, want User-00001", first.UserID)
	}

	second, err := Register(dto.RegisterRequest{
		Firstname: "Grace",
		Lastname:  "Hopper",
		Email:     "grace@example.com",
		Password:  "secret123",
	}, models.UserTypeProjectManager)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if second.UserID != "User-00002" {
		t.Errorf("second UserID = %q, want User-00002", second.UserID)
	}
	if second.UserType != models.UserTypeProjectManager {
		t.Errorf("UserType = %q, want %q", second.UserType, models.UserTypeProjectManager)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	req := dto.RegisterRequest{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	}
	if _, err := Register(req, models.UserTypeUser); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := Register(req, models.UserTypeUser)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email error = %v, want ErrConflict", err)
	}
}

func TestLoginResolvesTeamRoles(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	leader, err := Register(dto.RegisterRequest{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	}, models.UserTypeUser)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	seedTeam(t, "Team-00001", leader.UserID, "User-00010", "User-00011")

	resp, err := Login(dto.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if len(resp.UserRoles) != 1 || resp.UserRoles[0] != models.RoleTeamLeader {
		t.Errorf("UserRoles = %v, want [%s]", resp.UserRoles, models.RoleTeamLeader)
	}
	if resp.User.Password != "" {
		t.Error("response user still carries a password hash")
	}

	// The roles are frozen into the token itself
	claims, err := ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != leader.UserID {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, leader.UserID)
	}
	if len(claims.UserRoles) != 1 || claims.UserRoles[0] != models.RoleTeamLeader {
		t.Errorf("claims.UserRoles = %v, want [%s]", claims.UserRoles, models.RoleTeamLeader)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Register(dto.RegisterRequest{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	}, models.UserTypeUser); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := Login(dto.LoginRequest{Email: "ada@example.com", Password: "wrong-pass"})
	if !errors.Is(err, ErrDenied) {
		t.Errorf("wrong password error = %v, want ErrDenied", err)
	}

	_, err = Login(dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	if !errors.Is(err, ErrDenied) {
		t.Errorf("unknown email error = %v, want ErrDenied", err)
	}
}

func TestResolveTeamRolesBoth(t *testing.T) {
	setupTestDB(t)

	user := seedUser(t, "User-00001")
	seedTeam(t, "Team-00001", user.UserID, "User-00010", "User-00011")
	seedTeam(t, "Team-00002", "User-00020", user.UserID, "User-00011")

	roles, err := ResolveTeamRoles(user.UserID)
	if err != nil {
		t.Fatalf("ResolveTeamRoles: %v", err)
	}
	if len(roles) != 2 || roles[0] != models.RoleTeamLeader || roles[1] != models.RoleTeamMember {
		t.Errorf("roles = %v, want [TeamLeader TeamMember]", roles)
	}
}

func TestResolveTeamRolesNone(t *testing.T) {
	setupTestDB(t)

	user := seedUser(t, "User-00001")
	roles, err := ResolveTeamRoles(user.UserID)
	if err != nil {
		t.Fatalf("ResolveTeamRoles: %v", err)
	}
	if len(roles) != 0 {
		t.Errorf("roles = %v, want none", roles)
	}
}

func TestDeleteUsersByEmail(t *testing.T) {
	setupTestDB(t)

	seedUser(t, "User-00001")
	seedUser(t, "User-00002")

	deleted, err := DeleteUsersByEmail([]string{"User-00001@example.com", "User-00002@example.com"})
	if err != nil {
		t.Fatalf("DeleteUsersByEmail: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	_, err = DeleteUsersByEmail([]string{"nobody@example.com"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing emails error = %v, want ErrNotFound", err)
	}
}
