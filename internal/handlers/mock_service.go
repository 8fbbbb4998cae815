package handlers

import (
	"context"
	"net/http"

	"taskboard/internal/models"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID    string
	signUpErr   error
	genToken    string
	genTokenErr error
	parseID     string
	parseErr    error
	infoUser    *models.User
	infoErr     error

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastGenEmail       string
	lastGenPassword    string
	lastParseToken     string
	lastInfoID         string
}

func (m *mockAuth) SignUp(ctx context.Context, username, email, password string) (string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(ctx context.Context, email, password string) (string, error) {
	m.lastGenEmail = email
	m.lastGenPassword = password
	return m.genToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) UserInfo(ctx context.Context, id string) (*models.User, error) {
	m.lastInfoID = id
	return m.infoUser, m.infoErr
}

type mockTasks struct {
	createTask models.Task
	createErr  error
	listResp   []models.Task
	listErr    error
	updateTask models.Task
	updateErr  error
	statusTask models.Task
	statusErr  error
	deleteErr  error

	lastCreateOwner  string
	lastCreateInput  service.CreateTaskInput
	lastListOwner    string
	lastUpdateOwner  string
	lastUpdateID     string
	lastUpdateInput  service.UpdateTaskInput
	lastStatusOwner  string
	lastStatusID     string
	lastStatusValue  string
	lastDeleteOwner  string
	lastDeleteTaskID string
}

func (m *mockTasks) Create(ctx context.Context, ownerID string, in service.CreateTaskInput) (models.Task, error) {
	m.lastCreateOwner = ownerID
	m.lastCreateInput = in
	return m.createTask, m.createErr
}

func (m *mockTasks) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	m.lastListOwner = ownerID
	return m.listResp, m.listErr
}

func (m *mockTasks) Update(ctx context.Context, ownerID, id string, in service.UpdateTaskInput) (models.Task, error) {
	m.lastUpdateOwner = ownerID
	m.lastUpdateID = id
	m.lastUpdateInput = in
	return m.updateTask, m.updateErr
}

func (m *mockTasks) UpdateStatus(ctx context.Context, ownerID, id, status string) (models.Task, error) {
	m.lastStatusOwner = ownerID
	m.lastStatusID = id
	m.lastStatusValue = status
	return m.statusTask, m.statusErr
}

func (m *mockTasks) Delete(ctx context.Context, ownerID, id string) error {
	m.lastDeleteOwner = ownerID
	m.lastDeleteTaskID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
