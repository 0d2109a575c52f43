package handlers

import (
	"context"
	"net/http"

	"taskmanager/internal/models"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTasks struct {
	createID  int
	createErr error
	listTasks []models.Task
	listErr   error
	getTask   *models.Task
	getErr    error
	updateN   int64
	updateErr error
	deleteN   int64
	deleteErr error

	lastCreated models.Task
	lastActorID int
	lastGetID   int
	lastPatch   models.TaskPatch
	lastPatchID int
	lastDelID   int
}

func (m *mockTasks) Create(ctx context.Context, t models.Task, actorID int) (int, error) {
	m.lastCreated = t
	m.lastActorID = actorID
	return m.createID, m.createErr
}
func (m *mockTasks) List(ctx context.Context) ([]models.Task, error) {
	return m.listTasks, m.listErr
}
func (m *mockTasks) GetByID(ctx context.Context, id int) (*models.Task, error) {
	m.lastGetID = id
	return m.getTask, m.getErr
}
func (m *mockTasks) Update(ctx context.Context, id int, patch models.TaskPatch, actorID int) (int64, error) {
	m.lastPatchID = id
	m.lastPatch = patch
	m.lastActorID = actorID
	return m.updateN, m.updateErr
}
func (m *mockTasks) Delete(ctx context.Context, id int, actorID int) (int64, error) {
	m.lastDelID = id
	m.lastActorID = actorID
	return m.deleteN, m.deleteErr
}

type mockUsers struct {
	users   []models.User
	listErr error
}

func (m *mockUsers) List() ([]models.User, error) {
	return m.users, m.listErr
}

type mockActivity struct {
	events     []models.Activity
	listErr    error
	lastFilter service.ActivityFilter
}

func (m *mockActivity) List(ctx context.Context, f service.ActivityFilter) ([]models.Activity, error) {
	m.lastFilter = f
	return m.events, m.listErr
}

// ---- Test helpers ----

// newTestRouter builds the full route table against mocked services.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

// authHeader returns headers carrying a bearer token.
func authHeader(token string) http.Header {
	hdr := http.Header{}
	hdr.Set("Authorization", "Bearer "+token)
	return hdr
}
