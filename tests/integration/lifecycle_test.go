//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BaltasisKos/Task-Manager-Server/internal/auth"
	"github.com/BaltasisKos/Task-Manager-Server/internal/config"
	notificationModel "github.com/BaltasisKos/Task-Manager-Server/internal/notification/model"
	notificationRouter "github.com/BaltasisKos/Task-Manager-Server/internal/notification/router"
	searchModel "github.com/BaltasisKos/Task-Manager-Server/internal/search/model"
	searchRouter "github.com/BaltasisKos/Task-Manager-Server/internal/search/router"
	taskModel "github.com/BaltasisKos/Task-Manager-Server/internal/task/model"
	taskRouter "github.com/BaltasisKos/Task-Manager-Server/internal/task/router"
	teamModel "github.com/BaltasisKos/Task-Manager-Server/internal/team/model"
	teamRouter "github.com/BaltasisKos/Task-Manager-Server/internal/team/router"
	userModel "github.com/BaltasisKos/Task-Manager-Server/internal/user/model"
	userRouter "github.com/BaltasisKos/Task-Manager-Server/internal/user/router"
)

type testUser struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;not null"`
	Title     string    `gorm:"column:title;not null;default:''"`
	Role      string    `gorm:"column:role;not null"`
	Email     string    `gorm:"column:email;not null;uniqueIndex"`
	Password  string    `gorm:"column:password;not null"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (testUser) TableName() string { return "users" }

type testTeam struct {
	ID          string    `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;not null;default:''"`
	Status      string    `gorm:"column:status;not null;default:'active'"`
	Deleted     bool      `gorm:"column:deleted;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (testTeam) TableName() string { return "teams" }

type testTeamMember struct {
	ID     int64  `gorm:"primaryKey;column:id"`
	TeamID string `gorm:"column:team_id;not null"`
	UserID string `gorm:"column:user_id;not null"`
}

func (testTeamMember) TableName() string { return "team_members" }

type testTask struct {
	ID        string     `gorm:"primaryKey;column:id"`
	Name      string     `gorm:"column:name;not null"`
	TeamID    string     `gorm:"column:team_id;not null"`
	Status    string     `gorm:"column:status;not null;default:'todo'"`
	Notes     string     `gorm:"column:notes;not null;default:''"`
	DueDate   *time.Time `gorm:"column:due_date"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (testTask) TableName() string { return "tasks" }

type testTaskMember struct {
	ID     int64  `gorm:"primaryKey;column:id"`
	TaskID string `gorm:"column:task_id;not null"`
	UserID string `gorm:"column:user_id;not null"`
}

func (testTaskMember) TableName() string { return "task_members" }

type testNotification struct {
	ID        string    `gorm:"primaryKey;column:id"`
	UserID    string    `gorm:"column:user_id;not null"`
	Type      string    `gorm:"column:type;not null"`
	Title     string    `gorm:"column:title;not null"`
	Message   string    `gorm:"column:message;not null"`
	Data      string    `gorm:"column:data;not null;default:'{}'"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (testNotification) TableName() string { return "notifications" }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&testUser{}, &testTeam{}, &testTeamMember{},
		&testTask{}, &testTaskMember{}, &testNotification{},
	)
	require.NoError(t, err)

	return db
}

func testTokens() *auth.Manager {
	return auth.NewManager(config.AuthConfig{
		Secret:     "integration-test-secret",
		TokenTTL:   time.Hour,
		CookieName: "token",
	})
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := testTokens()
	nop := zap.NewNop().Sugar()

	r := gin.New()
	userRouter.RegisterRoutes(r, db, tokens, nop)
	teamRouter.RegisterRoutes(r, db, tokens, nop)
	taskRouter.RegisterRoutes(r, db, tokens, nop)
	notificationRouter.RegisterRoutes(r, db, tokens, nop)
	searchRouter.RegisterRoutes(r, db, tokens, nop)
	return r
}

func doJSON(router *gin.Engine, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

// registerUser registers a user and returns its ID and auth cookie.
func registerUser(t *testing.T, router *gin.Engine, name, email string) (string, *http.Cookie) {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/users/register", &userModel.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "pass1234",
		Role:     "developer",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp userModel.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "register should set the auth cookie")
	return resp.ID, cookie
}

// createTeam creates a team with the given members and returns its ID.
func createTeam(t *testing.T, router *gin.Engine, cookie *http.Cookie, name string, members []string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/teams", &teamModel.CreateTeamRequest{
		Name:    name,
		Members: members,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp teamModel.TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestTaskLifecycle(t *testing.T) {
	t.Run("create task snapshots members and notifies them", func(t *testing.T) {
		db := setupDB(t)
		router := setupRouter(db)

		aliceID, aliceCookie := registerUser(t, router, "Alice", "alice@example.com")
		bobID, bobCookie := registerUser(t, router, "Bob", "bob@example.com")

		teamID := createTeam(t, router, aliceCookie, "backend", []string{aliceID, bobID})

		w := doJSON(router, http.MethodPost, "/api/tasks", &taskModel.CreateTaskRequest{
			Name:   "Ship search endpoint",
			TeamID: teamID,
			Notes:  "deploy behind the feature flag",
		}, aliceCookie)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var task taskModel.TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
		assert.Equal(t, "todo", task.Status)
		assert.ElementsMatch(t, []string{aliceID, bobID}, task.Members)

		// Bob was notified, Alice (the actor) was not.
		w = doJSON(router, http.MethodGet, "/api/users/notifications", nil, bobCookie)
		require.Equal(t, http.StatusOK, w.Code)

		var bobFeed notificationModel.ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bobFeed))
		require.Len(t, bobFeed.Notifications, 1)
		assert.Equal(t, notificationModel.TypeTaskCreated, bobFeed.Notifications[0].Type)
		assert.Equal(t, int64(1), bobFeed.UnreadCount)

		w = doJSON(router, http.MethodGet, "/api/users/notifications", nil, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)

		var aliceFeed notificationModel.ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aliceFeed))
		assert.Empty(t, aliceFeed.Notifications)
	})

	t.Run("status change notifies other members, other edits stay silent", func(t *testing.T) {
		db := setupDB(t)
		router := setupRouter(db)

		aliceID, aliceCookie := registerUser(t, router, "Alice", "alice@example.com")
		bobID, bobCookie := registerUser(t, router, "Bob", "bob@example.com")
		teamID := createTeam(t, router, aliceCookie, "backend", []string{aliceID, bobID})

		w := doJSON(router, http.MethodPost, "/api/tasks", &taskModel.CreateTaskRequest{
			Name:   "Fix flaky build",
			TeamID: teamID,
		}, aliceCookie)
		require.Equal(t, http.StatusCreated, w.Code)

		var task taskModel.TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))

		// Bob moves the task; Alice gets a task_updated notification.
		status := "inProgress"
		w = doJSON(router, http.MethodPut, "/api/tasks/"+task.ID, &taskModel.UpdateTaskRequest{
			Status: &status,
		}, bobCookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(router, http.MethodGet, "/api/users/notifications", nil, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)

		var aliceFeed notificationModel.ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aliceFeed))
		require.Len(t, aliceFeed.Notifications, 1)
		assert.Equal(t, notificationModel.TypeTaskUpdated, aliceFeed.Notifications[0].Type)
		assert.Equal(t, "todo", aliceFeed.Notifications[0].Data["oldStatus"])
		assert.Equal(t, "inProgress", aliceFeed.Notifications[0].Data["newStatus"])

		// A notes-only edit produces no new notifications.
		notes := "repro steps attached"
		w = doJSON(router, http.MethodPut, "/api/tasks/"+task.ID, &taskModel.UpdateTaskRequest{
			Notes: &notes,
		}, bobCookie)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/users/notifications", nil, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aliceFeed))
		assert.Len(t, aliceFeed.Notifications, 1)
	})

	t.Run("soft delete hides task from search, restore brings it back as todo", func(t *testing.T) {
		db := setupDB(t)
		router := setupRouter(db)

		aliceID, aliceCookie := registerUser(t, router, "Alice", "alice@example.com")
		teamID := createTeam(t, router, aliceCookie, "backend", []string{aliceID})

		w := doJSON(router, http.MethodPost, "/api/tasks", &taskModel.CreateTaskRequest{
			Name:   "Rotate credentials",
			TeamID: teamID,
		}, aliceCookie)
		require.Equal(t, http.StatusCreated, w.Code)

		var task taskModel.TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))

		w = doJSON(router, http.MethodPatch, "/api/tasks/"+task.ID, nil, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var deleted taskModel.TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
		assert.Equal(t, "deleted", deleted.Status)

		w = doJSON(router, http.MethodGet, "/api/search?q=rotate", nil, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)

		var results searchModel.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		assert.Empty(t, results.Tasks)

		w = doJSON(router, http.MethodPatch, "/api/tasks/"+task.ID+"/restore", nil, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)

		var restored taskModel.TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restored))
		assert.Equal(t, "todo", restored.Status)

		w = doJSON(router, http.MethodGet, "/api/search?q=rotate", nil, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		require.Len(t, results.Tasks, 1)
		assert.Equal(t, "backend", results.Tasks[0].TeamName)
	})
}

func TestSearchAcrossEntities(t *testing.T) {
	db := setupDB(t)
	router := setupRouter(db)

	aliceID, aliceCookie := registerUser(t, router, "Alice Deployer", "alice@example.com")
	teamID := createTeam(t, router, aliceCookie, "platform", []string{aliceID})

	w := doJSON(router, http.MethodPost, "/api/tasks", &taskModel.CreateTaskRequest{
		Name:   "Deploy staging",
		TeamID: teamID,
	}, aliceCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("matches both tasks and users", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/search?q=deploy", nil, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var results searchModel.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		require.Len(t, results.Tasks, 1)
		assert.Equal(t, "Deploy staging", results.Tasks[0].Name)
		require.Len(t, results.Users, 1)
		assert.Equal(t, "Alice Deployer", results.Users[0].Name)
	})

	t.Run("rejects short queries", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/search?q=d", nil, aliceCookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_QUERY")
	})

	t.Run("requires authentication", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/search?q=deploy", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestNotificationReadFlow(t *testing.T) {
	db := setupDB(t)
	router := setupRouter(db)

	aliceID, aliceCookie := registerUser(t, router, "Alice", "alice@example.com")
	bobID, bobCookie := registerUser(t, router, "Bob", "bob@example.com")
	teamID := createTeam(t, router, aliceCookie, "backend", []string{aliceID, bobID})

	for _, name := range []string{"Task one", "Task two"} {
		w := doJSON(router, http.MethodPost, "/api/tasks", &taskModel.CreateTaskRequest{
			Name:   name,
			TeamID: teamID,
		}, aliceCookie)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/users/notifications", nil, bobCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var feed notificationModel.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Notifications, 2)
	assert.Equal(t, int64(2), feed.UnreadCount)

	// Mark one by ID, then the rest wholesale.
	w = doJSON(router, http.MethodPut, "/api/users/read-noti?id="+feed.Notifications[0].ID, nil, bobCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/users/notifications", nil, bobCookie)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Equal(t, int64(1), feed.UnreadCount)

	w = doJSON(router, http.MethodPut, "/api/users/read-noti", nil, bobCookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/users/notifications", nil, bobCookie)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Equal(t, int64(0), feed.UnreadCount)

	// Alice cannot touch Bob's notifications.
	w = doJSON(router, http.MethodPut, "/api/users/read-noti?id="+feed.Notifications[0].ID, nil, aliceCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTeamArchiveFlow(t *testing.T) {
	db := setupDB(t)
	router := setupRouter(db)

	aliceID, aliceCookie := registerUser(t, router, "Alice", "alice@example.com")
	teamID := createTeam(t, router, aliceCookie, "backend", []string{aliceID})

	w := doJSON(router, http.MethodPatch, "/api/teams/"+teamID+"/archive", nil, aliceCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var team teamModel.TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, "archived", team.Status)
	assert.True(t, team.Deleted)

	// Archived teams leave the active list and show up in the archive.
	w = doJSON(router, http.MethodGet, "/api/teams", nil, aliceCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), teamID)

	w = doJSON(router, http.MethodGet, "/api/teams/archived", nil, aliceCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), teamID)

	w = doJSON(router, http.MethodPatch, "/api/teams/"+teamID+"/restore", nil, aliceCookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, "active", team.Status)
	assert.False(t, team.Deleted)
}
