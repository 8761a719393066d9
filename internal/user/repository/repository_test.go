package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	userModel "github.com/BaltasisKos/Task-Manager-Server/internal/user/model"
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

func (testUser) TableName() string {
	return "users"
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&testUser{})
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, u testUser) {
	require.NoError(t, db.Create(&u).Error)
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &userModel.User{
			Name:     "Alice",
			Role:     "developer",
			Email:    "alice@example.com",
			Password: "hash",
			IsActive: true,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		var dbUser testUser
		require.NoError(t, db.Where("email = ?", "alice@example.com").First(&dbUser).Error)
		assert.Equal(t, created.ID, dbUser.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedUser(t, db, testUser{ID: "u1", Name: "Alice", Role: "developer", Email: "alice@example.com", Password: "hash"})

		created, err := repo.Create(ctx, &userModel.User{
			Name:     "Other Alice",
			Role:     "developer",
			Email:    "alice@example.com",
			Password: "hash",
		})

		assert.Nil(t, created)
		assert.ErrorIs(t, err, userModel.ErrEmailExists)
	})

	t.Run("keeps provided ID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &userModel.User{
			ID:       "fixed-id",
			Name:     "Bob",
			Role:     "developer",
			Email:    "bob@example.com",
			Password: "hash",
		})

		require.NoError(t, err)
		assert.Equal(t, "fixed-id", created.ID)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedUser(t, db, testUser{ID: "u1", Name: "Alice", Role: "developer", Email: "alice@example.com", Password: "hash", IsActive: true})

		user, err := repo.GetByID(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.True(t, user.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		user, err := repo.GetByID(ctx, "missing")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, userModel.ErrUserNotFound)
	})
}

func TestRepository_GetByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching users sorted by name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedUser(t, db, testUser{ID: "u1", Name: "Charlie", Role: "developer", Email: "charlie@example.com", Password: "hash"})
		seedUser(t, db, testUser{ID: "u2", Name: "Alice", Role: "developer", Email: "alice@example.com", Password: "hash"})
		seedUser(t, db, testUser{ID: "u3", Name: "Bob", Role: "developer", Email: "bob@example.com", Password: "hash"})

		users, err := repo.GetByIDs(ctx, []string{"u1", "u2"})

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Alice", users[0].Name)
		assert.Equal(t, "Charlie", users[1].Name)
	})

	t.Run("empty input returns empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		users, err := repo.GetByIDs(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedUser(t, db, testUser{ID: "u1", Name: "Alice", Role: "developer", Email: "alice@example.com", Password: "hash"})

		user, err := repo.GetByEmail(ctx, "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, userModel.ErrUserNotFound)
	})
}

func TestRepository_UpdateIsActive(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedUser(t, db, testUser{ID: "u1", Name: "Alice", Role: "developer", Email: "alice@example.com", Password: "hash", IsActive: true})

		user, err := repo.UpdateIsActive(ctx, "u1", false)

		require.NoError(t, err)
		assert.False(t, user.IsActive)

		var dbUser testUser
		require.NoError(t, db.Where("id = ?", "u1").First(&dbUser).Error)
		assert.False(t, dbUser.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		user, err := repo.UpdateIsActive(ctx, "missing", false)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, userModel.ErrUserNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedUser(t, db, testUser{ID: "u1", Name: "Alice", Role: "developer", Email: "alice@example.com", Password: "hash"})

		err := repo.Delete(ctx, "u1")

		require.NoError(t, err)

		var count int64
		db.Model(&testUser{}).Where("id = ?", "u1").Count(&count)
		assert.Zero(t, count)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		err := repo.Delete(ctx, "missing")

		assert.ErrorIs(t, err, userModel.ErrUserNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all users sorted by name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)
		seedUser(t, db, testUser{ID: "u1", Name: "Bob", Role: "developer", Email: "bob@example.com", Password: "hash"})
		seedUser(t, db, testUser{ID: "u2", Name: "Alice", Role: "manager", Email: "alice@example.com", Password: "hash"})

		users, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Alice", users[0].Name)
		assert.Equal(t, "Bob", users[1].Name)
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		users, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}
