package content

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/migrate"
	"github.com/webfolio/webfolio/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrate.Up(db))

	return db
}

func TestListVisible(t *testing.T) {
	db := setupTestDB(t)

	for i, visible := range []bool{true, false, true, false, true} {
		require.NoError(t, record.Create(db, &models.Skill{
			Name:      "skill",
			Position:  5 - i,
			IsVisible: visible,
		}))
	}

	skills, err := ListVisible[models.Skill](db)
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, 1, skills[0].Position)
	assert.Equal(t, 3, skills[1].Position)
	assert.Equal(t, 5, skills[2].Position)
}

func TestAssemble(t *testing.T) {
	db := setupTestDB(t)

	web := models.ProjectCategory{Name: "Web", Slug: "web", Position: 2, IsVisible: true}
	app := models.ProjectCategory{Name: "Apps", Slug: "apps", Position: 1, IsVisible: true}
	hidden := models.ProjectCategory{Name: "Old", Slug: "old", Position: 3}

	require.NoError(t, record.Create(db, &web))
	require.NoError(t, record.Create(db, &app))
	require.NoError(t, record.Create(db, &hidden))
	require.NoError(t, record.Create(db, &models.Project{Name: "Shop", Slug: "shop", CategoryID: web.ID, Position: 1, IsVisible: true}))
	require.NoError(t, record.Create(db, &models.Project{Name: "Draft", Slug: "draft", CategoryID: web.ID, Position: 2}))
	require.NoError(t, record.Create(db, &models.Employee{Name: "Ann", Surname: "Lee", Appointment: "CEO", Position: 1, IsVisible: true}))
	require.NoError(t, record.Create(db, &models.Service{Title: "Design", Description: "d", Position: 1, IsVisible: true}))
	require.NoError(t, record.Create(db, &models.FrequentlyQuestion{Question: "q", Answer: "a", Position: 1}))
	require.NoError(t, record.Create(db, &models.GeneralInfo{Address: "Main st", Phone: "1", Email: "info@example.com"}))

	page, err := Assemble(db)
	require.NoError(t, err)

	require.Len(t, page.Categories, 2)
	assert.Equal(t, "Apps", page.Categories[0].Name)
	assert.Equal(t, "Web", page.Categories[1].Name)

	require.Len(t, page.Projects, 1)
	assert.Equal(t, "Web", page.Projects[0].Category.Name)
	assert.Len(t, page.ProjectsOf(web.ID), 1)
	assert.Empty(t, page.ProjectsOf(app.ID))

	assert.Len(t, page.Employees, 1)
	assert.Len(t, page.Services, 1)
	assert.Empty(t, page.FAQs)
	assert.Empty(t, page.Skills)

	require.NotNil(t, page.Info)
	assert.Equal(t, "Main st", page.Info.Address)
}

func TestAssembleWithoutGeneralInfo(t *testing.T) {
	db := setupTestDB(t)

	page, err := Assemble(db)
	require.NoError(t, err)
	assert.Nil(t, page.Info)
	assert.Empty(t, page.Categories)
}

func TestAssembleNilDB(t *testing.T) {
	_, err := Assemble(nil)
	require.ErrorIs(t, err, record.ErrDBNil)
}
