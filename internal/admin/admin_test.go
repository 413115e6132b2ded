package admin

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/migrate"
	"github.com/webfolio/webfolio/internal/db/models"
	"github.com/webfolio/webfolio/internal/validation"
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

func entry(t *testing.T, kind models.Kind) *Entry {
	t.Helper()

	e, ok := NewRegistry().Get(kind)
	require.True(t, ok)

	return e
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	kinds := []models.Kind{}
	for _, e := range r.Entries() {
		kinds = append(kinds, e.Kind)
		assert.NotNil(t, e.Resource, e.Kind)
		assert.Equal(t, e.Kind, e.Resource.New().Kind())

		// every configured column is a schema field or id
		schema := e.Resource.New().Schema()
		for _, c := range e.Editable {
			_, ok := schema.Field(c)
			assert.True(t, ok, "%s: editable %s not in schema", e.Kind, c)
		}
	}

	assert.ElementsMatch(t, []models.Kind{
		models.KindCategory, models.KindProject, models.KindEmployee, models.KindSkill, models.KindService,
		models.KindFAQ, models.KindGeneralInfo, models.KindMessage, models.KindSubscriber,
	}, kinds)

	_, ok := r.Get("users")
	assert.False(t, ok)

	cat := entry(t, models.KindCategory)
	assert.True(t, cat.IsEditable("name"))
	assert.False(t, cat.IsEditable("slug"))
}

func TestNewEntitiesStartVisible(t *testing.T) {
	for _, e := range NewRegistry().Entries() {
		o, ok := e.Resource.New().(models.Ordered)
		if !ok {
			continue
		}

		assert.True(t, o.GetVisible(), e.Kind)
		assert.Equal(t, 1, o.GetPosition(), e.Kind)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Web Design", 0, "web-design"},
		{"  Crème brûlée & Co.  ", 0, "creme-brulee-co"},
		{"Mobile_apps 2026", 0, "mobile_apps-2026"},
		{"a very long category name", 8, "a-very-l"},
		{"abc def", 4, "abc"},
		{"!!!", 0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in, tt.max), tt.in)
	}
}

func TestSavePrepopulatesSlug(t *testing.T) {
	db := setupTestDB(t)
	en := entry(t, models.KindCategory)
	v := validation.New()

	cat := &models.ProjectCategory{Name: "Web Design", Position: 1, IsVisible: true}
	errs, err := en.Save(db, v, cat, true)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "web-design", cat.Slug)

	stored, err := record.Get[models.ProjectCategory](db, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "web-design", stored.Slug)
}

func TestSaveKeepsExplicitSlug(t *testing.T) {
	db := setupTestDB(t)
	en := entry(t, models.KindCategory)

	cat := &models.ProjectCategory{Name: "Web Design", Slug: "web", Position: 1, IsVisible: true}
	errs, err := en.Save(db, validation.New(), cat, true)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "web", cat.Slug)

	// skill has no slug, nothing to fill
	skill := &models.Skill{Name: "Go", Progress: 10, Position: 1}
	errs, err = entry(t, models.KindSkill).Save(db, validation.New(), skill, true)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestSaveRejectsDuplicatePosition(t *testing.T) {
	db := setupTestDB(t)
	en := entry(t, models.KindSkill)
	v := validation.New()

	errs, err := en.Save(db, v, &models.Skill{Name: "Go", Progress: 50, Position: 1}, true)
	require.NoError(t, err)
	require.Empty(t, errs)

	errs, err = en.Save(db, v, &models.Skill{Name: "Rust", Progress: 50, Position: 1}, true)
	require.NoError(t, err)
	assert.Equal(t, "Skill with this Position already exists.", errs["position"])

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSaveSkillBounds(t *testing.T) {
	db := setupTestDB(t)
	en := entry(t, models.KindSkill)
	v := validation.New()

	for i, progress := range []int{0, 100} {
		errs, err := en.Save(db, v, &models.Skill{Name: "ok", Progress: progress, Position: i + 1}, true)
		require.NoError(t, err)
		assert.Empty(t, errs)
	}

	for i, progress := range []int{-1, 101} {
		errs, err := en.Save(db, v, &models.Skill{Name: "bad", Progress: progress, Position: i + 10}, true)
		require.NoError(t, err)
		assert.Contains(t, errs, "progress")
	}
}

func TestSaveProjectUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	en := entry(t, models.KindProject)

	errs, err := en.Save(db, validation.New(), &models.Project{Name: "Shop", CategoryID: 42, Position: 1}, true)
	require.NoError(t, err)
	assert.Equal(t, MsgInvalidChoice, errs["category_id"])
}

func TestUpdateKeepsOwnUniqueValues(t *testing.T) {
	db := setupTestDB(t)
	en := entry(t, models.KindCategory)
	v := validation.New()

	cat := &models.ProjectCategory{Name: "Web", Slug: "web", Position: 1}
	_, err := en.Save(db, v, cat, true)
	require.NoError(t, err)

	cat.IsVisible = true
	errs, err := en.Save(db, v, cat, false)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestListFilters(t *testing.T) {
	db := setupTestDB(t)

	web := models.ProjectCategory{Name: "Web", Slug: "web", Position: 1, IsVisible: true}
	apps := models.ProjectCategory{Name: "Apps", Slug: "apps", Position: 2, IsVisible: true}
	require.NoError(t, record.Create(db, &web))
	require.NoError(t, record.Create(db, &apps))
	require.NoError(t, record.Create(db, &models.Project{Name: "A", Slug: "a", CategoryID: web.ID, Position: 2, IsVisible: true}))
	require.NoError(t, record.Create(db, &models.Project{Name: "B", Slug: "b", CategoryID: web.ID, Position: 1}))
	require.NoError(t, record.Create(db, &models.Project{Name: "C", Slug: "c", CategoryID: apps.ID, Position: 3, IsVisible: true}))

	en := entry(t, models.KindProject)

	all, err := en.List(db, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "B", all[0].(*models.Project).Name)
	assert.Equal(t, "Web", all[0].(*models.Project).Category.Name)
	assert.Equal(t, "Web", Strings(all[0])["category"])

	visible, err := en.List(db, map[string]string{"is_visible": "true"})
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	inWeb, err := en.List(db, map[string]string{"category_id": "1", "is_visible": "true"})
	require.NoError(t, err)
	require.Len(t, inWeb, 1)
	assert.Equal(t, "A", inWeb[0].(*models.Project).Name)

	ignored, err := en.List(db, map[string]string{"category_id": "x", "slug": "a"})
	require.NoError(t, err)
	assert.Len(t, ignored, 3)
}

func TestListMessagesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	for i, name := range []string{"old", "new", "mid"} {
		offset := map[int]time.Duration{0: -2 * time.Hour, 1: 0, 2: -time.Hour}[i]
		require.NoError(t, record.Create(db, &models.Message{
			Name: name, Email: "a@example.com", Subject: "s", Message: "m", CreatedAt: now.Add(offset),
		}))
	}

	rows, err := entry(t, models.KindMessage).List(db, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "new", rows[0].(*models.Message).Name)
	assert.Equal(t, "mid", rows[1].(*models.Message).Name)
	assert.Equal(t, "old", rows[2].(*models.Message).Name)
}

func TestInline(t *testing.T) {
	db := setupTestDB(t)
	en := entry(t, models.KindCategory)
	v := validation.New()

	require.NoError(t, record.Create(db, &models.ProjectCategory{Name: "Web", Slug: "web", Position: 1, IsVisible: true}))
	require.NoError(t, record.Create(db, &models.ProjectCategory{Name: "Apps", Slug: "apps", Position: 2, IsVisible: true}))

	t.Run("updates editable fields", func(t *testing.T) {
		errs, err := en.Inline(db, v, 1, map[string]string{"name": "Websites", "position": "5"})
		require.NoError(t, err)
		assert.Empty(t, errs)

		cat, err := record.Get[models.ProjectCategory](db, 1)
		require.NoError(t, err)
		assert.Equal(t, "Websites", cat.Name)
		assert.Equal(t, 5, cat.Position)
		assert.False(t, cat.IsVisible, "absent checkbox means unchecked")
	})

	t.Run("duplicate position", func(t *testing.T) {
		errs, err := en.Inline(db, v, 1, map[string]string{"name": "Websites", "position": "2", "is_visible": "on"})
		require.NoError(t, err)
		assert.Equal(t, "Project category with this Position already exists.", errs["position"])

		cat, err := record.Get[models.ProjectCategory](db, 1)
		require.NoError(t, err)
		assert.Equal(t, 5, cat.Position)
		assert.False(t, cat.IsVisible, "nothing written on error")
	})

	t.Run("not a number", func(t *testing.T) {
		errs, err := en.Inline(db, v, 1, map[string]string{"name": "Websites", "position": "x"})
		require.NoError(t, err)
		assert.Equal(t, validation.MsgInvalidNumber, errs["position"])
	})

	t.Run("out of range", func(t *testing.T) {
		errs, err := en.Inline(db, v, 1, map[string]string{"name": "Websites", "position": "40000"})
		require.NoError(t, err)
		assert.Contains(t, errs, "position")
	})

	t.Run("slug not editable", func(t *testing.T) {
		errs, err := en.Inline(db, v, 1, map[string]string{"name": "Websites", "position": "5", "slug": "x"})
		require.NoError(t, err)
		assert.Equal(t, MsgNotEditable, errs["slug"])
	})

	t.Run("missing row", func(t *testing.T) {
		_, err := en.Inline(db, v, 99, map[string]string{"name": "x"})
		require.ErrorIs(t, err, record.ErrNotFound)
	})
}

func TestDeleteProtected(t *testing.T) {
	db := setupTestDB(t)

	cat := models.ProjectCategory{Name: "Web", Slug: "web", Position: 1}
	require.NoError(t, record.Create(db, &cat))
	require.NoError(t, record.Create(db, &models.Project{Name: "A", Slug: "a", CategoryID: cat.ID, Position: 1}))

	errs, err := entry(t, models.KindCategory).Delete(db, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, MsgProtected, errs.NonField())

	errs, err = entry(t, models.KindProject).Delete(db, 1)
	require.NoError(t, err)
	assert.Empty(t, errs)

	errs, err = entry(t, models.KindCategory).Delete(db, cat.ID)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValuesAndFormat(t *testing.T) {
	p := &models.Project{ID: 3, Name: "Shop", IsVisible: true, Position: 2, CategoryID: 1}

	vals := Values(p)
	assert.Equal(t, int64(3), vals["id"])
	assert.Equal(t, true, vals["is_visible"])

	str := Strings(p)
	assert.Equal(t, "2", str["position"])
	assert.Equal(t, "true", str["is_visible"])
	assert.Equal(t, "Shop", str["name"])

	assert.Equal(t, "2026-01-02 03:04", Format("2026-01-02T03:04:05Z"))
	assert.Empty(t, Format(nil))
}

func TestResourceWrongKind(t *testing.T) {
	db := setupTestDB(t)

	err := entry(t, models.KindSkill).Resource.Create(db, &models.Service{})
	require.ErrorIs(t, err, ErrWrongKind)
}

func TestBind(t *testing.T) {
	t.Run("typed values", func(t *testing.T) {
		p := &models.Project{ID: 4, Photo: "projects/a.png", IsVisible: true}

		errs := Bind(p, map[string]string{
			"name": "Shop", "slug": "", "description": "**bold**",
			"category_id": "2", "position": "3",
		})
		require.Empty(t, errs)
		assert.Equal(t, "Shop", p.Name)
		assert.Equal(t, uint64(2), p.CategoryID)
		assert.Equal(t, 3, p.Position)
		assert.False(t, p.IsVisible, "absent checkbox unchecks")
		assert.Equal(t, uint64(4), p.ID)
		assert.Equal(t, "projects/a.png", p.Photo, "file fields are not bound")
	})

	t.Run("bad numbers", func(t *testing.T) {
		p := &models.Project{}

		errs := Bind(p, map[string]string{"name": "Shop", "category_id": "web", "position": "x"})
		assert.Equal(t, MsgInvalidChoice, errs["category_id"])
		assert.Equal(t, validation.MsgInvalidNumber, errs["position"])
		assert.Equal(t, "Shop", p.Name)
	})

	t.Run("required number", func(t *testing.T) {
		errs := Bind(&models.ProjectCategory{}, map[string]string{"name": "Web", "position": ""})
		assert.Equal(t, validation.MsgRequired, errs["position"])
	})

	t.Run("checkbox on", func(t *testing.T) {
		c := &models.ProjectCategory{}
		require.Empty(t, Bind(c, map[string]string{"name": "Web", "position": "1", "is_visible": "on"}))
		assert.True(t, c.IsVisible)
	})
}
