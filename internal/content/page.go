package content

import (
	"errors"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/webfolio/webfolio/internal/db/controller/record"
	"github.com/webfolio/webfolio/internal/db/models"
)

// Page is everything the public page renders apart from the forms.
type Page struct {
	Categories []models.ProjectCategory
	Projects   []models.Project
	Employees  []models.Employee
	Skills     []models.Skill
	FAQs       []models.FrequentlyQuestion
	Services   []models.Service
	// Info is nil while no general info exists.
	Info *models.GeneralInfo
}

// Assemble loads the visible content of the public page.
func Assemble(db *gorm.DB) (*Page, error) {
	if db == nil {
		return nil, record.ErrDBNil
	}

	var (
		page Page
		err  error
	)

	if page.Categories, err = ListVisible[models.ProjectCategory](db); err != nil {
		return nil, err
	}

	if page.Projects, err = ListVisible[models.Project](db.Preload("Category")); err != nil {
		return nil, err
	}

	if page.Employees, err = ListVisible[models.Employee](db); err != nil {
		return nil, err
	}

	if page.Skills, err = ListVisible[models.Skill](db); err != nil {
		return nil, err
	}

	if page.FAQs, err = ListVisible[models.FrequentlyQuestion](db); err != nil {
		return nil, err
	}

	if page.Services, err = ListVisible[models.Service](db); err != nil {
		return nil, err
	}

	info, err := record.First[models.GeneralInfo](db)

	switch {
	case err == nil:
		page.Info = info
	case !errors.Is(err, record.ErrNotFound):
		return nil, err
	}

	return &page, nil
}

// ProjectsOf returns the projects of category, keeping page order.
func (p *Page) ProjectsOf(categoryID uint64) []models.Project {
	return lo.Filter(p.Projects, func(pr models.Project, _ int) bool {
		return pr.CategoryID == categoryID
	})
}
