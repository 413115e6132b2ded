package models

// ProjectCategory groups projects on the public page.
type ProjectCategory struct {
	ID        uint64 `gorm:"primaryKey"                    json:"id"         form:"-"`
	Name      string `gorm:"size:50;not null;uniqueIndex"  json:"name"       form:"name"       validate:"required,max=50"`
	Slug      string `gorm:"size:50;not null;uniqueIndex"  json:"slug"       form:"slug"       validate:"required,max=50,slug"`
	Position  int    `gorm:"not null;uniqueIndex"          json:"position"   form:"position"   validate:"min=-32768,max=32767"`
	IsVisible bool   `gorm:"not null"                      json:"is_visible" form:"is_visible"`
}

// TableName specifies the database table name for the ProjectCategory model.
func (ProjectCategory) TableName() string {
	return "project_categories"
}

// NewProjectCategory returns a category with the defaults of an empty admin form.
func NewProjectCategory() *ProjectCategory {
	return &ProjectCategory{Position: 1, IsVisible: true}
}

func (c *ProjectCategory) GetID() uint64      { return c.ID }
func (c *ProjectCategory) SetID(id uint64)    { c.ID = id }
func (*ProjectCategory) Kind() Kind           { return KindCategory }
func (c *ProjectCategory) GetPosition() int   { return c.Position }
func (c *ProjectCategory) GetVisible() bool   { return c.IsVisible }
func (c *ProjectCategory) SlugSource() string { return c.Name }
func (c *ProjectCategory) GetSlug() string    { return c.Slug }
func (c *ProjectCategory) SetSlug(s string)   { c.Slug = s }

// Schema returns the editable fields of a category.
func (*ProjectCategory) Schema() Schema {
	return Schema{
		{Name: "name", Label: "Name", Input: InputText, MaxLength: 50, Required: true, Unique: true, Rules: "required,max=50"},
		{Name: "slug", Label: "Slug", Input: InputText, MaxLength: 50, Required: true, Unique: true, Rules: "required,max=50,slug"},
		positionField(true),
		visibleField(),
	}
}
