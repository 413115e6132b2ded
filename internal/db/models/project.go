package models

// Project is a portfolio entry belonging to a category.
type Project struct {
	ID          uint64          `gorm:"primaryKey;uniqueIndex:idx_projects_id_slug,priority:1" json:"id"          form:"-"`
	Name        string          `gorm:"size:75;not null"                                       json:"name"        form:"name"        validate:"required,max=75"`
	Slug        string          `gorm:"size:75;not null;index;uniqueIndex:idx_projects_id_slug,priority:2" json:"slug" form:"slug" validate:"required,max=75,slug"`
	Description string          `gorm:"type:text"                                              json:"description" form:"description"`
	Photo       string          `gorm:"size:255"                                               json:"photo"       form:"-"`
	IsVisible   bool            `gorm:"not null"                                               json:"is_visible"  form:"is_visible"`
	Position    int             `gorm:"not null"                                               json:"position"    form:"position"    validate:"min=-32768,max=32767"`
	CategoryID  uint64          `gorm:"not null;index"                                         json:"category_id" form:"category_id" validate:"required"`
	Category    ProjectCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE" json:"category" form:"-" validate:"-"`
}

// TableName specifies the database table name for the Project model.
func (Project) TableName() string {
	return "projects"
}

// NewProject returns a project with the defaults of an empty admin form.
func NewProject() *Project {
	return &Project{Position: 1, IsVisible: true}
}

func (p *Project) GetID() uint64         { return p.ID }
func (p *Project) SetID(id uint64)       { p.ID = id }
func (*Project) Kind() Kind              { return KindProject }
func (p *Project) GetPosition() int      { return p.Position }
func (p *Project) GetVisible() bool      { return p.IsVisible }
func (p *Project) PhotoPath() string     { return p.Photo }
func (p *Project) SetPhotoPath(s string) { p.Photo = s }
func (p *Project) SlugSource() string    { return p.Name }
func (p *Project) GetSlug() string       { return p.Slug }
func (p *Project) SetSlug(s string)      { p.Slug = s }

// Schema returns the editable fields of a project.
func (*Project) Schema() Schema {
	return Schema{
		{Name: "name", Label: "Name", Input: InputText, MaxLength: 75, Required: true, Rules: "required,max=75"},
		{Name: "slug", Label: "Slug", Input: InputText, MaxLength: 75, Required: true, Rules: "required,max=75,slug"},
		{Name: "description", Label: "Description", Input: InputMarkdown},
		{Name: "photo", Label: "Photo", Input: InputFile},
		{Name: "category_id", Label: "Category", Input: InputSelect, Required: true, Rules: "required"},
		positionField(false),
		visibleField(),
	}
}
