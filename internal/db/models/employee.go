package models

// Employee is a team member shown on the public page.
type Employee struct {
	ID          uint64 `gorm:"primaryKey"                     json:"id"          form:"-"`
	Name        string `gorm:"size:50;not null"               json:"name"        form:"name"        validate:"required,max=50"`
	Surname     string `gorm:"size:50;not null"               json:"surname"     form:"surname"     validate:"required,max=50"`
	Appointment string `gorm:"size:50;not null"               json:"appointment" form:"appointment" validate:"required,max=50"`
	Description string `gorm:"size:500"                       json:"description" form:"description" validate:"max=500"`
	Photo       string `gorm:"size:255"                       json:"photo"       form:"-"`
	Position    int    `gorm:"not null;uniqueIndex"           json:"position"    form:"position"    validate:"min=-32768,max=32767"`
	IsVisible   bool   `gorm:"not null"                       json:"is_visible"  form:"is_visible"`
	Facebook    string `gorm:"size:255"                       json:"facebook"    form:"facebook"    validate:"omitempty,url,max=255"`
	Twitter     string `gorm:"size:255"                       json:"twitter"     form:"twitter"     validate:"omitempty,url,max=255"`
	Instagram   string `gorm:"size:255"                       json:"instagram"   form:"instagram"   validate:"omitempty,url,max=255"`
	Linkedin    string `gorm:"size:255"                       json:"linkedin"    form:"linkedin"    validate:"omitempty,url,max=255"`
}

// TableName specifies the database table name for the Employee model.
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee returns an employee with the defaults of an empty admin form.
func NewEmployee() *Employee {
	return &Employee{Position: 1, IsVisible: true}
}

// FullName joins name and surname.
func (e *Employee) FullName() string {
	return e.Name + " " + e.Surname
}

func (e *Employee) GetID() uint64         { return e.ID }
func (e *Employee) SetID(id uint64)       { e.ID = id }
func (*Employee) Kind() Kind              { return KindEmployee }
func (e *Employee) GetPosition() int      { return e.Position }
func (e *Employee) GetVisible() bool      { return e.IsVisible }
func (e *Employee) PhotoPath() string     { return e.Photo }
func (e *Employee) SetPhotoPath(s string) { e.Photo = s }

// Schema returns the editable fields of an employee.
func (*Employee) Schema() Schema {
	s := Schema{
		{Name: "name", Label: "Name", Input: InputText, MaxLength: 50, Required: true, Rules: "required,max=50"},
		{Name: "surname", Label: "Surname", Input: InputText, MaxLength: 50, Required: true, Rules: "required,max=50"},
		{Name: "appointment", Label: "Appointment", Input: InputText, MaxLength: 50, Required: true, Rules: "required,max=50"},
		{Name: "description", Label: "Description", Input: InputTextarea, MaxLength: 500, Rules: "max=500"},
		{Name: "photo", Label: "Photo", Input: InputFile},
		positionField(true),
		visibleField(),
	}

	return append(s, socialFields()...)
}
