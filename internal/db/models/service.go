package models

// Service is an offering of the company.
type Service struct {
	ID          uint64 `gorm:"primaryKey"                     json:"id"          form:"-"`
	Title       string `gorm:"size:255;not null"              json:"title"       form:"title"       validate:"required,max=255"`
	Description string `gorm:"type:text;not null"             json:"description" form:"description" validate:"required"`
	Position    int    `gorm:"not null;uniqueIndex"           json:"position"    form:"position"    validate:"min=-32768,max=32767"`
	IsVisible   bool   `gorm:"not null"                       json:"is_visible"  form:"is_visible"`
}

// TableName specifies the database table name for the Service model.
func (Service) TableName() string {
	return "services"
}

// NewService returns a service with the defaults of an empty admin form.
func NewService() *Service {
	return &Service{Position: 1, IsVisible: true}
}

func (s *Service) GetID() uint64    { return s.ID }
func (s *Service) SetID(id uint64)  { s.ID = id }
func (*Service) Kind() Kind         { return KindService }
func (s *Service) GetPosition() int { return s.Position }
func (s *Service) GetVisible() bool { return s.IsVisible }

// Schema returns the editable fields of a service.
func (*Service) Schema() Schema {
	return Schema{
		{Name: "title", Label: "Title", Input: InputText, MaxLength: 255, Required: true, Rules: "required,max=255"},
		{Name: "description", Label: "Description", Input: InputTextarea, Required: true, Rules: "required"},
		positionField(true),
		visibleField(),
	}
}
