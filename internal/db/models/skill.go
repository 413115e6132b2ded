package models

// Skill bounds, inclusive.
const (
	SkillProgressMin = 0
	SkillProgressMax = 100
)

// Skill is a competence shown as a progress bar.
type Skill struct {
	ID        uint64 `gorm:"primaryKey"                     json:"id"         form:"-"`
	Name      string `gorm:"size:50;not null"               json:"name"       form:"name"       validate:"required,max=50"`
	Progress  int    `gorm:"not null;default:0"             json:"progress"   form:"progress"   validate:"min=0,max=100"`
	Position  int    `gorm:"not null;uniqueIndex"           json:"position"   form:"position"   validate:"min=-32768,max=32767"`
	IsVisible bool   `gorm:"not null"                       json:"is_visible" form:"is_visible"`
}

// TableName specifies the database table name for the Skill model.
func (Skill) TableName() string {
	return "skills"
}

// NewSkill returns a skill with the defaults of an empty admin form.
func NewSkill() *Skill {
	return &Skill{Position: 1, IsVisible: true}
}

func (s *Skill) GetID() uint64    { return s.ID }
func (s *Skill) SetID(id uint64)  { s.ID = id }
func (*Skill) Kind() Kind         { return KindSkill }
func (s *Skill) GetPosition() int { return s.Position }
func (s *Skill) GetVisible() bool { return s.IsVisible }

// Schema returns the editable fields of a skill.
func (*Skill) Schema() Schema {
	return Schema{
		{Name: "name", Label: "Name", Input: InputText, MaxLength: 50, Required: true, Rules: "required,max=50"},
		{
			Name: "progress", Label: "Progress", Input: InputNumber, Required: true,
			Min: intPtr(SkillProgressMin), Max: intPtr(SkillProgressMax), Default: "0", Rules: "min=0,max=100",
		},
		positionField(true),
		visibleField(),
	}
}
