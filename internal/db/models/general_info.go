package models

// GeneralInfo holds the company contact details.
//
// One row is expected. More rows are not prevented; the page shows the one with the lowest id.
type GeneralInfo struct {
	ID        uint64 `gorm:"primaryKey"         json:"id"        form:"-"`
	Address   string `gorm:"type:text;not null" json:"address"   form:"address"   validate:"required"`
	Phone     string `gorm:"size:50;not null"   json:"phone"     form:"phone"     validate:"required,max=50"`
	Email     string `gorm:"size:254;not null"  json:"email"     form:"email"     validate:"required,email,max=254"`
	Facebook  string `gorm:"size:255"           json:"facebook"  form:"facebook"  validate:"omitempty,url,max=255"`
	Twitter   string `gorm:"size:255"           json:"twitter"   form:"twitter"   validate:"omitempty,url,max=255"`
	Instagram string `gorm:"size:255"           json:"instagram" form:"instagram" validate:"omitempty,url,max=255"`
	Linkedin  string `gorm:"size:255"           json:"linkedin"  form:"linkedin"  validate:"omitempty,url,max=255"`
}

// TableName specifies the database table name for the GeneralInfo model.
func (GeneralInfo) TableName() string {
	return "general_infos"
}

func (g *GeneralInfo) GetID() uint64   { return g.ID }
func (g *GeneralInfo) SetID(id uint64) { g.ID = id }
func (*GeneralInfo) Kind() Kind        { return KindGeneralInfo }

// Schema returns the editable fields of the general info record.
func (*GeneralInfo) Schema() Schema {
	s := Schema{
		{Name: "address", Label: "Address", Input: InputMarkdown, Required: true, Rules: "required"},
		{Name: "phone", Label: "Phone", Input: InputText, MaxLength: 50, Required: true, Rules: "required,max=50"},
		{Name: "email", Label: "Email", Input: InputEmail, MaxLength: 254, Required: true, Rules: "required,email,max=254"},
	}

	return append(s, socialFields()...)
}
