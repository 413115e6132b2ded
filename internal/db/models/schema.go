package models

// InputType is the html input used to edit a field.
type InputType string

// Input types known to the form renderer.
const (
	InputText     InputType = "text"
	InputTextarea InputType = "textarea"
	InputMarkdown InputType = "markdown"
	InputNumber   InputType = "number"
	InputCheckbox InputType = "checkbox"
	InputEmail    InputType = "email"
	InputURL      InputType = "url"
	InputPassword InputType = "password"
	InputFile     InputType = "file"
	InputSelect   InputType = "select"
)

// Field describes one persisted field of an entity: how it is edited and which rules apply.
type Field struct {
	Name      string // form and column name
	Label     string
	Input     InputType
	MaxLength int  // 0 means unbounded
	Required  bool // blank input is rejected
	Unique    bool // backed by a unique index
	Min       *int
	Max       *int
	Default   string
	// Rules is the validator tag applied when the field is edited on its own (list inline edit).
	Rules string
}

// Schema is the ordered field list of an entity.
type Schema []Field

// Field returns the field named name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// UniqueFields returns the fields backed by a unique index.
func (s Schema) UniqueFields() []Field {
	out := make([]Field, 0, len(s))

	for _, f := range s {
		if f.Unique {
			out = append(out, f)
		}
	}

	return out
}

func intPtr(v int) *int { return &v }

// positionField and visibleField are shared by every ordered entity.
func positionField(unique bool) Field {
	return Field{
		Name: "position", Label: "Position", Input: InputNumber, Required: true,
		Unique: unique, Default: "1", Rules: "min=-32768,max=32767",
	}
}

func visibleField() Field {
	return Field{Name: "is_visible", Label: "Is visible", Input: InputCheckbox, Default: "true"}
}

func socialFields() []Field {
	return []Field{
		{Name: "facebook", Label: "Facebook", Input: InputURL, MaxLength: 255, Rules: "omitempty,url,max=255"},
		{Name: "twitter", Label: "Twitter", Input: InputURL, MaxLength: 255, Rules: "omitempty,url,max=255"},
		{Name: "instagram", Label: "Instagram", Input: InputURL, MaxLength: 255, Rules: "omitempty,url,max=255"},
		{Name: "linkedin", Label: "LinkedIn", Input: InputURL, MaxLength: 255, Rules: "omitempty,url,max=255"},
	}
}
