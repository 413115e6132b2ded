package models

// FrequentlyQuestion is a question/answer pair of the FAQ section.
type FrequentlyQuestion struct {
	ID        uint64 `gorm:"primaryKey"                     json:"id"         form:"-"`
	Question  string `gorm:"type:text;not null"             json:"question"   form:"question"   validate:"required"`
	Answer    string `gorm:"type:text;not null"             json:"answer"     form:"answer"     validate:"required"`
	Position  int    `gorm:"not null;uniqueIndex"           json:"position"   form:"position"   validate:"min=-32768,max=32767"`
	IsVisible bool   `gorm:"not null"                       json:"is_visible" form:"is_visible"`
}

// TableName specifies the database table name for the FrequentlyQuestion model.
func (FrequentlyQuestion) TableName() string {
	return "frequently_questions"
}

// NewFrequentlyQuestion returns a question with the defaults of an empty admin form.
func NewFrequentlyQuestion() *FrequentlyQuestion {
	return &FrequentlyQuestion{Position: 1, IsVisible: true}
}

func (q *FrequentlyQuestion) GetID() uint64    { return q.ID }
func (q *FrequentlyQuestion) SetID(id uint64)  { q.ID = id }
func (*FrequentlyQuestion) Kind() Kind         { return KindFAQ }
func (q *FrequentlyQuestion) GetPosition() int { return q.Position }
func (q *FrequentlyQuestion) GetVisible() bool { return q.IsVisible }

// Schema returns the editable fields of a question.
func (*FrequentlyQuestion) Schema() Schema {
	return Schema{
		{Name: "question", Label: "Question", Input: InputTextarea, Required: true, Rules: "required"},
		{Name: "answer", Label: "Answer", Input: InputTextarea, Required: true, Rules: "required"},
		positionField(true),
		visibleField(),
	}
}
