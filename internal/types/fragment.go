package types

// ResumeFragment is the editable-document shape produced by the schema
// normalizer. Every list item carries a stable id so the editor can track
// rows across saves; the normalizer mints ids only where they are missing.
type ResumeFragment struct {
	Personal       Personal         `json:"personal"`
	Profile        Profile          `json:"profile"`
	Education      []EducationItem  `json:"education"`
	Experience     []ExperienceItem `json:"experience"`
	Skills         []SkillItem      `json:"skills"`
	Languages      []LanguageItem   `json:"languages"`
	Interests      []InterestItem   `json:"interests"`
	CustomSections []CustomSection  `json:"customSections"`
}

// EducationItem is one editable education row.
type EducationItem struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Field       string `json:"field,omitempty"`
	City        string `json:"city,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExperienceItem is one editable experience row.
type ExperienceItem struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	City        string `json:"city,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// SkillItem is one editable skill row. Level is textual here because the
// editor renders and round-trips whatever the source said ("4", "Avancé").
type SkillItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// LanguageItem is one editable language row.
type LanguageItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// InterestItem is one editable interest row.
type InterestItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomSection is a user-defined section preserved verbatim through
// normalization and merging.
type CustomSection struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Items []CustomItem `json:"items"`
}

// CustomItem is one row of a custom section.
type CustomItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// ViewModel is the flat read-model rendered by résumé templates. It is
// rebuilt from a stored document of any historical shape; every scalar is a
// string and every absent value is "".
type ViewModel struct {
	FullName    string `json:"fullName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	JobTitle    string `json:"jobTitle"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Website     string `json:"website"`
	LinkedIn    string `json:"linkedin"`
	Nationality string `json:"nationality"`
	BirthDate   string `json:"birthDate"`
	BirthPlace  string `json:"birthPlace"`
	Driving     string `json:"driving"`
	Summary     string `json:"summary"`

	Experience     []any `json:"experience"`
	Education      []any `json:"education"`
	Skills         []any `json:"skills"`
	Languages      []any `json:"languages"`
	Interests      []any `json:"interests"`
	CustomSections []any `json:"customSections"`
}
