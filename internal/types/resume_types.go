package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RawDocument is one uploaded file as handed over by the upload boundary.
// It lives for the duration of a single extraction request.
type RawDocument struct {
	Data     []byte
	Filename string
	MIME     string
}

// Personal carries the identity block of a structured candidate.
// All fields are optional; absence is the empty string, never null.
type Personal struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	JobTitle    string `json:"jobTitle,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Website     string `json:"website,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	BirthPlace  string `json:"birthPlace,omitempty"`
	Driving     string `json:"driving,omitempty"`

	// Phones keeps every phone-looking match found in the source text;
	// Phone above is always the first of them.
	Phones []string `json:"phones,omitempty"`
}

// Profile is the free-text summary block.
type Profile struct {
	Summary string `json:"summary,omitempty"`
}

// EducationEntry is one education line of a candidate.
// StartDate/EndDate are ISO dates (YYYY-MM-DD, YYYY-MM or YYYY); Period holds
// the raw textual range when the source could not be split into machine dates
// (the heuristic path never attempts that split).
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	School      string `json:"school,omitempty"`
	Field       string `json:"field,omitempty"`
	City        string `json:"city,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExperienceEntry is one work-experience line of a candidate. Newlines in
// Description separate bullets: one line, one bullet.
type ExperienceEntry struct {
	JobTitle    string `json:"jobTitle,omitempty"`
	Company     string `json:"company,omitempty"`
	City        string `json:"city,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill is one skill with an optional 1..5 proficiency level (0 = absent).
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level,omitempty"`
}

// UnmarshalJSON tolerates the bare-string form ("Excel") some producers
// emit instead of the object form; the raw string goes into Name and the
// schema normalizer later splits a trailing level out of it.
func (s *Skill) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		s.Name = name
		s.Level = 0
		return nil
	}
	type plain Skill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Skill(p)
	return nil
}

// Language is one spoken language with an optional textual level from the
// fixed vocabulary (Débutant, Intermédiaire, Courant, Bilingue, Natif).
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// UnmarshalJSON tolerates the bare-string form ("Anglais - Courant").
func (l *Language) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		l.Name = name
		l.Level = ""
		return nil
	}
	type plain Language
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Language(p)
	return nil
}

// Interest is one interest/hobby entry.
type Interest struct {
	Name string `json:"name"`
}

// UnmarshalJSON tolerates the bare-string form.
func (i *Interest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		i.Name = name
		return nil
	}
	type plain Interest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = Interest(p)
	return nil
}

// StructuredCandidate is one extractor's best-effort structured guess at a
// résumé's content. It is always a valid, renderable object: a candidate
// with no contact info and no list entries is the canonical empty result,
// never nil.
type StructuredCandidate struct {
	Personal   Personal          `json:"personal"`
	Profile    Profile           `json:"profile"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []Skill           `json:"skills"`
	Languages  []Language        `json:"languages"`
	Interests  []Interest        `json:"interests"`
}

// EmptyCandidate returns the canonical empty result with non-nil lists so
// the wire form renders arrays, not nulls.
func EmptyCandidate() StructuredCandidate {
	return StructuredCandidate{
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
		Skills:     []Skill{},
		Languages:  []Language{},
		Interests:  []Interest{},
	}
}

// IsEmpty reports whether the candidate carries neither contact info nor a
// single list entry.
func (c StructuredCandidate) IsEmpty() bool {
	if strings.TrimSpace(c.Personal.Email) != "" || strings.TrimSpace(c.Personal.Phone) != "" {
		return false
	}
	if strings.TrimSpace(c.Personal.FirstName) != "" || strings.TrimSpace(c.Personal.LastName) != "" {
		return false
	}
	return len(c.Education) == 0 && len(c.Experience) == 0 &&
		len(c.Skills) == 0 && len(c.Languages) == 0 && len(c.Interests) == 0
}
