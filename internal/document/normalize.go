// Package document maps raw extraction output into the editable-document
// shape and reconciles historically-shaped documents into the flat
// view-model used for rendering.
package document

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

// levelSeparators split a bare "name - level" string into its two halves.
var levelSeparators = []string{"–", "-", ":", "|"}

// Normalize maps a structured candidate into an editable-document fragment
// with ids on every list item.
func Normalize(c types.StructuredCandidate) types.ResumeFragment {
	return NormalizeFragment(fromCandidate(c))
}

// NormalizeFragment trims strings, splits bare name/level values, drops
// entries that are empty across their significant fields and mints ids for
// items that lack one. Idempotent: running it on its own output changes
// nothing and mints no new ids.
func NormalizeFragment(f types.ResumeFragment) types.ResumeFragment {
	out := types.ResumeFragment{
		Personal:       trimPersonal(f.Personal),
		Profile:        types.Profile{Summary: strings.TrimSpace(f.Profile.Summary)},
		Education:      []types.EducationItem{},
		Experience:     []types.ExperienceItem{},
		Skills:         []types.SkillItem{},
		Languages:      []types.LanguageItem{},
		Interests:      []types.InterestItem{},
		CustomSections: []types.CustomSection{},
	}

	for _, e := range f.Education {
		e.Degree = strings.TrimSpace(e.Degree)
		e.School = strings.TrimSpace(e.School)
		e.Field = strings.TrimSpace(e.Field)
		e.City = strings.TrimSpace(e.City)
		e.StartDate = strings.TrimSpace(e.StartDate)
		e.EndDate = strings.TrimSpace(e.EndDate)
		e.Period = strings.TrimSpace(e.Period)
		e.Description = strings.TrimSpace(e.Description)
		if e.Degree == "" && e.School == "" && e.Field == "" {
			continue
		}
		e.ID = ensureID(e.ID)
		out.Education = append(out.Education, e)
	}

	for _, e := range f.Experience {
		e.JobTitle = strings.TrimSpace(e.JobTitle)
		e.Company = strings.TrimSpace(e.Company)
		e.City = strings.TrimSpace(e.City)
		e.StartDate = strings.TrimSpace(e.StartDate)
		e.EndDate = strings.TrimSpace(e.EndDate)
		e.Period = strings.TrimSpace(e.Period)
		e.Description = strings.TrimSpace(e.Description)
		if e.JobTitle == "" && e.Company == "" {
			continue
		}
		e.ID = ensureID(e.ID)
		out.Experience = append(out.Experience, e)
	}

	for _, s := range f.Skills {
		s.Name = strings.TrimSpace(s.Name)
		s.Level = strings.TrimSpace(s.Level)
		if s.Level == "" {
			s.Name, s.Level = splitNameLevel(s.Name)
		}
		if s.Name == "" {
			continue
		}
		s.ID = ensureID(s.ID)
		out.Skills = append(out.Skills, s)
	}

	for _, l := range f.Languages {
		l.Name = strings.TrimSpace(l.Name)
		l.Level = strings.TrimSpace(l.Level)
		if l.Level == "" {
			l.Name, l.Level = splitNameLevel(l.Name)
		}
		if l.Name == "" {
			continue
		}
		l.ID = ensureID(l.ID)
		out.Languages = append(out.Languages, l)
	}

	for _, i := range f.Interests {
		i.Name = strings.TrimSpace(i.Name)
		if i.Name == "" {
			continue
		}
		i.ID = ensureID(i.ID)
		out.Interests = append(out.Interests, i)
	}

	for _, cs := range f.CustomSections {
		cs.Title = strings.TrimSpace(cs.Title)
		cs.ID = ensureID(cs.ID)
		items := make([]types.CustomItem, 0, len(cs.Items))
		for _, item := range cs.Items {
			item.ID = ensureID(item.ID)
			items = append(items, item)
		}
		cs.Items = items
		out.CustomSections = append(out.CustomSections, cs)
	}

	return out
}

// fromCandidate converts the extraction shape into fragment items with
// empty ids; NormalizeFragment fills those in.
func fromCandidate(c types.StructuredCandidate) types.ResumeFragment {
	f := types.ResumeFragment{
		Personal: c.Personal,
		Profile:  c.Profile,
	}

	for _, e := range c.Education {
		f.Education = append(f.Education, types.EducationItem{
			Degree:      e.Degree,
			School:      e.School,
			Field:       e.Field,
			City:        e.City,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Period:      e.Period,
			Description: e.Description,
		})
	}
	for _, e := range c.Experience {
		f.Experience = append(f.Experience, types.ExperienceItem{
			JobTitle:    e.JobTitle,
			Company:     e.Company,
			City:        e.City,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Period:      e.Period,
			Description: e.Description,
		})
	}
	for _, s := range c.Skills {
		item := types.SkillItem{Name: s.Name}
		if s.Level > 0 {
			item.Level = strconv.Itoa(s.Level)
		}
		f.Skills = append(f.Skills, item)
	}
	for _, l := range c.Languages {
		f.Languages = append(f.Languages, types.LanguageItem{Name: l.Name, Level: l.Level})
	}
	for _, i := range c.Interests {
		f.Interests = append(f.Interests, types.InterestItem{Name: i.Name})
	}
	return f
}

func trimPersonal(p types.Personal) types.Personal {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.JobTitle = strings.TrimSpace(p.JobTitle)
	p.Address = strings.TrimSpace(p.Address)
	p.City = strings.TrimSpace(p.City)
	p.Website = strings.TrimSpace(p.Website)
	p.LinkedIn = strings.TrimSpace(p.LinkedIn)
	p.Nationality = strings.TrimSpace(p.Nationality)
	p.BirthDate = strings.TrimSpace(p.BirthDate)
	p.BirthPlace = strings.TrimSpace(p.BirthPlace)
	p.Driving = strings.TrimSpace(p.Driving)
	return p
}

func ensureID(id string) string {
	if strings.TrimSpace(id) != "" {
		return id
	}
	return uuid.NewString()
}

// splitNameLevel splits "English - Fluent" into ("English", "Fluent"). When
// no separator is present, or one side would be empty, the whole string is
// the name.
func splitNameLevel(s string) (name, level string) {
	for _, sep := range levelSeparators {
		idx := strings.Index(s, sep)
		if idx < 0 {
			continue
		}
		left := strings.TrimSpace(s[:idx])
		right := strings.TrimSpace(s[idx+len(sep):])
		if left == "" || right == "" {
			continue
		}
		return left, right
	}
	return strings.TrimSpace(s), ""
}
