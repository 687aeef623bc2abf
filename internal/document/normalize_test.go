package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

func TestNormalizeAssignsIDs(t *testing.T) {
	cand := types.EmptyCandidate()
	cand.Skills = []types.Skill{{Name: "Go"}, {Name: "SQL"}}
	cand.Experience = []types.ExperienceEntry{{JobTitle: "Développeur", Company: "Acme"}}

	frag := Normalize(cand)

	require.Len(t, frag.Skills, 2)
	assert.NotEmpty(t, frag.Skills[0].ID)
	assert.NotEmpty(t, frag.Skills[1].ID)
	assert.NotEqual(t, frag.Skills[0].ID, frag.Skills[1].ID)
	require.Len(t, frag.Experience, 1)
	assert.NotEmpty(t, frag.Experience[0].ID)
}

func TestNormalizeSplitsBareLanguageStrings(t *testing.T) {
	cand := types.EmptyCandidate()
	cand.Languages = []types.Language{{Name: "English - Fluent"}, {Name: "Python"}}

	frag := Normalize(cand)

	require.Len(t, frag.Languages, 2)
	assert.Equal(t, "English", frag.Languages[0].Name)
	assert.Equal(t, "Fluent", frag.Languages[0].Level)
	assert.Equal(t, "Python", frag.Languages[1].Name)
	assert.Empty(t, frag.Languages[1].Level)
}

func TestNormalizeSplitsOnAllSeparators(t *testing.T) {
	cand := types.EmptyCandidate()
	cand.Skills = []types.Skill{
		{Name: "Excel : Avancé"},
		{Name: "Word | Intermédiaire"},
		{Name: "Photoshop – Débutant"},
	}

	frag := Normalize(cand)

	require.Len(t, frag.Skills, 3)
	assert.Equal(t, "Excel", frag.Skills[0].Name)
	assert.Equal(t, "Avancé", frag.Skills[0].Level)
	assert.Equal(t, "Word", frag.Skills[1].Name)
	assert.Equal(t, "Intermédiaire", frag.Skills[1].Level)
	assert.Equal(t, "Photoshop", frag.Skills[2].Name)
	assert.Equal(t, "Débutant", frag.Skills[2].Level)
}

func TestNormalizeKeepsNumericSkillLevels(t *testing.T) {
	cand := types.EmptyCandidate()
	cand.Skills = []types.Skill{{Name: "Go", Level: 4}}

	frag := Normalize(cand)

	require.Len(t, frag.Skills, 1)
	assert.Equal(t, "Go", frag.Skills[0].Name)
	assert.Equal(t, "4", frag.Skills[0].Level)
}

func TestNormalizeDropsEmptyEntries(t *testing.T) {
	cand := types.EmptyCandidate()
	cand.Education = []types.EducationEntry{
		{Degree: "Master"},
		{City: "Dakar"}, // no degree, school or field
		{},
	}
	cand.Skills = []types.Skill{{Name: "  "}, {Name: "Go"}}

	frag := Normalize(cand)

	require.Len(t, frag.Education, 1)
	assert.Equal(t, "Master", frag.Education[0].Degree)
	require.Len(t, frag.Skills, 1)
	assert.Equal(t, "Go", frag.Skills[0].Name)
}

func TestNormalizeTrimsStrings(t *testing.T) {
	cand := types.EmptyCandidate()
	cand.Personal.FirstName = "  Jean "
	cand.Personal.Email = " jean@mail.com "
	cand.Profile.Summary = " Développeur motivé.  "

	frag := Normalize(cand)

	assert.Equal(t, "Jean", frag.Personal.FirstName)
	assert.Equal(t, "jean@mail.com", frag.Personal.Email)
	assert.Equal(t, "Développeur motivé.", frag.Profile.Summary)
}

func TestNormalizeIdempotent(t *testing.T) {
	cand := types.EmptyCandidate()
	cand.Personal.FirstName = " Jean"
	cand.Skills = []types.Skill{{Name: "Go", Level: 4}, {Name: "SQL"}}
	cand.Languages = []types.Language{{Name: "Anglais - Courant"}}
	cand.Education = []types.EducationEntry{{Degree: "Master", Period: "2016-2018"}}

	once := Normalize(cand)
	twice := NormalizeFragment(once)

	// No value changes and no new ids on the second pass.
	assert.Equal(t, once, twice)
}

func TestNormalizeEmptyCandidate(t *testing.T) {
	frag := Normalize(types.EmptyCandidate())

	assert.NotNil(t, frag.Education)
	assert.NotNil(t, frag.Experience)
	assert.NotNil(t, frag.Skills)
	assert.NotNil(t, frag.Languages)
	assert.NotNil(t, frag.Interests)
	assert.Empty(t, frag.Skills)
}

func TestMergeScalarsAndLists(t *testing.T) {
	existing := NormalizeFragment(types.ResumeFragment{
		Personal: types.Personal{FirstName: "Jean", City: "Dakar"},
		Profile:  types.Profile{Summary: "Ancien résumé"},
		Skills:   []types.SkillItem{{Name: "Excel"}},
		Languages: []types.LanguageItem{
			{Name: "Français", Level: "Natif"},
		},
	})
	incoming := NormalizeFragment(types.ResumeFragment{
		Personal: types.Personal{FirstName: "Jean-Marc", Email: "jm@mail.com"},
		Skills:   []types.SkillItem{{Name: "Go"}, {Name: "SQL"}},
	})

	merged := Merge(existing, incoming)

	// Incoming scalars win when defined; existing survive otherwise.
	assert.Equal(t, "Jean-Marc", merged.Personal.FirstName)
	assert.Equal(t, "jm@mail.com", merged.Personal.Email)
	assert.Equal(t, "Dakar", merged.Personal.City)
	assert.Equal(t, "Ancien résumé", merged.Profile.Summary)

	// Non-empty incoming lists replace wholesale; empty ones keep existing.
	require.Len(t, merged.Skills, 2)
	assert.Equal(t, "Go", merged.Skills[0].Name)
	require.Len(t, merged.Languages, 1)
	assert.Equal(t, "Français", merged.Languages[0].Name)
}
