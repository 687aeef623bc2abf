package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateLenientListDecoding(t *testing.T) {
	raw := `{
		"personal": {"firstName": "Jean"},
		"skills": ["Excel", {"name": "Go", "level": 4}],
		"languages": ["Anglais - Courant", {"name": "Français", "level": "Natif"}],
		"interests": ["Lecture", {"name": "Échecs"}]
	}`

	cand := EmptyCandidate()
	require.NoError(t, json.Unmarshal([]byte(raw), &cand))

	require.Len(t, cand.Skills, 2)
	assert.Equal(t, Skill{Name: "Excel"}, cand.Skills[0])
	assert.Equal(t, Skill{Name: "Go", Level: 4}, cand.Skills[1])

	require.Len(t, cand.Languages, 2)
	assert.Equal(t, Language{Name: "Anglais - Courant"}, cand.Languages[0])
	assert.Equal(t, Language{Name: "Français", Level: "Natif"}, cand.Languages[1])

	require.Len(t, cand.Interests, 2)
	assert.Equal(t, "Lecture", cand.Interests[0].Name)
	assert.Equal(t, "Échecs", cand.Interests[1].Name)
}

func TestEmptyCandidateRendersArrays(t *testing.T) {
	raw, err := json.Marshal(EmptyCandidate())
	require.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, `"skills":[]`)
	assert.Contains(t, s, `"education":[]`)
	assert.NotContains(t, s, "null")
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, EmptyCandidate().IsEmpty())

	c := EmptyCandidate()
	c.Personal.Email = "a@b.com"
	assert.False(t, c.IsEmpty())

	c = EmptyCandidate()
	c.Skills = append(c.Skills, Skill{Name: "Go"})
	assert.False(t, c.IsEmpty())
}
