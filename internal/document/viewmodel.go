package document

import (
	"strings"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

// BuildViewModel projects a stored document of any historical shape into
// the flat rendering view-model. Three shapes coexist in storage: flat root
// fields, a nested "personal" object and a nested "personalInfo" object.
// Resolution per identity field: personal.<field>, then root <field>, then
// personalInfo.<field>, then empty. Pure; never mutates doc and never
// fails on malformed fields.
func BuildViewModel(doc map[string]any) types.ViewModel {
	vm := types.ViewModel{
		FirstName:   identityField(doc, "firstName"),
		LastName:    identityField(doc, "lastName"),
		Email:       identityField(doc, "email"),
		Phone:       identityField(doc, "phone"),
		Address:     identityField(doc, "address"),
		City:        identityField(doc, "city"),
		Website:     identityField(doc, "website"),
		LinkedIn:    identityField(doc, "linkedin"),
		Nationality: identityField(doc, "nationality"),
		BirthDate:   identityField(doc, "birthDate"),
		BirthPlace:  identityField(doc, "birthPlace"),
		Driving:     identityField(doc, "driving"),

		Experience:     listField(doc, "experience"),
		Education:      listField(doc, "education"),
		Skills:         listField(doc, "skills"),
		Languages:      listField(doc, "languages"),
		Interests:      listField(doc, "interests"),
		CustomSections: listField(doc, "customSections"),
	}

	vm.FullName = resolveFullName(doc, vm.FirstName, vm.LastName)
	vm.JobTitle = resolveJobTitle(doc)
	vm.Summary = resolveSummary(doc)
	return vm
}

// resolveFullName prefers an explicit full name over concatenation.
func resolveFullName(doc map[string]any, firstName, lastName string) string {
	if v := stringField(subMap(doc, "personal"), "fullName"); v != "" {
		return v
	}
	if v := stringField(doc, "fullName"); v != "" {
		return v
	}
	return strings.TrimSpace(firstName + " " + lastName)
}

func resolveJobTitle(doc map[string]any) string {
	personal := subMap(doc, "personal")
	for _, v := range []string{
		stringField(personal, "jobTitle"),
		stringField(doc, "jobTitle"),
		stringField(personal, "title"),
		stringField(doc, "targetJob"),
		stringField(doc, "title"),
	} {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveSummary(doc map[string]any) string {
	profile := subMap(doc, "profile")
	for _, v := range []string{
		stringField(profile, "summary"),
		stringField(profile, "text"),
		stringField(profile, "description"),
		stringField(doc, "profileText"),
	} {
		if v != "" {
			return v
		}
	}
	return ""
}

func identityField(doc map[string]any, field string) string {
	if v := stringField(subMap(doc, "personal"), field); v != "" {
		return v
	}
	if v := stringField(doc, field); v != "" {
		return v
	}
	return stringField(subMap(doc, "personalInfo"), field)
}

func subMap(doc map[string]any, key string) map[string]any {
	if doc == nil {
		return nil
	}
	m, _ := doc[key].(map[string]any)
	return m
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// listField passes arrays through unchanged; anything else becomes the
// empty list.
func listField(doc map[string]any, key string) []any {
	if doc == nil {
		return []any{}
	}
	if l, ok := doc[key].([]any); ok {
		return l
	}
	return []any{}
}
