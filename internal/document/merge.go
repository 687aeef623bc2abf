package document

import "github.com/juniordjimbi1/africacvpro-sub000/internal/types"

// Merge combines an imported fragment into an existing draft. Scalars from
// incoming win when non-empty; lists replace wholesale when the incoming
// list is non-empty, otherwise the existing list is kept. Neither input is
// mutated.
func Merge(existing, incoming types.ResumeFragment) types.ResumeFragment {
	out := existing

	out.Personal = mergePersonal(existing.Personal, incoming.Personal)
	if incoming.Profile.Summary != "" {
		out.Profile.Summary = incoming.Profile.Summary
	}

	if len(incoming.Education) > 0 {
		out.Education = incoming.Education
	}
	if len(incoming.Experience) > 0 {
		out.Experience = incoming.Experience
	}
	if len(incoming.Skills) > 0 {
		out.Skills = incoming.Skills
	}
	if len(incoming.Languages) > 0 {
		out.Languages = incoming.Languages
	}
	if len(incoming.Interests) > 0 {
		out.Interests = incoming.Interests
	}
	if len(incoming.CustomSections) > 0 {
		out.CustomSections = incoming.CustomSections
	}
	return out
}

func mergePersonal(existing, incoming types.Personal) types.Personal {
	out := existing
	out.FirstName = pick(incoming.FirstName, existing.FirstName)
	out.LastName = pick(incoming.LastName, existing.LastName)
	out.Email = pick(incoming.Email, existing.Email)
	out.Phone = pick(incoming.Phone, existing.Phone)
	out.JobTitle = pick(incoming.JobTitle, existing.JobTitle)
	out.Address = pick(incoming.Address, existing.Address)
	out.City = pick(incoming.City, existing.City)
	out.Website = pick(incoming.Website, existing.Website)
	out.LinkedIn = pick(incoming.LinkedIn, existing.LinkedIn)
	out.Nationality = pick(incoming.Nationality, existing.Nationality)
	out.BirthDate = pick(incoming.BirthDate, existing.BirthDate)
	out.BirthPlace = pick(incoming.BirthPlace, existing.BirthPlace)
	out.Driving = pick(incoming.Driving, existing.Driving)
	if len(incoming.Phones) > 0 {
		out.Phones = incoming.Phones
	}
	return out
}

func pick(incoming, existing string) string {
	if incoming != "" {
		return incoming
	}
	return existing
}
