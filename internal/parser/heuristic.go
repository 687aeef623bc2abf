// Package parser holds the two structured extractors: a pure pattern-based
// heuristic and a model-backed extractor gated by a JSON schema.
package parser

import (
	"regexp"
	"strings"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

// Section collection windows. Lists longer than these are almost always the
// scanner having run past the section into body text.
const (
	skillsWindow    = 30
	languagesWindow = 15
	interestsWindow = 10

	// itemLineMax is the per-line length cap for section items; a longer
	// line is prose and ends the section.
	itemLineMax = 64
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Loose international phone shape; matches are kept only when they
	// contain at least 8 digits. The class stays within one line so digit
	// runs on adjacent lines never merge into one number.
	phoneRe = regexp.MustCompile(`\+?\(?\d[\d \t().\-]{5,}\d`)

	// bareYearSpanRe recognizes a match that is only a year range, which
	// has 8 digits but is a period, not a phone number.
	bareYearSpanRe = regexp.MustCompile(`^(?:19|20)\d{2}[ \t]*[-–/]?[ \t]*(?:19|20)\d{2}$`)

	digitRe = regexp.MustCompile(`\d`)

	// A name token is letters (accents included), apostrophes and hyphens.
	nameTokenRe = regexp.MustCompile(`^[\p{L}][\p{L}'’.\-]*$`)

	// yearRangeRe matches textual period ranges like "2018-2022",
	// "2018 – 2022", "2018/2022" and "2018 à 2022".
	yearRangeRe = regexp.MustCompile(`((?:19|20)\d{2})\s*(?:[-–/]|à)\s*((?:19|20)\d{2})`)
)

// Section header vocabulary, lowercase, with and without accents. Matching
// is exact on the normalized line.
var (
	skillHeaders = []string{
		"compétences", "competences", "compétences techniques",
		"competences techniques", "skills", "technical skills",
	}
	languageHeaders = []string{
		"langues", "languages", "langue",
	}
	interestHeaders = []string{
		"centres d'intérêt", "centres d'interet", "centre d'intérêt",
		"centre d'interet", "centres d’intérêt", "loisirs", "interests", "hobbies",
	}
	// Headers of sections this extractor does not list-scan but must stop at.
	otherHeaders = []string{
		"expérience", "experience", "expériences", "experiences",
		"expérience professionnelle", "experience professionnelle",
		"expériences professionnelles", "experiences professionnelles",
		"formation", "formations", "éducation", "education",
		"diplômes", "diplomes", "parcours", "profil", "à propos", "a propos",
		"références", "references", "contact",
	}
)

// Keyword vocabularies used to pick education and experience lines out of
// the whole document.
var (
	educationKeywords = []string{
		"licence", "master", "bachelor", "doctorat", "bts", "dut", "deug",
		"diplôme", "diplome", "baccalauréat", "baccalaureat", "université",
		"universite", "école", "ecole", "institut", "lycée", "lycee",
		"faculté", "faculte", "mba", "certificat",
	}
	experienceKeywords = []string{
		"développeur", "developpeur", "ingénieur", "ingenieur", "consultant",
		"manager", "directeur", "directrice", "responsable", "chef de projet",
		"technicien", "technicienne", "assistant", "assistante", "stagiaire",
		"stage chez", "analyste", "chargé de", "chargée de", "charge de",
		"commercial", "comptable", "vendeur", "vendeuse", "designer",
	}
)

// HeuristicExtractor extracts structured résumé data from plain text using
// only patterns and keyword vocabularies. It is deterministic and never
// fails; unknown content simply yields empty fields.
type HeuristicExtractor struct{}

// NewHeuristicExtractor returns the pattern-based extractor.
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// Parse extracts whatever personal fields and section lists the patterns
// can find in text.
func (e *HeuristicExtractor) Parse(text string) types.StructuredCandidate {
	cand := types.EmptyCandidate()
	lines := splitLines(text)

	cand.Personal.Email = emailRe.FindString(text)
	cand.Personal.Phones = findPhones(text)
	if len(cand.Personal.Phones) > 0 {
		cand.Personal.Phone = cand.Personal.Phones[0]
	}
	cand.Personal.FirstName, cand.Personal.LastName = findName(lines)

	for _, s := range collectSection(lines, skillHeaders, skillsWindow) {
		cand.Skills = append(cand.Skills, types.Skill{Name: s})
	}
	for _, l := range collectSection(lines, languageHeaders, languagesWindow) {
		cand.Languages = append(cand.Languages, types.Language{Name: l})
	}
	for _, i := range collectSection(lines, interestHeaders, interestsWindow) {
		cand.Interests = append(cand.Interests, types.Interest{Name: i})
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case containsAny(lower, educationKeywords):
			cleaned, period := stripPeriod(line)
			cand.Education = append(cand.Education, types.EducationEntry{
				Degree: cleaned,
				Period: period,
			})
		case containsAny(lower, experienceKeywords):
			cleaned, period := stripPeriod(line)
			cand.Experience = append(cand.Experience, types.ExperienceEntry{
				JobTitle: cleaned,
				Period:   period,
			})
		}
	}

	return cand
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimSpace(l))
	}
	return lines
}

// findPhones returns every phone-looking match with at least 8 digits.
func findPhones(text string) []string {
	var phones []string
	for _, m := range phoneRe.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if bareYearSpanRe.MatchString(m) {
			continue
		}
		if len(digitRe.FindAllString(m, -1)) >= 8 {
			phones = append(phones, m)
		}
	}
	return phones
}

// findName picks the first line of 2+ alphabetic tokens with no digits and
// length >= 4. The first token becomes the first name, the rest the last
// name. Best effort only; a document whose first qualifying line is not a
// name will be wrong here and corrected by the user in the editor.
func findName(lines []string) (first, last string) {
	for _, line := range lines {
		if len([]rune(line)) < 4 || digitRe.MatchString(line) {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			continue
		}
		allAlpha := true
		for _, tok := range tokens {
			if !nameTokenRe.MatchString(tok) {
				allAlpha = false
				break
			}
		}
		if !allAlpha {
			continue
		}
		return tokens[0], strings.Join(tokens[1:], " ")
	}
	return "", ""
}

// normalizeHeader lowercases a line and strips a trailing colon so header
// matching is exact.
func normalizeHeader(line string) string {
	l := strings.ToLower(strings.TrimSpace(line))
	return strings.TrimSpace(strings.TrimSuffix(l, ":"))
}

func matchesHeader(line string, headers []string) bool {
	norm := normalizeHeader(line)
	for _, h := range headers {
		if norm == h {
			return true
		}
	}
	return false
}

// isAnyHeader reports whether line is a recognized section header of any
// kind, which ends the current section scan.
func isAnyHeader(line string) bool {
	return matchesHeader(line, skillHeaders) ||
		matchesHeader(line, languageHeaders) ||
		matchesHeader(line, interestHeaders) ||
		matchesHeader(line, otherHeaders)
}

// collectSection finds the first line matching headers and gathers the
// following non-empty lines, stopping at the window limit, at the next
// recognized header, or at a line longer than the item cap.
func collectSection(lines []string, headers []string, window int) []string {
	start := -1
	for i, line := range lines {
		if matchesHeader(line, headers) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var items []string
	for _, line := range lines[start:] {
		if line == "" {
			continue
		}
		if isAnyHeader(line) || len([]rune(line)) > itemLineMax {
			break
		}
		items = append(items, line)
		if len(items) >= window {
			break
		}
	}
	return items
}

// stripPeriod removes the first year-range match from line and returns the
// cleaned line plus the textual period.
func stripPeriod(line string) (cleaned, period string) {
	loc := yearRangeRe.FindStringIndex(line)
	if loc == nil {
		return strings.TrimSpace(line), ""
	}
	period = strings.TrimSpace(line[loc[0]:loc[1]])
	cleaned = strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
	cleaned = strings.Trim(cleaned, " ,;-–|")
	return cleaned, period
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
