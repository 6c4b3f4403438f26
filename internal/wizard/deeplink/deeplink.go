// Package deeplink maps URL hash fragments to and from partial wizard state.
// Pure functions only; the boot sequence and the history stack decide what to
// do with the result.
package deeplink

import (
	"fmt"
	"strconv"
	"strings"

	"caseflow/internal/wizard/model"
)

// Link is the partial state a hash can carry. Decode fails closed: anything
// not matching a known pattern yields nil and the caller falls back to the
// next initializer.
type Link struct {
	Step                 model.Step
	SelectedCase         string
	SelectedJurisdiction string
	QuestionIndex        int
	Language             model.Locale
	LegalPage            model.LegalPage
}

// Encode derives the URL hash for a state plus overlay flags. A visible legal
// page wins over the step encoding; steps without a defined encoding (landing,
// jurisdiction selection) produce the empty hash.
func Encode(state model.ApplicationState, overlay model.OverlayState) string {
	switch overlay.LegalPage {
	case model.LegalPrivacy:
		return "#privacy"
	case model.LegalTerms:
		return "#terms"
	}

	switch state.Step {
	case model.StepCaseSelect:
		return "#select"
	case model.StepQuestionnaire:
		if state.SelectedCase == "" {
			return ""
		}
		if state.SelectedJurisdiction == "" {
			// Legacy two-segment form for the jurisdiction-less fallback mode.
			return fmt.Sprintf("#case/%s/%d", state.SelectedCase, state.QuestionIndex)
		}
		hash := fmt.Sprintf("#case/%s/%s/%d",
			state.SelectedCase,
			SlugifyJurisdiction(state.SelectedJurisdiction),
			state.QuestionIndex,
		)
		if state.Language != model.DefaultLocale {
			hash += "/" + string(state.Language)
		}
		return hash
	case model.StepContact:
		return "#contact"
	case model.StepResults:
		return "#results"
	default:
		return ""
	}
}

// Decode parses a hash fragment, with or without its leading "#". Returns nil
// for anything unrecognized.
func Decode(hash string) *Link {
	hash = strings.TrimPrefix(hash, "#")
	if hash == "" {
		return nil
	}

	switch hash {
	case "select":
		return &Link{Step: model.StepCaseSelect, Language: model.DefaultLocale}
	case "contact":
		return &Link{Step: model.StepContact, Language: model.DefaultLocale}
	case "results":
		return &Link{Step: model.StepResults, Language: model.DefaultLocale}
	case "privacy":
		return &Link{Step: model.StepLanding, Language: model.DefaultLocale, LegalPage: model.LegalPrivacy}
	case "terms":
		return &Link{Step: model.StepLanding, Language: model.DefaultLocale, LegalPage: model.LegalTerms}
	}

	rest, ok := strings.CutPrefix(hash, "case/")
	if !ok {
		return nil
	}
	segments := strings.Split(rest, "/")

	switch len(segments) {
	case 2:
		// Legacy form: case/<caseId>/<questionIndex>, no jurisdiction.
		if segments[0] == "" {
			return nil
		}
		return &Link{
			Step:          model.StepQuestionnaire,
			SelectedCase:  segments[0],
			QuestionIndex: parseQuestionIndex(segments[1]),
			Language:      model.DefaultLocale,
		}
	case 3, 4:
		if segments[0] == "" || segments[1] == "" {
			return nil
		}
		link := &Link{
			Step:                 model.StepQuestionnaire,
			SelectedCase:         segments[0],
			SelectedJurisdiction: UnslugJurisdiction(segments[1]),
			QuestionIndex:        parseQuestionIndex(segments[2]),
			Language:             model.DefaultLocale,
		}
		if len(segments) == 4 {
			link.Language = model.ParseLocale(segments[3])
		}
		return link
	default:
		return nil
	}
}

// parseQuestionIndex is deliberately lenient: unparsable or negative indices
// become 0 rather than rejecting the whole link.
func parseQuestionIndex(raw string) int {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0
	}
	return idx
}

// SlugifyJurisdiction turns a display name into its URL segment. Spaces
// become single hyphens; a literal hyphen is escaped as a double hyphen so
// names like "Winston-Salem" survive the round trip:
// "New York" -> "new-york", "Winston-Salem" -> "winston--salem".
func SlugifyJurisdiction(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, "-", "--")
	return strings.ReplaceAll(slug, " ", "-")
}

// UnslugJurisdiction reverses SlugifyJurisdiction, restoring names in title
// case: "new-york" -> "New York", "winston--salem" -> "Winston-Salem".
func UnslugJurisdiction(slug string) string {
	const escapedHyphen = "\x00"
	words := strings.Split(strings.ReplaceAll(slug, "--", escapedHyphen), "-")
	for i, w := range words {
		pieces := strings.Split(w, escapedHyphen)
		for j, p := range pieces {
			if p == "" {
				continue
			}
			pieces[j] = strings.ToUpper(p[:1]) + p[1:]
		}
		words[i] = strings.Join(pieces, "-")
	}
	return strings.Join(words, " ")
}
