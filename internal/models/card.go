// Package models defines the study-planner data types persisted by the card
// store and exchanged with external services.
package models

// CombatCard is a single user-authored study note tied to one subject.
//
// Id and CreatedAt are assigned by the store at creation time and are never
// mutated afterwards. CreatedAt is epoch milliseconds.
type CombatCard struct {
	Id               string   `json:"id"`
	SubjectId        string   `json:"subjectId"`
	Title            string   `json:"title"`
	Summary          []string `json:"summary"`
	CriticalFormulas []string `json:"criticalFormulas"`
	Traps            []string `json:"traps"`
	CreatedAt        int64    `json:"createdAt"`
}

// CardDraft carries the user-supplied fields of a new card, i.e. everything
// except the store-assigned Id and CreatedAt.
type CardDraft struct {
	SubjectId        string
	Title            string
	Summary          []string
	CriticalFormulas []string
	Traps            []string
}

// CardPatch is a partial update of a card. Nil fields are left untouched by
// the store; Id and CreatedAt cannot be patched.
type CardPatch struct {
	SubjectId        *string
	Title            *string
	Summary          *[]string
	CriticalFormulas *[]string
	Traps            *[]string
}

// CardPayload is the structured output of the AI card generator. All three
// list fields must be present (possibly empty) for the payload to be valid.
type CardPayload struct {
	Title            string   `json:"title"`
	Summary          []string `json:"summary"`
	CriticalFormulas []string `json:"criticalFormulas"`
	Traps            []string `json:"traps"`
}

// Draft binds a generated payload to a subject, producing the draft that is
// handed to the store.
func (p CardPayload) Draft(subjectId string) CardDraft {
	return CardDraft{
		SubjectId:        subjectId,
		Title:            p.Title,
		Summary:          p.Summary,
		CriticalFormulas: p.CriticalFormulas,
		Traps:            p.Traps,
	}
}
