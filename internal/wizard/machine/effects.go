package machine

// EffectKind enumerates the follow-up commands a transition can schedule.
type EffectKind int

const (
	// EffectPush asks the history adapter to push a new entry for the
	// committed state.
	EffectPush EffectKind = iota

	// EffectReplace asks the history adapter to swap the current entry for
	// the committed state without growing the stack.
	EffectReplace

	// EffectSave asks the persistence store to snapshot the committed state.
	// The store itself refuses non-resumable steps.
	EffectSave

	// EffectClear asks the persistence store to drop the slot; emitted when
	// nothing is left to resume.
	EffectClear

	// EffectLoadQuestions asks the question provider for the case's ordered
	// question list. The result comes back through QuestionsLoaded, which
	// drops stale resolutions.
	EffectLoadQuestions
)

// Effect is one queued follow-up command. Transitions commit the next state
// first and return effects second, so side effects always observe the settled
// state instead of an intermediate value.
type Effect struct {
	Kind   EffectKind
	CaseID string // set for EffectLoadQuestions
}

func push() Effect    { return Effect{Kind: EffectPush} }
func replace() Effect { return Effect{Kind: EffectReplace} }
func save() Effect    { return Effect{Kind: EffectSave} }
func clear() Effect   { return Effect{Kind: EffectClear} }
func loadQuestions(id string) Effect {
	return Effect{Kind: EffectLoadQuestions, CaseID: id}
}
