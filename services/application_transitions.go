package services

import "backend/entity"

// SideEffect is what a legal transition requires beyond the status write.
type SideEffect int

const (
	EffectNone SideEffect = iota
	EffectPromote
	EffectStanding
)

// legalTransitions is the full moderation state machine. Anything not in the
// table is rejected. Self-loops on pending and approved are deliberate:
// re-submitting a pending edit and re-approving are both harmless retries.
var legalTransitions = map[entity.Status][]entity.Status{
	entity.StatusPending:   {entity.StatusPending, entity.StatusApproved, entity.StatusDeclined},
	entity.StatusApproved:  {entity.StatusApproved, entity.StatusSuspended, entity.StatusBlocked},
	entity.StatusDeclined:  {entity.StatusPending, entity.StatusApproved},
	entity.StatusSuspended: {entity.StatusApproved, entity.StatusBlocked},
	entity.StatusBlocked:   {entity.StatusApproved, entity.StatusSuspended},
}

// ValidateTransition checks from -> to against the table and reports the side
// effect the caller must run before writing the status. Approval always
// promotes (create or refresh the profile); suspend/block flip the profile
// standing without touching the account role.
func ValidateTransition(from, to entity.Status) (SideEffect, error) {
	allowed := false
	for _, t := range legalTransitions[from] {
		if t == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return EffectNone, ErrInvalidTransition
	}

	switch to {
	case entity.StatusApproved:
		return EffectPromote, nil
	case entity.StatusSuspended, entity.StatusBlocked:
		return EffectStanding, nil
	}
	return EffectNone, nil
}
