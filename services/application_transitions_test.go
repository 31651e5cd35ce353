package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []entity.Status{
	entity.StatusPending,
	entity.StatusApproved,
	entity.StatusDeclined,
	entity.StatusSuspended,
	entity.StatusBlocked,
}

func TestValidateTransition_Table(t *testing.T) {
	type pair struct{ from, to entity.Status }

	legal := map[pair]SideEffect{
		{entity.StatusPending, entity.StatusPending}:    EffectNone,
		{entity.StatusPending, entity.StatusApproved}:   EffectPromote,
		{entity.StatusPending, entity.StatusDeclined}:   EffectNone,
		{entity.StatusApproved, entity.StatusApproved}:  EffectPromote,
		{entity.StatusApproved, entity.StatusSuspended}: EffectStanding,
		{entity.StatusApproved, entity.StatusBlocked}:   EffectStanding,
		{entity.StatusDeclined, entity.StatusPending}:   EffectNone,
		{entity.StatusDeclined, entity.StatusApproved}:  EffectPromote,
		{entity.StatusSuspended, entity.StatusApproved}: EffectPromote,
		{entity.StatusSuspended, entity.StatusBlocked}:  EffectStanding,
		{entity.StatusBlocked, entity.StatusApproved}:   EffectPromote,
		{entity.StatusBlocked, entity.StatusSuspended}:  EffectStanding,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			effect, err := ValidateTransition(from, to)
			if want, ok := legal[pair{from, to}]; ok {
				assert.NoError(t, err, "%s -> %s should be legal", from, to)
				assert.Equal(t, want, effect, "%s -> %s side effect", from, to)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be illegal", from, to)
				assert.Equal(t, EffectNone, effect)
			}
		}
	}
}

func TestValidateTransition_UnknownStatus(t *testing.T) {
	_, err := ValidateTransition(entity.Status("draft"), entity.StatusApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := entity.ParseStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := entity.ParseStatus("rejected")
	assert.Error(t, err)
}
