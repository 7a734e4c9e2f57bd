//go:build unit

package resource_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketflo/internal/domain/resource"
)

func fixedTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewVertical(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    resource.Vertical
		wantErr bool
	}{
		{name: "general", input: "general", want: resource.VerticalGeneral},
		{name: "golf", input: "golf", want: resource.VerticalGolf},
		{name: "salon", input: "salon", want: resource.VerticalSalon},
		{name: "entertainment", input: "entertainment", want: resource.VerticalEntertainment},
		{name: "unknown", input: "bowling", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Golf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := resource.NewVertical(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, resource.ErrUnknownVertical)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestVertical_ResolveRules_Presets(t *testing.T) {
	tests := []struct {
		name         string
		vertical     resource.Vertical
		wantInterval int
		wantDuration int
		wantCapacity int
		wantMinParty int
		wantJoin     bool
	}{
		{name: "general", vertical: resource.VerticalGeneral, wantInterval: 60, wantDuration: 60, wantCapacity: 10, wantMinParty: 1, wantJoin: true},
		{name: "golf", vertical: resource.VerticalGolf, wantInterval: 10, wantDuration: 10, wantCapacity: 4, wantMinParty: 1, wantJoin: true},
		{name: "salon", vertical: resource.VerticalSalon, wantInterval: 30, wantDuration: 45, wantCapacity: 1, wantMinParty: 1, wantJoin: false},
		{name: "entertainment", vertical: resource.VerticalEntertainment, wantInterval: 30, wantDuration: 90, wantCapacity: 8, wantMinParty: 2, wantJoin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := tt.vertical.ResolveRules(tzOnly())
			require.NoError(t, err)
			assert.Equal(t, tt.wantInterval, rules.SlotInterval())
			assert.Equal(t, tt.wantDuration, rules.Duration())
			assert.Equal(t, tt.wantCapacity, rules.Capacity())
			assert.Equal(t, tt.wantMinParty, rules.MinPartySize())
			assert.Equal(t, tt.wantJoin, rules.AllowJoinExisting())
			assert.Equal(t, "America/New_York", rules.Timezone())
		})
	}
}

func TestVertical_ResolveRules_Overrides(t *testing.T) {
	overrides := resource.RuleOverrides{
		SlotIntervalMinutes:    intPtr(20),
		DefaultDurationMinutes: intPtr(60),
		MinPartySize:           intPtr(2),
		AllowJoinExisting:      boolPtr(false),
		Timezone:               "Europe/London",
	}

	rules, err := resource.VerticalGolf.ResolveRules(overrides)
	require.NoError(t, err)
	assert.Equal(t, 20, rules.SlotInterval())
	assert.Equal(t, 60, rules.Duration())
	assert.Equal(t, 4, rules.Capacity())
	assert.Equal(t, 2, rules.MinPartySize())
	assert.False(t, rules.AllowJoinExisting())
	assert.Equal(t, "Europe/London", rules.Timezone())
}

func TestVertical_ResolveRules_UnknownVertical(t *testing.T) {
	_, err := resource.Vertical("arcade").ResolveRules(tzOnly())
	assert.ErrorIs(t, err, resource.ErrUnknownVertical)
}
