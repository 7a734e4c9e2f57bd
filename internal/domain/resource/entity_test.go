//go:build unit

package resource_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/resource"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func tzOnly() resource.RuleOverrides {
	return resource.RuleOverrides{Timezone: "America/New_York"}
}

func TestNewResource(t *testing.T) {
	orgID := uuid.New()

	tests := []struct {
		name     string
		resName  string
		vertical resource.Vertical
		wantErr  error
	}{
		{
			name:     "valid general resource",
			resName:  "Main Hall",
			vertical: resource.VerticalGeneral,
		},
		{
			name:     "valid golf resource",
			resName:  "North Course",
			vertical: resource.VerticalGolf,
		},
		{
			name:     "empty name",
			resName:  "   ",
			vertical: resource.VerticalGeneral,
			wantErr:  resource.ErrEmptyResourceName,
		},
		{
			name:     "name too long",
			resName:  string(make([]byte, 256)),
			vertical: resource.VerticalGeneral,
			wantErr:  resource.ErrResourceNameTooLong,
		},
		{
			name:     "unknown vertical",
			resName:  "Mystery Room",
			vertical: resource.Vertical("bowling"),
			wantErr:  resource.ErrUnknownVertical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := resource.NewResource(orgID, tt.resName, tt.vertical, tzOnly())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, res.ID())
			assert.Equal(t, orgID, res.OrgID())
			assert.Equal(t, tt.vertical, res.Vertical())
		})
	}
}

func TestNewResource_TrimsName(t *testing.T) {
	res, err := resource.NewResource(uuid.New(), "  Lane 3  ", resource.VerticalEntertainment, tzOnly())
	require.NoError(t, err)
	assert.Equal(t, "Lane 3", res.Name())
}

func TestNewResource_MissingTimezone(t *testing.T) {
	_, err := resource.NewResource(uuid.New(), "Chair 1", resource.VerticalSalon, resource.RuleOverrides{})
	assert.ErrorIs(t, err, availability.ErrMissingTimezone)
	assert.ErrorIs(t, err, availability.ErrConfig)
}

func TestResource_UpdateRules(t *testing.T) {
	res, err := resource.NewResource(uuid.New(), "North Course", resource.VerticalGolf, tzOnly())
	require.NoError(t, err)
	assert.Equal(t, 10, res.Rules().SlotInterval())

	overrides := tzOnly()
	overrides.SlotIntervalMinutes = intPtr(15)
	overrides.MaxCapacityPerSlot = intPtr(2)
	require.NoError(t, res.UpdateRules(overrides))

	assert.Equal(t, 15, res.Rules().SlotInterval())
	assert.Equal(t, 2, res.Rules().Capacity())
	// Untouched fields stay at the preset.
	assert.Equal(t, 10, res.Rules().Duration())
	assert.True(t, res.Rules().AllowJoinExisting())
}

func TestResource_UpdateRules_InvalidOverride(t *testing.T) {
	res, err := resource.NewResource(uuid.New(), "Chair 1", resource.VerticalSalon, tzOnly())
	require.NoError(t, err)

	overrides := tzOnly()
	overrides.SlotIntervalMinutes = intPtr(0)
	err = res.UpdateRules(overrides)
	assert.ErrorIs(t, err, availability.ErrBadSlotInterval)
	// Failed update leaves the previous policy in place.
	assert.Equal(t, 30, res.Rules().SlotInterval())
}

func TestReconstructResource(t *testing.T) {
	id := uuid.New()
	orgID := uuid.New()
	rules, err := resource.VerticalSalon.ResolveRules(tzOnly())
	require.NoError(t, err)

	res := resource.ReconstructResource(id, orgID, "Chair 1", resource.VerticalSalon, rules, fixedTime(t), fixedTime(t))
	assert.Equal(t, id, res.ID())
	assert.Equal(t, orgID, res.OrgID())
	assert.Equal(t, "Chair 1", res.Name())
	assert.Equal(t, rules, res.Rules())
}
