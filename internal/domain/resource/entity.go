package resource

import (
	"errors"
	"strings"
	"time"

	"ticketflo/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
)

const (
	MaxResourceNameLength = 255
)

// Resource is one bookable thing: a tee sheet, a salon chair, a party room.
// Its booking policy is the vertical preset with per-resource overrides
// already folded in, so downstream code only ever sees a normalized
// availability.Rules.
type Resource struct {
	id        uuid.UUID
	orgID     uuid.UUID
	name      string
	vertical  Vertical
	rules     availability.Rules
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(orgID uuid.UUID, name string, vertical Vertical, overrides RuleOverrides) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if !vertical.IsValid() {
		return nil, ErrUnknownVertical
	}

	rules, err := vertical.ResolveRules(overrides)
	if err != nil {
		return nil, err
	}

	return &Resource{
		id:       uuid.New(),
		orgID:    orgID,
		name:     strings.TrimSpace(name),
		vertical: vertical,
		rules:    rules,
	}, nil
}

func ReconstructResource(
	id, orgID uuid.UUID,
	name string,
	vertical Vertical,
	rules availability.Rules,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:        id,
		orgID:     orgID,
		name:      name,
		vertical:  vertical,
		rules:     rules,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateRules replaces the booking policy by re-resolving the vertical
// preset with new overrides.
func (r *Resource) UpdateRules(overrides RuleOverrides) error {
	rules, err := r.vertical.ResolveRules(overrides)
	if err != nil {
		return err
	}
	r.rules = rules
	return nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID             { return r.id }
func (r *Resource) OrgID() uuid.UUID          { return r.orgID }
func (r *Resource) Name() string              { return r.name }
func (r *Resource) Vertical() Vertical        { return r.vertical }
func (r *Resource) Rules() availability.Rules { return r.rules }
func (r *Resource) CreatedAt() time.Time      { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time      { return r.updatedAt }
