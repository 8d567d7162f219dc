package models

import (
	"math"
	"strings"

	"cineclub/pkg/platform/validation"
)

// CreateGroupInput carries the fields accepted when creating a group.
type CreateGroupInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

// Normalize trims the name.
func (in *CreateGroupInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
}

func (in *CreateGroupInput) Validate() error {
	return validation.Struct(in)
}

// UpdateGroupInput is a partial update; nil fields are left unchanged.
type UpdateGroupInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// IsEmpty reports whether no field was supplied.
func (in *UpdateGroupInput) IsEmpty() bool {
	return in.Name == nil && in.Description == nil
}

// MaxPage keeps (Page-1)*Limit within int for every allowed limit.
const MaxPage = math.MaxInt / validation.MaxPageLimit

// Page is a one-based pagination window.
type Page struct {
	Page  int
	Limit int
}

// Normalize clamps the window to sane bounds.
func (p *Page) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = validation.DefaultPageLimit
	}
	if p.Limit > validation.MaxPageLimit {
		p.Limit = validation.MaxPageLimit
	}
}

// Offset is the row offset of the window.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}
