// Package character provides persistence for character records
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/hearthlight/charsheet/internal/repositories/character Repository

import (
	"context"

	"github.com/hearthlight/charsheet/internal/entities/sheet"
)

// Repository defines the interface for character persistence
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the request for creating a character record
type CreateInput struct {
	Character *sheet.Character
}

// CreateOutput defines the response for creating a character record
type CreateOutput struct{}

// GetInput defines the request for getting a character record
type GetInput struct {
	ID string
}

// GetOutput defines the response for getting a character record
type GetOutput struct {
	Character *sheet.Character
}

// UpdateInput defines the request for updating a character record
type UpdateInput struct {
	Character *sheet.Character
}

// UpdateOutput defines the response for updating a character record
type UpdateOutput struct{}

// DeleteInput defines the request for deleting a character record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting a character record
type DeleteOutput struct{}

// ListByPlayerIDInput defines the request for listing a player's
// characters
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the response for listing a player's
// characters
type ListByPlayerIDOutput struct {
	Characters []*sheet.Character
}
