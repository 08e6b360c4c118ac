package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrGetIncomingCollaborationRequestsQueryIsNotConstructed = errors.New(
		"GetIncomingCollaborationRequestsQuery must be created via NewGetIncomingCollaborationRequestsQuery constructor",
	)
	ErrGetOutgoingCollaborationRequestsQueryIsNotConstructed = errors.New(
		"GetOutgoingCollaborationRequestsQuery must be created via NewGetOutgoingCollaborationRequestsQuery constructor",
	)
)

// GetIncomingCollaborationRequestsQuery lists the invitations a chef has
// received. Deleted requests never appear.
type GetIncomingCollaborationRequestsQuery struct {
	chefID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetIncomingCollaborationRequestsQuery creates an inbox query for a chef.
func NewGetIncomingCollaborationRequestsQuery(chefID kernel.UUID) (GetIncomingCollaborationRequestsQuery, error) {
	if err := chefID.Validate(); err != nil {
		return GetIncomingCollaborationRequestsQuery{}, err
	}

	return GetIncomingCollaborationRequestsQuery{
		chefID: chefID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetIncomingCollaborationRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetIncomingCollaborationRequestsQueryIsNotConstructed)
}

// ChefID returns the invited chef whose inbox is listed.
func (q GetIncomingCollaborationRequestsQuery) ChefID() kernel.UUID {
	return q.chefID
}

// GetOutgoingCollaborationRequestsQuery lists the invitations a chef has
// sent. Deleted requests never appear.
type GetOutgoingCollaborationRequestsQuery struct {
	chefID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOutgoingCollaborationRequestsQuery creates an outbox query for a chef.
func NewGetOutgoingCollaborationRequestsQuery(chefID kernel.UUID) (GetOutgoingCollaborationRequestsQuery, error) {
	if err := chefID.Validate(); err != nil {
		return GetOutgoingCollaborationRequestsQuery{}, err
	}

	return GetOutgoingCollaborationRequestsQuery{
		chefID: chefID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOutgoingCollaborationRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetOutgoingCollaborationRequestsQueryIsNotConstructed)
}

// ChefID returns the inviting chef whose outbox is listed.
func (q GetOutgoingCollaborationRequestsQuery) ChefID() kernel.UUID {
	return q.chefID
}

// CollaborationRequestResponse is one row of a request inbox or outbox.
type CollaborationRequestResponse struct {
	ID               kernel.UUID
	BulkOrderID      kernel.UUID
	FromChefID       kernel.UUID
	ToChefID         kernel.UUID
	Message          string
	WorkDistribution string
	Status           string
	RejectionReason  string
	CreatedAt        time.Time
}
