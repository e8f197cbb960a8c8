package group

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	CreateGroup(ctx context.Context, group *Group) error
	GetGroup(ctx context.Context, id string) (*Group, error)
	ListGroups(ctx context.Context, offset, limit int) ([]Group, error)
	UpdateGroup(ctx context.Context, group *Group) error
	// DeleteGroup removes the group row. Memberships and invitations must be
	// removed explicitly in the same transaction; dependent social edges are
	// dropped by the storage layer.
	DeleteGroup(ctx context.Context, id string) error

	AddMember(ctx context.Context, member *Membership) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	RemoveMembersByGroup(ctx context.Context, groupID string) error
	IsMember(ctx context.Context, groupID, userID string) (bool, error)
	MemberIDs(ctx context.Context, groupID string) ([]string, error)
	GroupsByMember(ctx context.Context, userID string) ([]Group, error)

	CreateInvitation(ctx context.Context, invitation *Invitation) error
	GetInvitation(ctx context.Context, id string) (*Invitation, error)
	// ConsumeInvitation marks the invitation consumed if and only if it is
	// still unconsumed, reporting whether this call won. Concurrent joins
	// against one invitation resolve to exactly one winner here.
	ConsumeInvitation(ctx context.Context, id, userID string) (bool, error)
	RemoveInvitationsByGroup(ctx context.Context, groupID string) error
}
