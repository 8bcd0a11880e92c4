package domain

// Mutation is a change request against the action store. The set of
// implementations is closed; services switch over it exhaustively.
type Mutation interface {
	isMutation()
}

// CreateAction inserts a new action. An empty ID is filled in by the service.
type CreateAction struct {
	Action Action
}

type UpdateAction struct {
	ID    string
	Patch ActionPatch
}

type BulkUpdateActions struct {
	IDs   []string
	Patch ActionPatch
}

// ArchiveAction is the soft delete.
type ArchiveAction struct {
	ID string
}

type RecoverAction struct {
	ID string
}

// DestroyAction removes the action for good.
type DestroyAction struct {
	ID string
}

type DuplicateAction struct {
	ID string
}

type AddToSprint struct {
	ActionID string
	UserID   string
}

type RemoveFromSprint struct {
	ActionID string
	UserID   string
}

func (CreateAction) isMutation()      {}
func (UpdateAction) isMutation()      {}
func (BulkUpdateActions) isMutation() {}
func (ArchiveAction) isMutation()     {}
func (RecoverAction) isMutation()     {}
func (DestroyAction) isMutation()     {}
func (DuplicateAction) isMutation()   {}
func (AddToSprint) isMutation()       {}
func (RemoveFromSprint) isMutation()  {}

// MutationResult reports what a mutation produced. Action is set for
// mutations that yield a single record; Actions for bulk updates.
type MutationResult struct {
	Action  *Action
	Actions []Action
}
