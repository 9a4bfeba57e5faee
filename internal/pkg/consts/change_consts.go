package consts

type ChangeAction string

const (
	ActionCreated  ChangeAction = "CREATED"
	ActionImported ChangeAction = "IMPORTED"
	ActionUpdated  ChangeAction = "UPDATED"
	ActionDeleted  ChangeAction = "DELETED"
	ActionPurged   ChangeAction = "PURGED"

	EntityKindNote = "note"
)
