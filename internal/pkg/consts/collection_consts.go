package consts

const (
	NotesCollection        = "notes"
	AuditEntriesCollection = "audit_entries"
)
