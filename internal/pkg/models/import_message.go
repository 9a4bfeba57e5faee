package models

// NoteImportMessage is the payload consumed from the bulk-import Kafka topic.
type NoteImportMessage struct {
	RequestID string       `json:"REQUEST_ID"`
	Source    string       `json:"SOURCE"`
	Notes     []NoteImport `json:"NOTES"`
}

type NoteImport struct {
	Title string   `json:"TITLE"`
	Body  string   `json:"BODY"`
	Tags  []string `json:"TAGS"`
}
