package model

// RawPage is the untouched product page kept next to an imported spec.
type RawPage struct {
	ID          string
	ModelNumber string
	SourceURL   string
	Content     string
}
