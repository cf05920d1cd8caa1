package model

// Spouse is a persisted submission: the submitter's name, the spouse's name
// and the spouse's image embedded as a data URI.
// ID is assigned by the store on insert and never changes afterwards.
type Spouse struct {
	ID         int64  `json:"id"`
	UserName   string `json:"userName"`
	SpouseName string `json:"spouseName"`
	ImageData  string `json:"imageData"`
}
