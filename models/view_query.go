package models

// SortDirection orders contacts by their last-contact date.
type SortDirection string

const (
	// SortNone keeps the store order.
	SortNone SortDirection = "none"
	// SortAscending puts the oldest last-contact date first.
	SortAscending SortDirection = "asc"
	// SortDescending puts the newest last-contact date first.
	SortDescending SortDirection = "desc"
)

// Next cycles none -> asc -> desc -> none.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortAscending:
		return SortDescending
	case SortDescending:
		return SortNone
	default:
		return SortAscending
	}
}

// ViewQuery is the user-controlled search and ordering of the contact list.
type ViewQuery struct {
	Search string        `json:"search"`
	Sort   SortDirection `json:"sort"`
}
