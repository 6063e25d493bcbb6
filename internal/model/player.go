package model

// ClientPlayer is the seat information included in state snapshots.
type ClientPlayer struct {
	ID    string `json:"name"`
	Color Color  `json:"color"`
}
