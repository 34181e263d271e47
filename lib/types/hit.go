package types

import (
	"gopkg.in/yaml.v2"
)

// HitRecord is one located match of a query, as published by workers
type HitRecord struct {
	Uid      string
	QueryID  int
	Query    string
	Ref      string
	RefID    int
	Position int
	Length   int
	Content  string
}

// Dumps serialises the hit
func (h HitRecord) Dumps() (out []byte, err error) {
	return yaml.Marshal(&h)
}
