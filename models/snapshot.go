// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// AdminAccount is the single administrator of the venue.
type AdminAccount struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Snapshot is the whole persisted state document. Every mutation rewrites
// the complete document; there are no partial-record updates.
type Snapshot struct {
	Admin  *AdminAccount `json:"admin"`
	Tables []Table       `json:"tables"`
	Orders []Order       `json:"orders"`
}

// NewSnapshot returns an empty document with non-nil collections so that it
// encodes as {"admin":null,"tables":[],"orders":[]}.
func NewSnapshot() Snapshot {
	return Snapshot{
		Tables: make([]Table, 0),
		Orders: make([]Order, 0),
	}
}

// Clone returns a deep copy of the snapshot. Callers mutating the copy never
// affect the original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Tables: slices.Clone(s.Tables),
		Orders: make([]Order, len(s.Orders)),
	}
	if s.Admin != nil {
		admin := *s.Admin
		out.Admin = &admin
	}
	if out.Tables == nil {
		out.Tables = make([]Table, 0)
	}
	for i, o := range s.Orders {
		o.Items = slices.Clone(o.Items)
		out.Orders[i] = o
	}
	return out
}

// FindTable returns the table with the given id.
func (s Snapshot) FindTable(id TableID) (Table, bool) {
	for _, t := range s.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return Table{}, false
}
