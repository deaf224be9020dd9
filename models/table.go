package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TableID identifies a restaurant table.
//
// Clients send table ids either as JSON numbers or as numeric strings
// (QR links carry them as strings), so TableID accepts both forms when
// decoding and always encodes as a number.
type TableID int64

// UnmarshalJSON accepts 7, "7" and " 7 ". Anything else is an error.
func (id *TableID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("table id %q is not an integer", raw)
	}

	*id = TableID(v)
	return nil
}

// String returns the decimal form of the id.
func (id TableID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Table is a provisioned restaurant table.
//
// PinPlain is only ever read from a hand-edited snapshot: provisioning hashes
// it into PinHash and clears it before the snapshot is written back, so a
// persisted document never carries a plaintext PIN.
type Table struct {
	ID       TableID `json:"id"`
	Name     string  `json:"name,omitempty"`
	PinHash  string  `json:"pinHash,omitempty"`
	PinPlain string  `json:"pinPlain,omitempty"`
}

// Public returns a copy of the table that is safe to send to clients.
func (t Table) Public() TableView {
	return TableView{ID: t.ID, Name: t.Name, HasPin: t.PinHash != ""}
}

// TableView is the client-facing projection of [Table].
type TableView struct {
	ID     TableID `json:"id"`
	Name   string  `json:"name"`
	HasPin bool    `json:"hasPin"`
}
