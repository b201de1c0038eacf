package domain

import (
	"bytes"
	"encoding/json"
)

// Ref points at another document. The upstream API sends either the bare id
// or the populated document, depending on the endpoint.
type Ref struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}

	type plain Ref
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

func (r Ref) IsZero() bool {
	return r.ID == ""
}

// Or returns prev when r points at the same document but arrived as a bare
// id, and r otherwise.
func (r Ref) Or(prev Ref) Ref {
	if r.Name == "" && prev.Name != "" && (r.ID == "" || r.ID == prev.ID) {
		return prev
	}
	return r
}

// refIndex remembers populated refs by id.
type refIndex map[string]Ref

func (idx refIndex) add(r Ref) {
	if r.ID != "" && r.Name != "" {
		idx[r.ID] = r
	}
}

func (idx refIndex) fill(r Ref) Ref {
	if known, ok := idx[r.ID]; ok {
		return r.Or(known)
	}
	return r
}
