package yatta

import "encoding/json"

// Contact is the sender of a message thread.
type Contact struct {
	Name      string
	Signature *string
	Type      int
	Icon      string
}

// UnmarshalJSON builds a Contact, synthesizing the avatar icon URL.
func (c *Contact) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      string  `json:"name"`
		Signature *string `json:"signature"`
		Type      int     `json:"type"`
		Icon      string  `json:"icon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("contact", "", err)
	}
	if raw.Icon == "" {
		return payloadErr("contact", "icon", nil)
	}

	c.Name = FormatString(raw.Name)
	c.Signature = raw.Signature
	c.Type = raw.Type
	c.Icon = iconURL("avatar", raw.Icon)
	return nil
}

// Message is a message thread with its contact.
type Message struct {
	ID           int
	Contact      Contact
	SectionCount int
	Route        *string
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           int             `json:"id"`
		Contacts     json.RawMessage `json:"contacts"`
		SectionCount int             `json:"sectionCount"`
		Route        *string         `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("message", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("message", "id", nil)
	}
	if isJSONNull(raw.Contacts) {
		return payloadErr("message", "contacts", nil)
	}

	var contact Contact
	if err := json.Unmarshal(raw.Contacts, &contact); err != nil {
		return err
	}

	m.ID = raw.ID
	m.Contact = contact
	m.SectionCount = raw.SectionCount
	m.Route = raw.Route
	return nil
}
