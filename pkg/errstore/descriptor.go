package errstore

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Descriptor describes one error condition and how it is presented.
type Descriptor struct {
	Code       Code
	Name       string
	HTTPStatus int

	// Debug is for developers only; User must never leak debug detail.
	Debug Message
	User  Message

	// Optional capabilities, nil when absent.
	Admin  *Message
	Data   any
	Logger Logger
}

// NewDescriptor creates a descriptor with its mandatory fields.
func NewDescriptor(code Code, name string, httpStatus int, debug, user Message) *Descriptor {
	return &Descriptor{
		Code:       code,
		Name:       name,
		HTTPStatus: httpStatus,
		Debug:      debug,
		User:       user,
	}
}

// WithAdmin sets the admin message and returns d.
func (d *Descriptor) WithAdmin(m Message) *Descriptor {
	d.Admin = &m
	return d
}

// WithData attaches an arbitrary payload and returns d.
func (d *Descriptor) WithData(data any) *Descriptor {
	d.Data = data
	return d
}

// WithLogger attaches a logger invoked every time the descriptor is looked
// up, and returns d.
func (d *Descriptor) WithLogger(l Logger) *Descriptor {
	d.Logger = l
	return d
}

// Resolve returns a copy of d with every formatter invoked with its own
// argument list.
func (d *Descriptor) Resolve(debugArgs, userArgs, adminArgs []any) *Descriptor {
	resolved := d.clone()
	resolved.Debug = d.Debug.Resolve(debugArgs...)
	resolved.User = d.User.Resolve(userArgs...)
	if d.Admin != nil {
		admin := d.Admin.Resolve(adminArgs...)
		resolved.Admin = &admin
	}
	return resolved
}

func (d *Descriptor) clone() *Descriptor {
	c := *d
	if d.Admin != nil {
		admin := *d.Admin
		c.Admin = &admin
	}
	return &c
}

// ClientDescriptor is the client-safe projection of a Descriptor.
// Its JSON shape is part of the client export contract.
type ClientDescriptor struct {
	Code         Code     `json:"code"`
	Name         string   `json:"name"`
	HTTPStatus   int      `json:"httpStatus"`
	DebugMessage Message  `json:"debugMessage"`
	UserMessage  Message  `json:"userMessage"`
	AdminMessage *Message `json:"adminMessage,omitempty"`
	Data         any      `json:"data,omitempty"`
}

// Serialize returns the client-safe projection. Unresolved formatters are
// rendered as "" and the logger is dropped.
func (d *Descriptor) Serialize() ClientDescriptor {
	out := ClientDescriptor{
		Code:         d.Code,
		Name:         d.Name,
		HTTPStatus:   d.HTTPStatus,
		DebugMessage: literal(d.Debug),
		UserMessage:  literal(d.User),
		Data:         d.Data,
	}
	if d.Admin != nil {
		admin := literal(*d.Admin)
		out.AdminMessage = &admin
	}
	return out
}

func literal(m Message) Message {
	if m.IsFormatter() {
		return Text("")
	}
	return m
}

// MarshalJSON encodes the client-safe projection.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Serialize())
}

// String returns a single-line diagnostic.
func (d *Descriptor) String() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s %s] http=%d", d.Code, d.Name, d.HTTPStatus))
	b.WriteString(fmt.Sprintf(" | debug=%q", d.Debug.String()))
	b.WriteString(fmt.Sprintf(" | user=%q", d.User.String()))
	if d.Admin != nil {
		b.WriteString(fmt.Sprintf(" | admin=%q", d.Admin.String()))
	}
	if d.Data != nil {
		b.WriteString(fmt.Sprintf(" | data=%q", fmt.Sprint(d.Data)))
	}
	return b.String()
}
