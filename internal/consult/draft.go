package consult

import (
	"errors"
	"fmt"
)

// Mode is how the consultation takes place.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

func (m Mode) Label() string {
	if m == ModeOffline {
		return "오프라인 상담"
	}
	return "온라인 상담"
}

// Channel describes the contact channel of the mode.
func (m Mode) Channel() string {
	if m == ModeOffline {
		return "직접 방문"
	}
	return "화상통화/전화"
}

func (m Mode) Description() string {
	if m == ModeOffline {
		return "사무실 방문을 통한 대면 상담입니다."
	}
	return "화상회의나 전화를 통한 원격 상담입니다."
}

// Field names one editable attribute of a Draft.
type Field string

const (
	FieldName          Field = "name"
	FieldPhone         Field = "phone"
	FieldEmail         Field = "email"
	FieldCategory      Field = "category"
	FieldPreferredDate Field = "preferredDate"
	FieldPreferredTime Field = "preferredTime"
	FieldMessage       Field = "message"
)

var ErrUnknownField = errors.New("unknown consultation field")

// Fields lists the editable fields in form order.
func Fields() []Field {
	return []Field{FieldName, FieldPhone, FieldEmail, FieldCategory, FieldPreferredDate, FieldPreferredTime, FieldMessage}
}

// Draft is the in-progress request. It is a plain comparable value so
// change detection is ==.
type Draft struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Category      string `json:"category"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
	Mode          Mode   `json:"mode"`
}

// EmptyDraft is the reset state of the form.
func EmptyDraft() Draft {
	return Draft{Mode: ModeOnline}
}

// With returns a copy of d with one field replaced.
func (d Draft) With(f Field, value string) (Draft, error) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldPhone:
		d.Phone = value
	case FieldEmail:
		d.Email = value
	case FieldCategory:
		d.Category = value
	case FieldPreferredDate:
		d.PreferredDate = value
	case FieldPreferredTime:
		d.PreferredTime = value
	case FieldMessage:
		d.Message = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return d, nil
}

// Get reads one field; unknown fields read as "".
func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldPhone:
		return d.Phone
	case FieldEmail:
		return d.Email
	case FieldCategory:
		return d.Category
	case FieldPreferredDate:
		return d.PreferredDate
	case FieldPreferredTime:
		return d.PreferredTime
	case FieldMessage:
		return d.Message
	}
	return ""
}

// Complete reports whether the required fields are filled.
func (d Draft) Complete() bool {
	return d.Name != "" && d.Phone != "" && d.Category != ""
}

// Missing lists the required fields that are still empty.
func (d Draft) Missing() []Field {
	var out []Field
	for _, f := range []Field{FieldName, FieldPhone, FieldCategory} {
		if d.Get(f) == "" {
			out = append(out, f)
		}
	}
	return out
}
