// Package profile is the read-only "my page": past questions, past
// consultation requests and a notification toggle kept in memory.
package profile

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jask/rebuildhelper/internal/consult"
)

//go:embed history.yaml
var historyYAML []byte

// Status of a past consultation.
type Status string

const (
	StatusBooked    Status = "예약완료"
	StatusCompleted Status = "상담완료"
	StatusCancelled Status = "취소"
)

// Color maps a status to a color token; unknown statuses are gray.
func (s Status) Color() string {
	switch s {
	case StatusBooked:
		return "blue"
	case StatusCompleted:
		return "green"
	case StatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

type Question struct {
	ID        int    `yaml:"id"`
	Question  string `yaml:"question"`
	Timestamp string `yaml:"timestamp"`
	Answered  bool   `yaml:"answered"`
}

type Consultation struct {
	ID            string       `yaml:"id"`
	Mode          consult.Mode `yaml:"mode"`
	Category      string       `yaml:"category"`
	Status        Status       `yaml:"status"`
	ScheduledDate string       `yaml:"scheduled_date"`
	ScheduledTime string       `yaml:"scheduled_time"`
	RequestDate   string       `yaml:"request_date"`
}

// CategoryName is the human label of the consultation category.
func (c Consultation) CategoryName() string {
	return consult.CategoryName(c.Category)
}

type History struct {
	Questions     []Question     `yaml:"questions"`
	Consultations []Consultation `yaml:"consultations"`
}

func ParseHistory(data []byte) (History, error) {
	var h History
	if err := yaml.Unmarshal(data, &h); err != nil {
		return History{}, fmt.Errorf("parse history: %w", err)
	}
	return h, nil
}

// DefaultHistory returns the embedded mock history.
func DefaultHistory() History {
	h, err := ParseHistory(historyYAML)
	if err != nil {
		panic(err)
	}
	return h
}

// User is the signed-in member shown in the header.
type User struct {
	Name  string
	Phone string
}

// View never mutates the history. The notification flag lives only in
// memory.
type View struct {
	user          User
	history       History
	notifications bool
}

func NewView(user User, history History, notifications bool) *View {
	return &View{user: user, history: history, notifications: notifications}
}

func (v *View) User() User { return v.user }

func (v *View) Questions() []Question {
	return append([]Question(nil), v.history.Questions...)
}

func (v *View) Consultations() []Consultation {
	return append([]Consultation(nil), v.history.Consultations...)
}

func (v *View) Notifications() bool { return v.notifications }

func (v *View) ToggleNotifications() bool {
	v.notifications = !v.notifications
	return v.notifications
}
