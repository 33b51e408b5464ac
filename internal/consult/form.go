// Package consult models the consultation request form: a draft edited
// field by field and an immutable record produced on submission.
package consult

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// IDPrefix starts every consultation record id.
const IDPrefix = "CONS"

var ErrIncomplete = errors.New("name, phone and category are required")

// Category is a consultation topic the user can pick.
type Category struct {
	ID    string
	Name  string
	Color string
}

var categories = []Category{
	{ID: "aicon", Name: "AICON 사용문의", Color: "blue"},
	{ID: "requirements", Name: "정비사업 요건", Color: "green"},
	{ID: "legal", Name: "법률/세무", Color: "purple"},
	{ID: "finance", Name: "자금조달", Color: "orange"},
	{ID: "procedure", Name: "절차/일정", Color: "red"},
	{ID: "other", Name: "기타 문의", Color: "gray"},
}

var timeSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

func Categories() []Category {
	return append([]Category(nil), categories...)
}

// CategoryName resolves a category id to its label, falling back to the id.
func CategoryName(id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

func TimeSlots() []string {
	return append([]string(nil), timeSlots...)
}

// Record is the frozen result of a successful submission.
type Record struct {
	ID          string    `json:"id"`
	Draft       Draft     `json:"draft"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NewRecordID builds an id from the low 8 decimal digits of the Unix
// millisecond clock. Ids minted within the same millisecond collide.
func NewRecordID(now time.Time) string {
	return fmt.Sprintf("%s%08d", IDPrefix, now.UnixMilli()%100_000_000)
}

type Option func(*Form)

func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(f *Form) {
		if log != nil {
			f.log = log
		}
	}
}

// Form holds the draft and, once submitted, the record. Not safe for
// concurrent use.
type Form struct {
	draft  Draft
	record *Record
	now    func() time.Time
	log    *zap.Logger
}

func NewForm(opts ...Option) *Form {
	f := &Form{draft: EmptyDraft(), now: time.Now, log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Draft() Draft { return f.draft }

// SetField replaces one field of the draft and reports whether the draft
// changed. No validation happens here.
func (f *Form) SetField(field Field, value string) (bool, error) {
	next, err := f.draft.With(field, value)
	if err != nil {
		return false, err
	}
	changed := next != f.draft
	f.draft = next
	return changed, nil
}

func (f *Form) SetMode(m Mode) {
	f.draft.Mode = m
}

func (f *Form) ToggleMode() {
	if f.draft.Mode == ModeOffline {
		f.draft.Mode = ModeOnline
		return
	}
	f.draft.Mode = ModeOffline
}

func (f *Form) CanSubmit() bool {
	return f.record == nil && f.draft.Complete()
}

// Submit freezes the draft into a Record and switches the form to its
// submitted state. It fails with ErrIncomplete when a required field is
// empty; callers are expected to keep the action disabled in that case.
func (f *Form) Submit() (Record, error) {
	if f.record != nil {
		return *f.record, nil
	}
	if !f.draft.Complete() {
		return Record{}, ErrIncomplete
	}
	now := f.now()
	rec := Record{ID: NewRecordID(now), Draft: f.draft, SubmittedAt: now}
	f.record = &rec
	f.log.Info("consultation submitted",
		zap.String("id", rec.ID),
		zap.String("mode", string(rec.Draft.Mode)),
		zap.String("category", rec.Draft.Category),
		zap.String("preferred_date", rec.Draft.PreferredDate),
		zap.String("preferred_time", rec.Draft.PreferredTime),
	)
	return rec, nil
}

func (f *Form) Submitted() bool { return f.record != nil }

func (f *Form) Record() (Record, bool) {
	if f.record == nil {
		return Record{}, false
	}
	return *f.record, true
}

// Reset clears the draft and returns to editing.
func (f *Form) Reset() {
	f.draft = EmptyDraft()
	f.record = nil
}
