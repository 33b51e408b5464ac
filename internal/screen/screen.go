// Package screen holds the active top-level view of the app.
//
// Exactly one Screen is active at a time. Navigation is flat: there is no
// history stack, and leaving any sub-screen always lands on Home.
package screen

import (
	"errors"
	"fmt"
	"strings"
)

type Screen int

const (
	Home Screen = iota
	Chat
	AiconGuide
	Consultation
	MyPage
)

var ErrUnknownScreen = errors.New("unknown screen")

var names = map[Screen]string{
	Home:         "home",
	Chat:         "chat",
	AiconGuide:   "aiconGuide",
	Consultation: "consultation",
	MyPage:       "myPage",
}

// All returns every screen in declaration order.
func All() []Screen {
	return []Screen{Home, Chat, AiconGuide, Consultation, MyPage}
}

func (s Screen) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// Parse accepts a screen name case-insensitively, plus the short aliases
// "aicon" and "mypage". An empty name is Home.
func Parse(name string) (Screen, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "aicon":
		return AiconGuide, nil
	case "", "home":
		return Home, nil
	}
	for s, n := range names {
		if strings.ToLower(n) == key {
			return s, nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

// Navigator is what child screens get injected to move between screens.
type Navigator interface {
	Current() Screen
	NavigateTo(s Screen)
}

// Shell owns the active screen.
type Shell struct {
	current  Screen
	onChange func(from, to Screen)
}

func NewShell(start Screen) *Shell {
	return &Shell{current: start}
}

// OnChange registers a hook called after every navigation, including
// navigation to the screen that is already active.
func (s *Shell) OnChange(fn func(from, to Screen)) {
	s.onChange = fn
}

func (s *Shell) Current() Screen { return s.current }

func (s *Shell) NavigateTo(next Screen) {
	prev := s.current
	s.current = next
	if s.onChange != nil {
		s.onChange(prev, next)
	}
}

// Back returns to Home from anywhere.
func (s *Shell) Back() {
	s.NavigateTo(Home)
}
