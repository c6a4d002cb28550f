package modal

import (
	"time"

	"github.com/creamcroissant/adminboard/internal/cache"
)

// Handlers receives the actions confirmed from the edit and delete dialogs.
type Handlers[T any] struct {
	Save          func(T)
	ConfirmDelete func(id int64)
}

// Set groups the view, edit and delete dialogs of one list screen. It is
// created once per screen and handed to whatever renders or drives the
// dialogs.
type Set[T any] struct {
	View   *Modal[T]
	Edit   *Modal[T]
	Delete *Modal[T]

	handlers Handlers[T]
}

// NewSet builds the three dialogs under the namespace name of store.
func NewSet[T any](store cache.Store, name string, cleanupDelay time.Duration, handlers Handlers[T]) *Set[T] {
	ns := store.Namespace(name)
	return &Set[T]{
		View:     New[T](ns.Namespace("view"), cleanupDelay),
		Edit:     New[T](ns.Namespace("edit"), cleanupDelay),
		Delete:   New[T](ns.Namespace("delete"), cleanupDelay),
		handlers: handlers,
	}
}

// Active returns the open dialog, or nil. Only one is open at a time.
func (s *Set[T]) Active() *Modal[T] {
	for _, m := range []*Modal[T]{s.View, s.Edit, s.Delete} {
		if m.IsOpen() {
			return m
		}
	}
	return nil
}

// CloseAll closes every dialog.
func (s *Set[T]) CloseAll() {
	s.View.Close()
	s.Edit.Close()
	s.Delete.Close()
}

// Show opens m after closing any other dialog.
func (s *Set[T]) Show(m *Modal[T], payload T) {
	if active := s.Active(); active != nil && active != m {
		active.Close()
	}
	m.Open(payload)
}

// Save forwards record to the save handler and closes the edit dialog.
func (s *Set[T]) Save(record T) {
	if s.handlers.Save != nil {
		s.handlers.Save(record)
	}
	s.Edit.Close()
}

// ConfirmDelete forwards id to the delete handler and closes the delete dialog.
func (s *Set[T]) ConfirmDelete(id int64) {
	if s.handlers.ConfirmDelete != nil {
		s.handlers.ConfirmDelete(id)
	}
	s.Delete.Close()
}
