package store

import "time"

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyInfo    NotificationType = "info"
	NotifyError   NotificationType = "error"
)

type Notification struct {
	Message string
	Type    NotificationType
}

// Notify replaces the active notification and schedules its expiry:
// errors linger longer than confirmations. The generation counter keeps
// an older timer from clearing a newer notification.
func (s *Store) Notify(message string, typ NotificationType) {
	ttl := s.notifyTTL
	if typ == NotifyError {
		ttl = s.errorNotifyTTL
	}

	s.mu.Lock()
	s.notification = &Notification{Message: message, Type: typ}
	s.notifyGen++
	gen := s.notifyGen
	s.mu.Unlock()

	time.AfterFunc(ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.notifyGen == gen {
			s.notification = nil
		}
	})
}

func (s *Store) Notification() *Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notification == nil {
		return nil
	}
	n := *s.notification
	return &n
}
