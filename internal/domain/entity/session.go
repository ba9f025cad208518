package entity

import (
	"encoding/json"
	"time"
)

// Session fila de la tabla sessions (sid, sess, expire).
type Session struct {
	SID    string
	Data   json.RawMessage
	Expire time.Time
}

// SessionData contenido serializado en sess.
type SessionData struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	UserAgent string    `json:"user_agent,omitempty"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired indica si la sesión venció respecto a now.
func (s *Session) Expired(now time.Time) bool {
	return !s.Expire.After(now)
}
