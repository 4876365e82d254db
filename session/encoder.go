package session

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	recordFormatVersionCurrent = 2
	recordFormatVersionV1      = 1
)

// ErrRecordCorrupt is returned when a persisted identity blob cannot be
// decoded. Callers must treat it as "no session".
var ErrRecordCorrupt = errors.New("session record corrupt")

// identityEnvelope is the durable JSON shape of the identity slot. The
// token slot stores the raw bearer string and is never JSON-wrapped.
type identityEnvelope struct {
	Version   int    `json:"v"`
	UserID    int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	SavedAt   int64  `json:"savedAt,omitempty"`
}

// EncodeIdentity serializes the identity half of a record for the identity
// storage slot.
func EncodeIdentity(r *Record) ([]byte, error) {
	if r == nil {
		return nil, ErrRecordCorrupt
	}
	if r.UserID <= 0 {
		return nil, errors.New("record user id must be positive")
	}
	if strings.TrimSpace(r.Role) == "" {
		return nil, errors.New("record role must be set")
	}

	return json.Marshal(identityEnvelope{
		Version:   recordFormatVersionCurrent,
		UserID:    r.UserID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Role:      r.Role,
		SavedAt:   r.SavedAt,
	})
}

// DecodeIdentity parses an identity slot blob. Unknown versions and
// malformed payloads fail closed with [ErrRecordCorrupt].
func DecodeIdentity(data []byte) (*Record, error) {
	if len(data) == 0 {
		return nil, ErrRecordCorrupt
	}

	var env identityEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrRecordCorrupt
	}

	switch env.Version {
	case recordFormatVersionCurrent, recordFormatVersionV1:
	default:
		return nil, ErrRecordCorrupt
	}

	if env.UserID <= 0 || env.Role == "" {
		return nil, ErrRecordCorrupt
	}

	return &Record{
		UserID:    env.UserID,
		FirstName: env.FirstName,
		LastName:  env.LastName,
		Email:     env.Email,
		Role:      env.Role,
		SavedAt:   env.SavedAt,
	}, nil
}
