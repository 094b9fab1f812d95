package localstore

import (
	"context"
	"errors"
)

// Store is the client-held key/value persistence port (the localStorage
// analogue). Cart, session user and bearer token live here under fixed
// keys so a restart restores them without a re-login.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("localstore: key not found")

// Fixed keys shared with the hosted web client.
const (
	KeyCart    = "bos_quote_items"
	KeySession = "bos_session_user"
	KeyToken   = "bos_jwt_token"
)
