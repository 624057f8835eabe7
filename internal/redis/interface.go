package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface the repositories, the PokeAPI cache and
// the repair command use.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by GET when the key is absent
var Nil = redis.Nil
