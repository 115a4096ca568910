package stub

import (
	"sync/atomic"

	"github.com/jlkiri/tcpstub/internal/payload"
	"golang.org/x/sync/semaphore"
)

type (
	Config struct {
		Host           string
		Port           int
		MaxConns       int64 // 0 means unbounded
		ReadBufferSize int
	}

	// Server answers every read on every connection with the same payload.
	Server struct {
		config  Config
		payload payload.Payload
		sem     *semaphore.Weighted
		state   atomic.Int32
		active  atomic.Int64
	}

	State int32
)

const (
	Idle State = iota
	Listening
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
