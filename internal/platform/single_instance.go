// Package platform holds the small host-facing helpers the timer
// needs outside the game loop.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another starfocus instance holds the
// lock; a second timer window would double-count sessions.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard keeps the single-instance lock alive for the process
// lifetime by holding a deterministic localhost port.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds the port derived from appName. A bind
// failure is taken to mean another instance owns it.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// lockPort hashes the app name into the dynamic port range so
// unrelated applications do not collide on the lock.
func lockPort(appName string) int {
	const (
		minPort = 49200
		maxPort = 49999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
