//go:build !linux && !darwin

package server

import (
	"net"
)

// GetListener listens on addr. Socket activation is not supported here.
func GetListener(addr string) (net.Listener, error) {
	if addr == "" {
		addr = ":8080"
	}
	return net.Listen("tcp", addr)
}
