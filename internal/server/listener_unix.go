//go:build linux || darwin

package server

import (
	"errors"
	"net"
	"os"
	"strconv"
)

// listenFDsStart is SD_LISTEN_FDS_START.
const listenFDsStart = 3

// GetListener uses the first socket passed by systemd when
// SOCKET_ACTIVATION=1, and net.Listen on addr otherwise.
func GetListener(addr string) (net.Listener, error) {
	if os.Getenv("SOCKET_ACTIVATION") != "1" {
		return net.Listen("tcp", addr)
	}
	if pid, err := strconv.Atoi(os.Getenv("LISTEN_PID")); err == nil && pid != os.Getpid() {
		return nil, errors.New("socket activation: LISTEN_PID belongs to another process")
	}
	n, err := strconv.Atoi(os.Getenv("LISTEN_FDS"))
	if err != nil || n < 1 {
		return nil, errors.New("socket activation requested but no valid LISTEN_FDS")
	}
	f := os.NewFile(uintptr(listenFDsStart), "listener")
	if f == nil {
		return nil, errors.New("socket activation: fd 3 is not open")
	}
	defer f.Close()
	serverLogger.Info("using socket-activated listener")
	return net.FileListener(f)
}
