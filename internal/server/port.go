package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

var errNoFreePort = errors.New("no free port")

var listenTCP = net.Listen

// listenFree binds the first port in [start, start+limit) that accepts a listener.
func listenFree(start, limit int) (net.Listener, error) {
	var lastErr error
	end := start + limit
	for port := start; port < end && port <= 65535; port++ {
		l, err := listenTCP("tcp", ":"+strconv.Itoa(port))
		if err == nil {
			return l, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w in %d-%d: %v", errNoFreePort, start, end-1, lastErr)
}
