//go:build !unix

package stub

import "syscall"

func reuseAddrControl(network, address string, c syscall.RawConn) error {
	return nil
}
