//go:build !linux

package jhd1802

func isNoAckErrno(err error) bool {
	return false
}
