//go:build !(linux || darwin || freebsd)

package p11dl

// Native would open shared libraries, but isn't supported on this platform.
type Native struct{}

var _ Loader = Native{}

// Open always fails with ErrUnsupportedPlatform.
func (Native) Open(path string) (Module, error) {
	return nil, &OpenError{Path: path, Err: ErrUnsupportedPlatform}
}
