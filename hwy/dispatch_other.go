//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures only get the portable lane code.
	setScalarMode()
}
