//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	case cpu.X86.HasAVX:
		// 256-bit float adds and hadd are AVX, not AVX2.
		currentLevel = DispatchAVX
		currentWidth = 32
		currentName = "avx"
	case cpu.X86.HasSSE3:
		currentLevel = DispatchSSE3
		currentWidth = 16
		currentName = "sse3"
	default:
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
