//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() || !cpu.ARM64.HasASIMD {
		setScalarMode()
		return
	}

	currentLevel = DispatchNEON
	currentWidth = 16
	currentName = "neon"
}
