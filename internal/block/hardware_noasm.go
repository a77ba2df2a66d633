//go:build !amd64

package block

// detectHardware reports no hardware acceleration on architectures this
// package has no AES-NI assembly for; the cipher then runs the portable
// path exclusively, per spec section 4.5.
func detectHardware() bool {
	return false
}

// encryptHardware/decryptHardware are never reached because
// HardwareAvailable always reports false on this build, but they are
// defined so Encrypt/Decrypt in hardware.go stay architecture-agnostic.
func encryptHardware(dst, src, rk []byte, rounds int) {
	EncryptPortable(dst, src, unpackRoundKeys(rk), rounds)
}

func decryptHardware(dst, src, rk []byte, rounds int) {
	DecryptPortable(dst, src, unpackRoundKeys(rk), rounds)
}

func unpackRoundKeys(rk []byte) []uint32 {
	words := make([]uint32, len(rk)/4)
	for i := range words {
		words[i] = uint32(rk[4*i])<<24 | uint32(rk[4*i+1])<<16 | uint32(rk[4*i+2])<<8 | uint32(rk[4*i+3])
	}
	return words
}
