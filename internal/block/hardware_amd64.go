//go:build amd64

package block

import "golang.org/x/sys/cpu"

// detectHardware requires both AES-NI and SSE4.1 per spec section 4.5
// ("enable hardware mode only if both AES and SSE4.1 ... are available").
func detectHardware() bool {
	return cpu.X86.HasAES && cpu.X86.HasSSE41
}

//go:noescape
func encryptBlockAsm(dst, src *byte, roundKeys *byte, rounds int)

//go:noescape
func decryptBlockAsm(dst, src *byte, roundKeys *byte, rounds int)

// encryptHardware runs the AES-NI forward round sequence: rk is (rounds+1)
// concatenated 16-byte round keys in the same byte order the portable
// path adds them in.
func encryptHardware(dst, src, rk []byte, rounds int) {
	encryptBlockAsm(&dst[0], &src[0], &rk[0], rounds)
}

// decryptHardware runs the AES-NI equivalent-inverse-cipher round
// sequence. rk must already carry InvMixColumns on its middle round keys
// (keyschedule.Schedule.Inverse does this), which is exactly the round
// key shape AESDEC expects.
func decryptHardware(dst, src, rk []byte, rounds int) {
	decryptBlockAsm(&dst[0], &src[0], &rk[0], rounds)
}
