package cpu

import (
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Kernel selection flags, resolved once at process start. The wide matmul
// kernel leans on the compiler vectorizing its unrolled inner loop, which
// only pays off when the hardware has 256-bit FMA units.
var (
	hasAVX2       = cpuid.CPU.Supports(cpuid.AVX2)
	hasFMA3       = cpuid.CPU.Supports(cpuid.FMA3)
	useWideKernel = cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3)
)

// Features describes the detected CPU for lesson banners, e.g.
// "Intel(R) Xeon(R) ... (avx2 fma3)".
func Features() string {
	var flags []string
	if hasAVX2 {
		flags = append(flags, "avx2")
	}
	if hasFMA3 {
		flags = append(flags, "fma3")
	}
	if len(flags) == 0 {
		flags = append(flags, "portable")
	}

	brand := strings.TrimSpace(cpuid.CPU.BrandName)
	if brand == "" {
		brand = "unknown cpu"
	}
	return brand + " (" + strings.Join(flags, " ") + ")"
}
