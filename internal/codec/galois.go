package codec

// gfField is a Galois field GF(2^m) represented by its exp/log tables
// against a fixed primitive element (conventionally "alpha" = 2), the
// standard tables a syndrome-based Reed-Solomon decoder is built on.
type gfField struct {
	size   int // 2^m - 1, the number of nonzero elements
	expTab []int
	logTab []int
}

func newGFField(m, prim int) *gfField {
	size := (1 << uint(m)) - 1
	f := &gfField{size: size, expTab: make([]int, size*2), logTab: make([]int, size+1)}
	x := 1
	for i := 0; i < size; i++ {
		f.expTab[i] = x
		f.logTab[x] = i
		x <<= 1
		if x > size {
			x ^= prim
		}
	}
	for i := size; i < size*2; i++ {
		f.expTab[i] = f.expTab[i-size]
	}
	return f
}

func (f *gfField) mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.expTab[f.logTab[a]+f.logTab[b]]
}

func (f *gfField) div(a, b int) int {
	if a == 0 {
		return 0
	}
	return f.expTab[f.logTab[a]-f.logTab[b]+f.size]
}

// exp returns alpha^n, n may be negative.
func (f *gfField) exp(n int) int {
	n %= f.size
	if n < 0 {
		n += f.size
	}
	return f.expTab[n]
}

// polyEval evaluates p (coefficients low-degree first, p[i] is the
// coefficient of x^i) at x via Horner's method.
func (f *gfField) polyEval(p []int, x int) int {
	y := 0
	for i := len(p) - 1; i >= 0; i-- {
		y = f.mul(y, x) ^ p[i]
	}
	return y
}

func (f *gfField) polyMul(a, b []int) []int {
	out := make([]int, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] ^= f.mul(av, bv)
		}
	}
	return out
}

// polyFormalDerivative computes d/dx of p over a field of characteristic
// 2, where i*p[i] collapses to p[i] for odd i and 0 for even i.
func (f *gfField) polyFormalDerivative(p []int) []int {
	if len(p) == 0 {
		return nil
	}
	d := make([]int, len(p)-1)
	for j := range d {
		if j%2 == 0 {
			d[j] = p[j+1]
		}
	}
	return d
}

// syndromes returns S_1..S_parity of the received word r, treated as the
// polynomial r(x) = sum r[i] x^i (r[0] lowest degree).
func (f *gfField) syndromes(r []int, parity int) []int {
	S := make([]int, parity)
	for j := 1; j <= parity; j++ {
		S[j-1] = f.polyEval(r, f.exp(j))
	}
	return S
}

// berlekampMassey finds the shortest linear feedback shift register
// generating S, i.e. the error locator polynomial sigma (sigma[0] = 1,
// coefficients low-degree first).
func (f *gfField) berlekampMassey(S []int) []int {
	C := []int{1}
	B := []int{1}
	L, m, b := 0, 1, 1

	for n := 0; n < len(S); n++ {
		delta := S[n]
		for i := 1; i <= L && i < len(C); i++ {
			delta ^= f.mul(C[i], S[n-i])
		}

		switch {
		case delta == 0:
			m++
		case 2*L <= n:
			T := append([]int(nil), C...)
			coef := f.div(delta, b)
			C = growPoly(C, len(B)+m)
			for i, bv := range B {
				C[i+m] ^= f.mul(coef, bv)
			}
			L, B, b, m = n+1-L, T, delta, 1
		default:
			coef := f.div(delta, b)
			C = growPoly(C, len(B)+m)
			for i, bv := range B {
				C[i+m] ^= f.mul(coef, bv)
			}
			m++
		}
	}
	return C[:L+1]
}

func growPoly(p []int, n int) []int {
	if n <= len(p) {
		return p
	}
	grown := make([]int, n)
	copy(grown, p)
	return grown
}

// chienSearch returns the positions i in [0,n) for which sigma(alpha^-i)
// == 0, i.e. the error locations within an n-symbol received word.
func (f *gfField) chienSearch(sigma []int, n int) []int {
	var positions []int
	for i := 0; i < n; i++ {
		if f.polyEval(sigma, f.exp(-i)) == 0 {
			positions = append(positions, i)
		}
	}
	return positions
}

// rsDecode is a syndrome/Berlekamp-Massey/Chien/Forney Reed-Solomon
// decoder: it returns the corrected word when received (message‖parity,
// narrow-sense, fcr=1) has at most parity/2 symbol errors, and
// ok=false otherwise (beyond the code's error-correcting capability, or
// an inconsistent correction that fails re-verification).
func (f *gfField) rsDecode(received []int, parity int) (ok bool, corrected []int) {
	S := f.syndromes(received, parity)
	clean := true
	for _, s := range S {
		if s != 0 {
			clean = false
			break
		}
	}
	if clean {
		return true, append([]int(nil), received...)
	}

	sigma := f.berlekampMassey(S)
	errCount := len(sigma) - 1
	if errCount == 0 || errCount > parity/2 {
		return false, nil
	}

	positions := f.chienSearch(sigma, len(received))
	if len(positions) != errCount {
		return false, nil // locator has roots outside the received word: uncorrectable
	}

	omega := f.polyMul(S, sigma)
	if len(omega) > parity {
		omega = omega[:parity]
	}
	sigmaDeriv := f.polyFormalDerivative(sigma)

	corrected = append([]int(nil), received...)
	for _, pos := range positions {
		xInv := f.exp(-pos)
		deriv := f.polyEval(sigmaDeriv, xInv)
		if deriv == 0 {
			return false, nil
		}
		corrected[pos] ^= f.div(f.polyEval(omega, xInv), deriv)
	}

	for _, s := range f.syndromes(corrected, parity) {
		if s != 0 {
			return false, nil
		}
	}
	return true, corrected
}
