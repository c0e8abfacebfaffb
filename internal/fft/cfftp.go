package fft

import (
	"math"

	"github.com/MeKo-Christian/algo-pocketfft/internal/fftypes"
	"github.com/MeKo-Christian/algo-pocketfft/internal/mem"
)

// cfctdata describes one factor of a complex plan: the factor value, its
// stage twiddle block of (fct-1)*(ido-1) samples, and, for factors above
// 11, the fct DFT-of-unity coefficients consumed by the generic kernel.
type cfctdata[T fftypes.Float] struct {
	fct     int
	tw, tws []Cmplx[T]
}

// CPlan is a complex mixed-radix plan for one transform length. It is
// immutable after construction.
type CPlan[T fftypes.Float] struct {
	length     int
	fct        []cfctdata[T]
	mem        []Cmplx[T]
	memBacking []byte
}

// NewCPlan factorizes n and precomputes all stage twiddles into a single
// aligned buffer.
func NewCPlan[T fftypes.Float](n int) (*CPlan[T], error) {
	if n == 0 {
		return nil, ErrInvalidLength
	}

	p := &CPlan[T]{length: n}
	if n == 1 {
		return p, nil
	}

	if err := p.factorize(); err != nil {
		return nil, err
	}

	p.mem, p.memBacking = mem.Aligned[Cmplx[T]](p.twSize())
	p.compTwiddle()

	return p, nil
}

// Length returns the transform length.
func (p *CPlan[T]) Length() int { return p.length }

// Forward transforms c in place with the e^{-2πi...} sign convention and
// multiplies the result by fct.
func (p *CPlan[T]) Forward(c []Cmplx[T], fct T) { p.passAll(c, fct, false) }

// Backward transforms c in place with the e^{+2πi...} sign convention and
// multiplies the result by fct.
func (p *CPlan[T]) Backward(c []Cmplx[T], fct T) { p.passAll(c, fct, true) }

// factorize extracts all factors of 4 first, then a single factor of 2
// moved to the front, then odd primes in ascending order.
func (p *CPlan[T]) factorize() error {
	facts, err := factorizeLength(p.length)
	if err != nil {
		return err
	}

	p.fct = make([]cfctdata[T], len(facts))
	for i, f := range facts {
		p.fct[i].fct = f
	}

	return nil
}

// factorizeLength splits n into plan factor order: all 4s first, one 2
// moved to the front, then odd primes ascending by trial division.
func factorizeLength(n int) ([]int, error) {
	var facts []int

	add := func(f int) error {
		if len(facts) >= maxFactors {
			return ErrTooManyFactors
		}

		facts = append(facts, f)

		return nil
	}

	for n&3 == 0 {
		if err := add(4); err != nil {
			return nil, err
		}

		n >>= 2
	}

	if n&1 == 0 {
		n >>= 1
		// factor 2 belongs at the front of the factor list
		if err := add(2); err != nil {
			return nil, err
		}

		facts[0], facts[len(facts)-1] = facts[len(facts)-1], facts[0]
	}

	maxl := int(math.Sqrt(float64(n))) + 1
	for divisor := 3; n > 1 && divisor < maxl; divisor += 2 {
		if n%divisor == 0 {
			for n%divisor == 0 {
				if err := add(divisor); err != nil {
					return nil, err
				}

				n /= divisor
			}

			maxl = int(math.Sqrt(float64(n))) + 1
		}
	}

	if n > 1 {
		if err := add(n); err != nil {
			return nil, err
		}
	}

	return facts, nil
}

// twSize is the exact sample count of the twiddle buffer: per stage
// (fct-1)*(ido-1), plus fct extra coefficients when the generic kernel is
// needed.
func (p *CPlan[T]) twSize() int {
	twsize, l1 := 0, 1

	for k := range p.fct {
		ip := p.fct[k].fct
		ido := p.length / (l1 * ip)
		twsize += (ip - 1) * (ido - 1)

		if ip > 11 {
			twsize += ip
		}

		l1 *= ip
	}

	return twsize
}

// compTwiddle carves the twiddle buffer in strict factor order and fills
// stage k with exp(2πi·j·l1·i/length) for j in [1,fct), i in [1,ido).
func (p *CPlan[T]) compTwiddle() {
	twid := newSinCos2PiByN(p.length, false)
	l1, memofs := 1, 0

	for k := range p.fct {
		ip := p.fct[k].fct
		ido := p.length / (l1 * ip)

		p.fct[k].tw = p.mem[memofs : memofs+(ip-1)*(ido-1)]
		memofs += (ip - 1) * (ido - 1)

		for j := 1; j < ip; j++ {
			for i := 1; i < ido; i++ {
				p.fct[k].tw[(j-1)*(ido-1)+i-1] = Cmplx[T]{
					T(twid.at(2 * j * l1 * i)),
					T(twid.at(2*j*l1*i + 1)),
				}
			}
		}

		if ip > 11 {
			p.fct[k].tws = p.mem[memofs : memofs+ip]
			memofs += ip

			for j := 0; j < ip; j++ {
				p.fct[k].tws[j] = Cmplx[T]{
					T(twid.at(2 * j * l1 * ido)),
					T(twid.at(2*j*l1*ido + 1)),
				}
			}
		}

		l1 *= ip
	}
}

// passAll runs the stages over two ping-ponged buffers and applies the
// normalization factor at the end.
func (p *CPlan[T]) passAll(c []Cmplx[T], fct T, bwd bool) {
	if p.length == 1 {
		c[0] = c[0].scale(fct)

		return
	}

	ch, _ := mem.Aligned[Cmplx[T]](p.length)
	p1, p2 := c, ch
	inC := true
	l1 := 1

	for k1 := range p.fct {
		ip := p.fct[k1].fct
		l2 := ip * l1
		ido := p.length / l2

		switch ip {
		case 4:
			pass4(ido, l1, p1, p2, p.fct[k1].tw, bwd)
		case 2:
			pass2(ido, l1, p1, p2, p.fct[k1].tw, bwd)
		case 3:
			pass3(ido, l1, p1, p2, p.fct[k1].tw, bwd)
		case 5:
			pass5(ido, l1, p1, p2, p.fct[k1].tw, bwd)
		case 7:
			pass7(ido, l1, p1, p2, p.fct[k1].tw, bwd)
		case 11:
			pass11(ido, l1, p1, p2, p.fct[k1].tw, bwd)
		default:
			// passg leaves its result in the input buffer
			passg(ido, ip, l1, p1, p2, p.fct[k1].tw, p.fct[k1].tws, bwd)
			p1, p2 = p2, p1
			inC = !inC
		}

		p1, p2 = p2, p1
		inC = !inC
		l1 = l2
	}

	if !inC {
		if fct != 1 {
			for i := range c {
				c[i] = p1[i].scale(fct)
			}
		} else {
			copy(c, p1)
		}
	} else if fct != 1 {
		for i := range c {
			c[i] = c[i].scale(fct)
		}
	}
}

// The stage kernels below view cc as an (ido, cdim, l1) array in the
// linear order a + ido*(b + cdim*c) and ch as (ido, l1, cdim) in the
// order a + ido*(b + l1*c). Column 0 is untwiddled; columns 1..ido-1
// multiply by the stage table.

func pass2[T fftypes.Float](ido, l1 int, cc, ch, wa []Cmplx[T], bwd bool) {
	const cdim = 2

	if ido == 1 {
		for k := 0; k < l1; k++ {
			ch[k] = cc[cdim*k].add(cc[1+cdim*k])
			ch[k+l1] = cc[cdim*k].sub(cc[1+cdim*k])
		}

		return
	}

	for k := 0; k < l1; k++ {
		ch[ido*k] = cc[ido*cdim*k].add(cc[ido*(1+cdim*k)])
		ch[ido*(k+l1)] = cc[ido*cdim*k].sub(cc[ido*(1+cdim*k)])

		for i := 1; i < ido; i++ {
			ch[i+ido*k] = cc[i+ido*cdim*k].add(cc[i+ido*(1+cdim*k)])
			ch[i+ido*(k+l1)] = cc[i+ido*cdim*k].sub(cc[i+ido*(1+cdim*k)]).specialMul(wa[i-1], bwd)
		}
	}
}

func pass3[T fftypes.Float](ido, l1 int, cc, ch, wa []Cmplx[T], bwd bool) {
	const cdim = 3

	tw1r := T(-0.5)
	tw1i := T(0.86602540378443864676)

	if !bwd {
		tw1i = -tw1i
	}

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			t0 := cc[i+ido*cdim*k]
			t1, t2 := pmc(cc[i+ido*(1+cdim*k)], cc[i+ido*(2+cdim*k)])
			ch[i+ido*k] = t0.add(t1)

			ca := t0.add(t1.scale(tw1r))
			cb := t2.scale(tw1i).rot90()
			da, db := pmc(ca, cb)

			if i == 0 {
				ch[ido*(k+l1)] = da
				ch[ido*(k+2*l1)] = db
			} else {
				ch[i+ido*(k+l1)] = da.specialMul(wa[i-1], bwd)
				ch[i+ido*(k+2*l1)] = db.specialMul(wa[i-1+(ido-1)], bwd)
			}
		}
	}
}

func pass4[T fftypes.Float](ido, l1 int, cc, ch, wa []Cmplx[T], bwd bool) {
	const cdim = 4

	rot := func(a Cmplx[T]) Cmplx[T] {
		if bwd {
			return a.rot90()
		}

		return a.rotM90()
	}

	if ido == 1 {
		for k := 0; k < l1; k++ {
			t2, t1 := pmc(cc[cdim*k], cc[2+cdim*k])
			t3, t4 := pmc(cc[1+cdim*k], cc[3+cdim*k])
			t4 = rot(t4)
			ch[k], ch[k+2*l1] = pmc(t2, t3)
			ch[k+l1], ch[k+3*l1] = pmc(t1, t4)
		}

		return
	}

	for k := 0; k < l1; k++ {
		{
			t2, t1 := pmc(cc[ido*cdim*k], cc[ido*(2+cdim*k)])
			t3, t4 := pmc(cc[ido*(1+cdim*k)], cc[ido*(3+cdim*k)])
			t4 = rot(t4)
			ch[ido*k], ch[ido*(k+2*l1)] = pmc(t2, t3)
			ch[ido*(k+l1)], ch[ido*(k+3*l1)] = pmc(t1, t4)
		}

		for i := 1; i < ido; i++ {
			cc0 := cc[i+ido*cdim*k]
			cc1 := cc[i+ido*(1+cdim*k)]
			cc2 := cc[i+ido*(2+cdim*k)]
			cc3 := cc[i+ido*(3+cdim*k)]

			t2, t1 := pmc(cc0, cc2)
			t3, t4 := pmc(cc1, cc3)
			t4 = rot(t4)

			var c2, c3, c4 Cmplx[T]
			ch[i+ido*k], c3 = pmc(t2, t3)
			c2, c4 = pmc(t1, t4)
			ch[i+ido*(k+l1)] = c2.specialMul(wa[i-1], bwd)
			ch[i+ido*(k+2*l1)] = c3.specialMul(wa[i-1+(ido-1)], bwd)
			ch[i+ido*(k+3*l1)] = c4.specialMul(wa[i-1+2*(ido-1)], bwd)
		}
	}
}

func pass5[T fftypes.Float](ido, l1 int, cc, ch, wa []Cmplx[T], bwd bool) {
	const cdim = 5

	tw1r := T(0.3090169943749474241)
	tw1i := T(0.95105651629515357212)
	tw2r := T(-0.8090169943749474241)
	tw2i := T(0.58778525229247312917)

	if !bwd {
		tw1i, tw2i = -tw1i, -tw2i
	}

	step := func(t0, t1, t2, t3, t4 Cmplx[T], twar, twbr, twai, twbi T) (Cmplx[T], Cmplx[T]) {
		ca := Cmplx[T]{t0.R + twar*t1.R + twbr*t2.R, t0.I + twar*t1.I + twbr*t2.I}
		cb := Cmplx[T]{-(twai*t4.I + twbi*t3.I), twai*t4.R + twbi*t3.R}

		return pmc(ca, cb)
	}

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			t0 := cc[i+ido*cdim*k]
			t1, t4 := pmc(cc[i+ido*(1+cdim*k)], cc[i+ido*(4+cdim*k)])
			t2, t3 := pmc(cc[i+ido*(2+cdim*k)], cc[i+ido*(3+cdim*k)])
			ch[i+ido*k] = Cmplx[T]{t0.R + t1.R + t2.R, t0.I + t1.I + t2.I}

			d1, d4 := step(t0, t1, t2, t3, t4, tw1r, tw2r, tw1i, tw2i)
			d2, d3 := step(t0, t1, t2, t3, t4, tw2r, tw1r, tw2i, -tw1i)

			if i == 0 {
				ch[ido*(k+l1)] = d1
				ch[ido*(k+4*l1)] = d4
				ch[ido*(k+2*l1)] = d2
				ch[ido*(k+3*l1)] = d3
			} else {
				ch[i+ido*(k+l1)] = d1.specialMul(wa[i-1], bwd)
				ch[i+ido*(k+4*l1)] = d4.specialMul(wa[i-1+3*(ido-1)], bwd)
				ch[i+ido*(k+2*l1)] = d2.specialMul(wa[i-1+(ido-1)], bwd)
				ch[i+ido*(k+3*l1)] = d3.specialMul(wa[i-1+2*(ido-1)], bwd)
			}
		}
	}
}

func pass7[T fftypes.Float](ido, l1 int, cc, ch, wa []Cmplx[T], bwd bool) {
	const cdim = 7

	tw1r := T(0.623489801858733530525)
	tw1i := T(0.7818314824680298087084)
	tw2r := T(-0.222520933956314404289)
	tw2i := T(0.9749279121818236070181)
	tw3r := T(-0.9009688679024191262361)
	tw3i := T(0.4338837391175581204758)

	if !bwd {
		tw1i, tw2i, tw3i = -tw1i, -tw2i, -tw3i
	}

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			t1 := cc[i+ido*cdim*k]
			t2, t7 := pmc(cc[i+ido*(1+cdim*k)], cc[i+ido*(6+cdim*k)])
			t3, t6 := pmc(cc[i+ido*(2+cdim*k)], cc[i+ido*(5+cdim*k)])
			t4, t5 := pmc(cc[i+ido*(3+cdim*k)], cc[i+ido*(4+cdim*k)])
			ch[i+ido*k] = Cmplx[T]{t1.R + t2.R + t3.R + t4.R, t1.I + t2.I + t3.I + t4.I}

			step := func(x1, x2, x3, y1, y2, y3 T) (Cmplx[T], Cmplx[T]) {
				ca := Cmplx[T]{
					t1.R + x1*t2.R + x2*t3.R + x3*t4.R,
					t1.I + x1*t2.I + x2*t3.I + x3*t4.I,
				}
				cb := Cmplx[T]{
					-(y1*t7.I + y2*t6.I + y3*t5.I),
					y1*t7.R + y2*t6.R + y3*t5.R,
				}

				return pmc(ca, cb)
			}

			d1, d6 := step(tw1r, tw2r, tw3r, tw1i, tw2i, tw3i)
			d2, d5 := step(tw2r, tw3r, tw1r, tw2i, -tw3i, -tw1i)
			d3, d4 := step(tw3r, tw1r, tw2r, tw3i, -tw1i, tw2i)

			if i == 0 {
				ch[ido*(k+l1)] = d1
				ch[ido*(k+6*l1)] = d6
				ch[ido*(k+2*l1)] = d2
				ch[ido*(k+5*l1)] = d5
				ch[ido*(k+3*l1)] = d3
				ch[ido*(k+4*l1)] = d4
			} else {
				ch[i+ido*(k+l1)] = d1.specialMul(wa[i-1], bwd)
				ch[i+ido*(k+6*l1)] = d6.specialMul(wa[i-1+5*(ido-1)], bwd)
				ch[i+ido*(k+2*l1)] = d2.specialMul(wa[i-1+(ido-1)], bwd)
				ch[i+ido*(k+5*l1)] = d5.specialMul(wa[i-1+4*(ido-1)], bwd)
				ch[i+ido*(k+3*l1)] = d3.specialMul(wa[i-1+2*(ido-1)], bwd)
				ch[i+ido*(k+4*l1)] = d4.specialMul(wa[i-1+3*(ido-1)], bwd)
			}
		}
	}
}

func pass11[T fftypes.Float](ido, l1 int, cc, ch, wa []Cmplx[T], bwd bool) {
	const cdim = 11

	tw1r := T(0.8412535328311811688618)
	tw1i := T(0.5406408174555975821076)
	tw2r := T(0.4154150130018864255293)
	tw2i := T(0.9096319953545183714117)
	tw3r := T(-0.1423148382732851404438)
	tw3i := T(0.9898214418809327323761)
	tw4r := T(-0.6548607339452850640569)
	tw4i := T(0.755749574354258283774)
	tw5r := T(-0.9594929736144973898904)
	tw5i := T(0.2817325568414296977114)

	if !bwd {
		tw1i, tw2i, tw3i, tw4i, tw5i = -tw1i, -tw2i, -tw3i, -tw4i, -tw5i
	}

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			t1 := cc[i+ido*cdim*k]
			t2, t11 := pmc(cc[i+ido*(1+cdim*k)], cc[i+ido*(10+cdim*k)])
			t3, t10 := pmc(cc[i+ido*(2+cdim*k)], cc[i+ido*(9+cdim*k)])
			t4, t9 := pmc(cc[i+ido*(3+cdim*k)], cc[i+ido*(8+cdim*k)])
			t5, t8 := pmc(cc[i+ido*(4+cdim*k)], cc[i+ido*(7+cdim*k)])
			t6, t7 := pmc(cc[i+ido*(5+cdim*k)], cc[i+ido*(6+cdim*k)])
			ch[i+ido*k] = Cmplx[T]{
				t1.R + t2.R + t3.R + t4.R + t5.R + t6.R,
				t1.I + t2.I + t3.I + t4.I + t5.I + t6.I,
			}

			step := func(x1, x2, x3, x4, x5, y1, y2, y3, y4, y5 T) (Cmplx[T], Cmplx[T]) {
				ca := t1.add(t2.scale(x1)).add(t3.scale(x2)).add(t4.scale(x3)).
					add(t5.scale(x4)).add(t6.scale(x5))
				cb := Cmplx[T]{
					-(y1*t11.I + y2*t10.I + y3*t9.I + y4*t8.I + y5*t7.I),
					y1*t11.R + y2*t10.R + y3*t9.R + y4*t8.R + y5*t7.R,
				}

				return pmc(ca, cb)
			}

			d1, d10 := step(tw1r, tw2r, tw3r, tw4r, tw5r, tw1i, tw2i, tw3i, tw4i, tw5i)
			d2, d9 := step(tw2r, tw4r, tw5r, tw3r, tw1r, tw2i, tw4i, -tw5i, -tw3i, -tw1i)
			d3, d8 := step(tw3r, tw5r, tw2r, tw1r, tw4r, tw3i, -tw5i, -tw2i, tw1i, tw4i)
			d4, d7 := step(tw4r, tw3r, tw1r, tw5r, tw2r, tw4i, -tw3i, tw1i, tw5i, -tw2i)
			d5, d6 := step(tw5r, tw1r, tw4r, tw2r, tw3r, tw5i, -tw1i, tw4i, -tw2i, tw3i)

			if i == 0 {
				ch[ido*(k+l1)] = d1
				ch[ido*(k+10*l1)] = d10
				ch[ido*(k+2*l1)] = d2
				ch[ido*(k+9*l1)] = d9
				ch[ido*(k+3*l1)] = d3
				ch[ido*(k+8*l1)] = d8
				ch[ido*(k+4*l1)] = d4
				ch[ido*(k+7*l1)] = d7
				ch[ido*(k+5*l1)] = d5
				ch[ido*(k+6*l1)] = d6
			} else {
				ch[i+ido*(k+l1)] = d1.specialMul(wa[i-1], bwd)
				ch[i+ido*(k+10*l1)] = d10.specialMul(wa[i-1+9*(ido-1)], bwd)
				ch[i+ido*(k+2*l1)] = d2.specialMul(wa[i-1+(ido-1)], bwd)
				ch[i+ido*(k+9*l1)] = d9.specialMul(wa[i-1+8*(ido-1)], bwd)
				ch[i+ido*(k+3*l1)] = d3.specialMul(wa[i-1+2*(ido-1)], bwd)
				ch[i+ido*(k+8*l1)] = d8.specialMul(wa[i-1+7*(ido-1)], bwd)
				ch[i+ido*(k+4*l1)] = d4.specialMul(wa[i-1+3*(ido-1)], bwd)
				ch[i+ido*(k+7*l1)] = d7.specialMul(wa[i-1+6*(ido-1)], bwd)
				ch[i+ido*(k+5*l1)] = d5.specialMul(wa[i-1+4*(ido-1)], bwd)
				ch[i+ido*(k+6*l1)] = d6.specialMul(wa[i-1+5*(ido-1)], bwd)
			}
		}
	}
}

// passg is the generic radix kernel for prime factors above 11. It reads
// its DFT-of-unity coefficients from csarr, accumulates (ip+1)/2 partial
// sums through the conjugate symmetry of real-paired inputs, and leaves
// its result in cc (unlike the hardcoded kernels, which write ch).
func passg[T fftypes.Float](ido, ip, l1 int, cc, ch, wa, csarr []Cmplx[T], bwd bool) {
	cdim := ip
	ipph := (ip + 1) / 2
	idl1 := ido * l1

	wal := make([]Cmplx[T], ip)
	wal[0] = Cmplx[T]{1, 0}

	for i := 1; i < ip; i++ {
		w := csarr[i]
		if !bwd {
			w.I = -w.I
		}

		wal[i] = w
	}

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			ch[i+ido*k] = cc[i+ido*cdim*k]
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			for i := 0; i < ido; i++ {
				ch[i+ido*(k+l1*j)], ch[i+ido*(k+l1*jc)] =
					pmc(cc[i+ido*(j+cdim*k)], cc[i+ido*(jc+cdim*k)])
			}
		}
	}

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			tmp := ch[i+ido*k]
			for j := 1; j < ipph; j++ {
				tmp = tmp.add(ch[i+ido*(k+l1*j)])
			}

			cc[i+ido*k] = tmp
		}
	}

	for l, lc := 1, ip-1; l < ipph; l, lc = l+1, lc-1 {
		// j=0
		for ik := 0; ik < idl1; ik++ {
			cc[ik+idl1*l] = Cmplx[T]{
				ch[ik].R + wal[l].R*ch[ik+idl1].R + wal[2*l].R*ch[ik+2*idl1].R,
				ch[ik].I + wal[l].R*ch[ik+idl1].I + wal[2*l].R*ch[ik+2*idl1].I,
			}
			cc[ik+idl1*lc] = Cmplx[T]{
				-wal[l].I*ch[ik+idl1*(ip-1)].I - wal[2*l].I*ch[ik+idl1*(ip-2)].I,
				wal[l].I*ch[ik+idl1*(ip-1)].R + wal[2*l].I*ch[ik+idl1*(ip-2)].R,
			}
		}

		iwal := 2 * l
		j, jc := 3, ip-3

		for ; j < ipph-1; j, jc = j+2, jc-2 {
			iwal += l
			if iwal > ip {
				iwal -= ip
			}

			xwal := wal[iwal]

			iwal += l
			if iwal > ip {
				iwal -= ip
			}

			xwal2 := wal[iwal]

			for ik := 0; ik < idl1; ik++ {
				cc[ik+idl1*l].R += ch[ik+idl1*j].R*xwal.R + ch[ik+idl1*(j+1)].R*xwal2.R
				cc[ik+idl1*l].I += ch[ik+idl1*j].I*xwal.R + ch[ik+idl1*(j+1)].I*xwal2.R
				cc[ik+idl1*lc].R -= ch[ik+idl1*jc].I*xwal.I + ch[ik+idl1*(jc-1)].I*xwal2.I
				cc[ik+idl1*lc].I += ch[ik+idl1*jc].R*xwal.I + ch[ik+idl1*(jc-1)].R*xwal2.I
			}
		}

		for ; j < ipph; j, jc = j+1, jc-1 {
			iwal += l
			if iwal > ip {
				iwal -= ip
			}

			xwal := wal[iwal]

			for ik := 0; ik < idl1; ik++ {
				cc[ik+idl1*l].R += ch[ik+idl1*j].R * xwal.R
				cc[ik+idl1*l].I += ch[ik+idl1*j].I * xwal.R
				cc[ik+idl1*lc].R -= ch[ik+idl1*jc].I * xwal.I
				cc[ik+idl1*lc].I += ch[ik+idl1*jc].R * xwal.I
			}
		}
	}

	// shuffling and twiddling
	if ido == 1 {
		for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
			for ik := 0; ik < idl1; ik++ {
				cc[ik+idl1*j], cc[ik+idl1*jc] = pmc(cc[ik+idl1*j], cc[ik+idl1*jc])
			}
		}

		return
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			cc[ido*(k+l1*j)], cc[ido*(k+l1*jc)] =
				pmc(cc[ido*(k+l1*j)], cc[ido*(k+l1*jc)])

			for i := 1; i < ido; i++ {
				x1, x2 := pmc(cc[i+ido*(k+l1*j)], cc[i+ido*(k+l1*jc)])
				cc[i+ido*(k+l1*j)] = x1.specialMul(wa[(j-1)*(ido-1)+i-1], bwd)
				cc[i+ido*(k+l1*jc)] = x2.specialMul(wa[(jc-1)*(ido-1)+i-1], bwd)
			}
		}
	}
}
