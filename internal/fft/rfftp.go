package fft

import (
	"github.com/MeKo-Christian/algo-pocketfft/internal/fftypes"
	"github.com/MeKo-Christian/algo-pocketfft/internal/mem"
)

// rfctdata describes one factor of a real plan. Twiddles are stored as
// interleaved (cos, sin) real pairs; tws holds the 2*fct DFT-of-unity
// values needed by the generic kernels for factors above 5.
type rfctdata[T fftypes.Float] struct {
	fct     int
	tw, tws []T
}

// RPlan is a real-valued mixed-radix plan producing and consuming the
// packed spectrum layout: X[0].re at index 0, (X[k].re, X[k].im) at
// indices 2k-1, 2k, and for even lengths X[n/2].re at index n-1. It is
// immutable after construction.
type RPlan[T fftypes.Float] struct {
	length     int
	fct        []rfctdata[T]
	mem        []T
	memBacking []byte
}

// NewRPlan factorizes n and precomputes the half-period twiddles into a
// single aligned buffer.
func NewRPlan[T fftypes.Float](n int) (*RPlan[T], error) {
	if n == 0 {
		return nil, ErrInvalidLength
	}

	p := &RPlan[T]{length: n}
	if n == 1 {
		return p, nil
	}

	if err := p.factorize(); err != nil {
		return nil, err
	}

	p.mem, p.memBacking = mem.Aligned[T](p.twSize())
	p.compTwiddle()

	return p, nil
}

// Length returns the transform length.
func (p *RPlan[T]) Length() int { return p.length }

func (p *RPlan[T]) factorize() error {
	facts, err := factorizeLength(p.length)
	if err != nil {
		return err
	}

	p.fct = make([]rfctdata[T], len(facts))
	for i, f := range facts {
		p.fct[i].fct = f
	}

	return nil
}

func (p *RPlan[T]) twSize() int {
	twsize, l1 := 0, 1

	for k := range p.fct {
		ip := p.fct[k].fct
		ido := p.length / (l1 * ip)
		twsize += (ip - 1) * (ido - 1)

		if ip > 5 {
			twsize += 2 * ip
		}

		l1 *= ip
	}

	return twsize
}

func (p *RPlan[T]) compTwiddle() {
	twid := newSinCos2PiByN(p.length, true)
	l1, ofs := 1, 0
	nfct := len(p.fct)

	for k := range p.fct {
		ip := p.fct[k].fct
		ido := p.length / (l1 * ip)

		if k < nfct-1 { // last factor doesn't need twiddles
			p.fct[k].tw = p.mem[ofs : ofs+(ip-1)*(ido-1)]
			ofs += (ip - 1) * (ido - 1)

			for j := 1; j < ip; j++ {
				for i := 1; i <= (ido-1)/2; i++ {
					p.fct[k].tw[(j-1)*(ido-1)+2*i-2] = T(twid.at(2 * j * l1 * i))
					p.fct[k].tw[(j-1)*(ido-1)+2*i-1] = T(twid.at(2*j*l1*i + 1))
				}
			}
		}

		if ip > 5 { // special factors required by the generic kernels
			p.fct[k].tws = p.mem[ofs : ofs+2*ip]
			ofs += 2 * ip

			p.fct[k].tws[0] = 1
			p.fct[k].tws[1] = 0

			for i := 1; i <= ip>>1; i++ {
				p.fct[k].tws[2*i] = T(twid.at(2 * i * (p.length / ip)))
				p.fct[k].tws[2*i+1] = T(twid.at(2*i*(p.length/ip) + 1))
				p.fct[k].tws[2*(ip-i)] = p.fct[k].tws[2*i]
				p.fct[k].tws[2*(ip-i)+1] = -p.fct[k].tws[2*i+1]
			}
		}

		l1 *= ip
	}
}

// Forward transforms c in place to the packed spectrum layout and
// multiplies the result by fct. Factors run in reverse order, so the
// largest stage is outermost.
func (p *RPlan[T]) Forward(c []T, fct T) {
	if p.length == 1 {
		c[0] *= fct

		return
	}

	n := p.length
	l1, nf := n, len(p.fct)
	ch, _ := mem.Aligned[T](n)
	p1, p2 := c, ch

	for k1 := 0; k1 < nf; k1++ {
		k := nf - k1 - 1
		ip := p.fct[k].fct
		ido := n / l1
		l1 /= ip

		switch ip {
		case 4:
			radf4(ido, l1, p1, p2, p.fct[k].tw)
		case 2:
			radf2(ido, l1, p1, p2, p.fct[k].tw)
		case 3:
			radf3(ido, l1, p1, p2, p.fct[k].tw)
		case 5:
			radf5(ido, l1, p1, p2, p.fct[k].tw)
		default:
			// radfg leaves its result in the input buffer
			radfg(ido, ip, l1, p1, p2, p.fct[k].tw, p.fct[k].tws)
			p1, p2 = p2, p1
		}

		p1, p2 = p2, p1
	}

	copyAndNorm(c, p1, n, fct)
}

// Backward consumes the packed spectrum layout in place and multiplies
// the result by fct.
func (p *RPlan[T]) Backward(c []T, fct T) {
	if p.length == 1 {
		c[0] *= fct

		return
	}

	n := p.length
	l1, nf := 1, len(p.fct)
	ch, _ := mem.Aligned[T](n)
	p1, p2 := c, ch

	for k := 0; k < nf; k++ {
		ip := p.fct[k].fct
		ido := n / (ip * l1)

		switch ip {
		case 4:
			radb4(ido, l1, p1, p2, p.fct[k].tw)
		case 2:
			radb2(ido, l1, p1, p2, p.fct[k].tw)
		case 3:
			radb3(ido, l1, p1, p2, p.fct[k].tw)
		case 5:
			radb5(ido, l1, p1, p2, p.fct[k].tw)
		default:
			radbg(ido, ip, l1, p1, p2, p.fct[k].tw, p.fct[k].tws)
		}

		p1, p2 = p2, p1
		l1 *= ip
	}

	copyAndNorm(c, p1, n, fct)
}

func copyAndNorm[T fftypes.Float](c, p1 []T, n int, fct T) {
	if &p1[0] != &c[0] {
		if fct != 1 {
			for i := 0; i < n; i++ {
				c[i] = fct * p1[i]
			}
		} else {
			copy(c, p1[:n])
		}

		return
	}

	if fct != 1 {
		for i := 0; i < n; i++ {
			c[i] *= fct
		}
	}
}

// The forward kernels view cc as (ido, l1, ip) in the order
// a + ido*(b + l1*c) and ch as (ido, cdim, l1) in the order
// a + ido*(b + cdim*c); the backward kernels swap the two. Each kernel
// has a purely real i=0 segment feeding the header/trailer of the packed
// layout and an interior segment doing complex arithmetic on real pairs.

func radf2[T fftypes.Float](ido, l1 int, cc, ch, wa []T) {
	const cdim = 2

	for k := 0; k < l1; k++ {
		ch[ido*cdim*k] = cc[ido*k] + cc[ido*(k+l1)]
		ch[ido-1+ido*(1+cdim*k)] = cc[ido*k] - cc[ido*(k+l1)]
	}

	if ido&1 == 0 {
		for k := 0; k < l1; k++ {
			ch[ido*(1+cdim*k)] = -cc[ido-1+ido*(k+l1)]
			ch[ido-1+ido*cdim*k] = cc[ido-1+ido*k]
		}
	}

	if ido <= 2 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			wr, wi := wa[i-2], wa[i-1]
			tr2 := wr*cc[i-1+ido*(k+l1)] + wi*cc[i+ido*(k+l1)]
			ti2 := wr*cc[i+ido*(k+l1)] - wi*cc[i-1+ido*(k+l1)]
			ch[i-1+ido*cdim*k] = cc[i-1+ido*k] + tr2
			ch[ic-1+ido*(1+cdim*k)] = cc[i-1+ido*k] - tr2
			ch[i+ido*cdim*k] = ti2 + cc[i+ido*k]
			ch[ic+ido*(1+cdim*k)] = ti2 - cc[i+ido*k]
		}
	}
}

func radf3[T fftypes.Float](ido, l1 int, cc, ch, wa []T) {
	const cdim = 3

	taur := T(-0.5)
	taui := T(0.86602540378443864676)

	for k := 0; k < l1; k++ {
		cr2 := cc[ido*(k+l1)] + cc[ido*(k+2*l1)]
		ch[ido*cdim*k] = cc[ido*k] + cr2
		ch[ido*(2+cdim*k)] = taui * (cc[ido*(k+2*l1)] - cc[ido*(k+l1)])
		ch[ido-1+ido*(1+cdim*k)] = cc[ido*k] + taur*cr2
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			w1r, w1i := wa[i-2], wa[i-1]
			w2r, w2i := wa[i-2+(ido-1)], wa[i-1+(ido-1)]
			dr2 := w1r*cc[i-1+ido*(k+l1)] + w1i*cc[i+ido*(k+l1)]
			di2 := w1r*cc[i+ido*(k+l1)] - w1i*cc[i-1+ido*(k+l1)]
			dr3 := w2r*cc[i-1+ido*(k+2*l1)] + w2i*cc[i+ido*(k+2*l1)]
			di3 := w2r*cc[i+ido*(k+2*l1)] - w2i*cc[i-1+ido*(k+2*l1)]
			cr2 := dr2 + dr3
			ci2 := di2 + di3
			ch[i-1+ido*cdim*k] = cc[i-1+ido*k] + cr2
			ch[i+ido*cdim*k] = cc[i+ido*k] + ci2
			tr2 := cc[i-1+ido*k] + taur*cr2
			ti2 := cc[i+ido*k] + taur*ci2
			tr3 := taui * (di2 - di3)
			ti3 := taui * (dr3 - dr2)
			ch[i-1+ido*(2+cdim*k)] = tr2 + tr3
			ch[ic-1+ido*(1+cdim*k)] = tr2 - tr3
			ch[i+ido*(2+cdim*k)] = ti3 + ti2
			ch[ic+ido*(1+cdim*k)] = ti3 - ti2
		}
	}
}

func radf4[T fftypes.Float](ido, l1 int, cc, ch, wa []T) {
	const cdim = 4

	hsqt2 := T(0.70710678118654752440)

	for k := 0; k < l1; k++ {
		tr1 := cc[ido*(k+3*l1)] + cc[ido*(k+l1)]
		ch[ido*(2+cdim*k)] = cc[ido*(k+3*l1)] - cc[ido*(k+l1)]
		tr2 := cc[ido*k] + cc[ido*(k+2*l1)]
		ch[ido-1+ido*(1+cdim*k)] = cc[ido*k] - cc[ido*(k+2*l1)]
		ch[ido*cdim*k] = tr2 + tr1
		ch[ido-1+ido*(3+cdim*k)] = tr2 - tr1
	}

	if ido&1 == 0 {
		for k := 0; k < l1; k++ {
			ti1 := -hsqt2 * (cc[ido-1+ido*(k+l1)] + cc[ido-1+ido*(k+3*l1)])
			tr1 := hsqt2 * (cc[ido-1+ido*(k+l1)] - cc[ido-1+ido*(k+3*l1)])
			ch[ido-1+ido*cdim*k] = tr1 + cc[ido-1+ido*k]
			ch[ido-1+ido*(2+cdim*k)] = cc[ido-1+ido*k] - tr1
			ch[ido*(3+cdim*k)] = ti1 + cc[ido-1+ido*(k+2*l1)]
			ch[ido*(1+cdim*k)] = ti1 - cc[ido-1+ido*(k+2*l1)]
		}
	}

	if ido <= 2 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			w1r, w1i := wa[i-2], wa[i-1]
			w2r, w2i := wa[i-2+(ido-1)], wa[i-1+(ido-1)]
			w3r, w3i := wa[i-2+2*(ido-1)], wa[i-1+2*(ido-1)]
			cr2 := w1r*cc[i-1+ido*(k+l1)] + w1i*cc[i+ido*(k+l1)]
			ci2 := w1r*cc[i+ido*(k+l1)] - w1i*cc[i-1+ido*(k+l1)]
			cr3 := w2r*cc[i-1+ido*(k+2*l1)] + w2i*cc[i+ido*(k+2*l1)]
			ci3 := w2r*cc[i+ido*(k+2*l1)] - w2i*cc[i-1+ido*(k+2*l1)]
			cr4 := w3r*cc[i-1+ido*(k+3*l1)] + w3i*cc[i+ido*(k+3*l1)]
			ci4 := w3r*cc[i+ido*(k+3*l1)] - w3i*cc[i-1+ido*(k+3*l1)]
			tr1 := cr4 + cr2
			tr4 := cr4 - cr2
			ti1 := ci2 + ci4
			ti4 := ci2 - ci4
			tr2 := cc[i-1+ido*k] + cr3
			tr3 := cc[i-1+ido*k] - cr3
			ti2 := cc[i+ido*k] + ci3
			ti3 := cc[i+ido*k] - ci3
			ch[i-1+ido*cdim*k] = tr2 + tr1
			ch[ic-1+ido*(3+cdim*k)] = tr2 - tr1
			ch[i+ido*cdim*k] = ti1 + ti2
			ch[ic+ido*(3+cdim*k)] = ti1 - ti2
			ch[i-1+ido*(2+cdim*k)] = tr3 + ti4
			ch[ic-1+ido*(1+cdim*k)] = tr3 - ti4
			ch[i+ido*(2+cdim*k)] = tr4 + ti3
			ch[ic+ido*(1+cdim*k)] = tr4 - ti3
		}
	}
}

func radf5[T fftypes.Float](ido, l1 int, cc, ch, wa []T) {
	const cdim = 5

	tr11 := T(0.3090169943749474241)
	ti11 := T(0.95105651629515357212)
	tr12 := T(-0.8090169943749474241)
	ti12 := T(0.58778525229247312917)

	for k := 0; k < l1; k++ {
		cr2 := cc[ido*(k+4*l1)] + cc[ido*(k+l1)]
		ci5 := cc[ido*(k+4*l1)] - cc[ido*(k+l1)]
		cr3 := cc[ido*(k+3*l1)] + cc[ido*(k+2*l1)]
		ci4 := cc[ido*(k+3*l1)] - cc[ido*(k+2*l1)]
		ch[ido*cdim*k] = cc[ido*k] + cr2 + cr3
		ch[ido-1+ido*(1+cdim*k)] = cc[ido*k] + tr11*cr2 + tr12*cr3
		ch[ido*(2+cdim*k)] = ti11*ci5 + ti12*ci4
		ch[ido-1+ido*(3+cdim*k)] = cc[ido*k] + tr12*cr2 + tr11*cr3
		ch[ido*(4+cdim*k)] = ti12*ci5 - ti11*ci4
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			w1r, w1i := wa[i-2], wa[i-1]
			w2r, w2i := wa[i-2+(ido-1)], wa[i-1+(ido-1)]
			w3r, w3i := wa[i-2+2*(ido-1)], wa[i-1+2*(ido-1)]
			w4r, w4i := wa[i-2+3*(ido-1)], wa[i-1+3*(ido-1)]
			dr2 := w1r*cc[i-1+ido*(k+l1)] + w1i*cc[i+ido*(k+l1)]
			di2 := w1r*cc[i+ido*(k+l1)] - w1i*cc[i-1+ido*(k+l1)]
			dr3 := w2r*cc[i-1+ido*(k+2*l1)] + w2i*cc[i+ido*(k+2*l1)]
			di3 := w2r*cc[i+ido*(k+2*l1)] - w2i*cc[i-1+ido*(k+2*l1)]
			dr4 := w3r*cc[i-1+ido*(k+3*l1)] + w3i*cc[i+ido*(k+3*l1)]
			di4 := w3r*cc[i+ido*(k+3*l1)] - w3i*cc[i-1+ido*(k+3*l1)]
			dr5 := w4r*cc[i-1+ido*(k+4*l1)] + w4i*cc[i+ido*(k+4*l1)]
			di5 := w4r*cc[i+ido*(k+4*l1)] - w4i*cc[i-1+ido*(k+4*l1)]
			cr2 := dr5 + dr2
			ci5 := dr5 - dr2
			ci2 := di2 + di5
			cr5 := di2 - di5
			cr3 := dr4 + dr3
			ci4 := dr4 - dr3
			ci3 := di3 + di4
			cr4 := di3 - di4
			ch[i-1+ido*cdim*k] = cc[i-1+ido*k] + cr2 + cr3
			ch[i+ido*cdim*k] = cc[i+ido*k] + ci2 + ci3
			tr2 := cc[i-1+ido*k] + tr11*cr2 + tr12*cr3
			ti2 := cc[i+ido*k] + tr11*ci2 + tr12*ci3
			tr3 := cc[i-1+ido*k] + tr12*cr2 + tr11*cr3
			ti3 := cc[i+ido*k] + tr12*ci2 + tr11*ci3
			tr5 := cr5*ti11 + cr4*ti12
			tr4 := cr5*ti12 - cr4*ti11
			ti5 := ci5*ti11 + ci4*ti12
			ti4 := ci5*ti12 - ci4*ti11
			ch[i-1+ido*(2+cdim*k)] = tr2 + tr5
			ch[ic-1+ido*(1+cdim*k)] = tr2 - tr5
			ch[i+ido*(2+cdim*k)] = ti5 + ti2
			ch[ic+ido*(1+cdim*k)] = ti5 - ti2
			ch[i-1+ido*(4+cdim*k)] = tr3 + tr4
			ch[ic-1+ido*(3+cdim*k)] = tr3 - tr4
			ch[i+ido*(4+cdim*k)] = ti4 + ti3
			ch[ic+ido*(3+cdim*k)] = ti4 - ti3
		}
	}
}

// radfg is the generic forward kernel. It works in place across both
// buffers and, unlike the hardcoded kernels, leaves its result in cc.
func radfg[T fftypes.Float](ido, ip, l1 int, cc, ch, wa, csarr []T) {
	cdim := ip
	ipph := (ip + 1) / 2
	idl1 := ido * l1

	if ido > 1 {
		for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
			is := (j - 1) * (ido - 1)
			is2 := (jc - 1) * (ido - 1)

			for k := 0; k < l1; k++ {
				idij := is
				idij2 := is2

				for i := 1; i <= ido-2; i += 2 {
					t1 := cc[i+ido*(k+l1*j)]
					t2 := cc[i+1+ido*(k+l1*j)]
					t3 := cc[i+ido*(k+l1*jc)]
					t4 := cc[i+1+ido*(k+l1*jc)]
					x1 := wa[idij]*t1 + wa[idij+1]*t2
					x2 := wa[idij]*t2 - wa[idij+1]*t1
					x3 := wa[idij2]*t3 + wa[idij2+1]*t4
					x4 := wa[idij2]*t4 - wa[idij2+1]*t3
					cc[i+ido*(k+l1*j)] = x1 + x3
					cc[i+ido*(k+l1*jc)] = x2 - x4
					cc[i+1+ido*(k+l1*j)] = x2 + x4
					cc[i+1+ido*(k+l1*jc)] = x3 - x1
					idij += 2
					idij2 += 2
				}
			}
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			t1 := cc[ido*(k+l1*j)]
			t2 := cc[ido*(k+l1*jc)]
			cc[ido*(k+l1*j)] = t1 + t2
			cc[ido*(k+l1*jc)] = t2 - t1
		}
	}

	for l, lc := 1, ip-1; l < ipph; l, lc = l+1, lc-1 {
		for ik := 0; ik < idl1; ik++ {
			ch[ik+idl1*l] = cc[ik] + csarr[2*l]*cc[ik+idl1] + csarr[4*l]*cc[ik+2*idl1]
			ch[ik+idl1*lc] = csarr[2*l+1]*cc[ik+idl1*(ip-1)] + csarr[4*l+1]*cc[ik+idl1*(ip-2)]
		}

		iang := 2 * l
		j, jc := 3, ip-3

		for ; j < ipph-3; j, jc = j+4, jc-4 {
			iang += l
			if iang >= ip {
				iang -= ip
			}

			ar1, ai1 := csarr[2*iang], csarr[2*iang+1]

			iang += l
			if iang >= ip {
				iang -= ip
			}

			ar2, ai2 := csarr[2*iang], csarr[2*iang+1]

			iang += l
			if iang >= ip {
				iang -= ip
			}

			ar3, ai3 := csarr[2*iang], csarr[2*iang+1]

			iang += l
			if iang >= ip {
				iang -= ip
			}

			ar4, ai4 := csarr[2*iang], csarr[2*iang+1]

			for ik := 0; ik < idl1; ik++ {
				ch[ik+idl1*l] += ar1*cc[ik+idl1*j] + ar2*cc[ik+idl1*(j+1)] +
					ar3*cc[ik+idl1*(j+2)] + ar4*cc[ik+idl1*(j+3)]
				ch[ik+idl1*lc] += ai1*cc[ik+idl1*jc] + ai2*cc[ik+idl1*(jc-1)] +
					ai3*cc[ik+idl1*(jc-2)] + ai4*cc[ik+idl1*(jc-3)]
			}
		}

		for ; j < ipph-1; j, jc = j+2, jc-2 {
			iang += l
			if iang >= ip {
				iang -= ip
			}

			ar1, ai1 := csarr[2*iang], csarr[2*iang+1]

			iang += l
			if iang >= ip {
				iang -= ip
			}

			ar2, ai2 := csarr[2*iang], csarr[2*iang+1]

			for ik := 0; ik < idl1; ik++ {
				ch[ik+idl1*l] += ar1*cc[ik+idl1*j] + ar2*cc[ik+idl1*(j+1)]
				ch[ik+idl1*lc] += ai1*cc[ik+idl1*jc] + ai2*cc[ik+idl1*(jc-1)]
			}
		}

		for ; j < ipph; j, jc = j+1, jc-1 {
			iang += l
			if iang >= ip {
				iang -= ip
			}

			ar, ai := csarr[2*iang], csarr[2*iang+1]

			for ik := 0; ik < idl1; ik++ {
				ch[ik+idl1*l] += ar * cc[ik+idl1*j]
				ch[ik+idl1*lc] += ai * cc[ik+idl1*jc]
			}
		}
	}

	for ik := 0; ik < idl1; ik++ {
		ch[ik] = cc[ik]
	}

	for j := 1; j < ipph; j++ {
		for ik := 0; ik < idl1; ik++ {
			ch[ik] += cc[ik+idl1*j]
		}
	}

	// pack the accumulated columns into the real spectrum order
	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			cc[i+ido*cdim*k] = ch[i+ido*k]
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		j2 := 2*j - 1

		for k := 0; k < l1; k++ {
			cc[ido-1+ido*(j2+cdim*k)] = ch[ido*(k+l1*j)]
			cc[ido*(j2+1+cdim*k)] = ch[ido*(k+l1*jc)]
		}
	}

	if ido == 1 {
		return
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		j2 := 2*j - 1

		for k := 0; k < l1; k++ {
			for i, ic := 1, ido-3; i <= ido-2; i, ic = i+2, ic-2 {
				cc[i+ido*(j2+1+cdim*k)] = ch[i+ido*(k+l1*j)] + ch[i+ido*(k+l1*jc)]
				cc[ic+ido*(j2+cdim*k)] = ch[i+ido*(k+l1*j)] - ch[i+ido*(k+l1*jc)]
				cc[i+1+ido*(j2+1+cdim*k)] = ch[i+1+ido*(k+l1*j)] + ch[i+1+ido*(k+l1*jc)]
				cc[ic+1+ido*(j2+cdim*k)] = ch[i+1+ido*(k+l1*jc)] - ch[i+1+ido*(k+l1*j)]
			}
		}
	}
}

func radb2[T fftypes.Float](ido, l1 int, cc, ch, wa []T) {
	const cdim = 2

	for k := 0; k < l1; k++ {
		ch[ido*k] = cc[ido*cdim*k] + cc[ido-1+ido*(1+cdim*k)]
		ch[ido*(k+l1)] = cc[ido*cdim*k] - cc[ido-1+ido*(1+cdim*k)]
	}

	if ido&1 == 0 {
		for k := 0; k < l1; k++ {
			ch[ido-1+ido*k] = 2 * cc[ido-1+ido*cdim*k]
			ch[ido-1+ido*(k+l1)] = -2 * cc[ido*(1+cdim*k)]
		}
	}

	if ido <= 2 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			ch[i-1+ido*k] = cc[i-1+ido*cdim*k] + cc[ic-1+ido*(1+cdim*k)]
			tr2 := cc[i-1+ido*cdim*k] - cc[ic-1+ido*(1+cdim*k)]
			ti2 := cc[i+ido*cdim*k] + cc[ic+ido*(1+cdim*k)]
			ch[i+ido*k] = cc[i+ido*cdim*k] - cc[ic+ido*(1+cdim*k)]
			wr, wi := wa[i-2], wa[i-1]
			ch[i+ido*(k+l1)] = wr*ti2 + wi*tr2
			ch[i-1+ido*(k+l1)] = wr*tr2 - wi*ti2
		}
	}
}

func radb3[T fftypes.Float](ido, l1 int, cc, ch, wa []T) {
	const cdim = 3

	taur := T(-0.5)
	taui := T(0.86602540378443864676)

	for k := 0; k < l1; k++ {
		tr2 := 2 * cc[ido-1+ido*(1+cdim*k)]
		cr2 := cc[ido*cdim*k] + taur*tr2
		ch[ido*k] = cc[ido*cdim*k] + tr2
		ci3 := 2 * taui * cc[ido*(2+cdim*k)]
		ch[ido*(k+2*l1)] = cr2 + ci3
		ch[ido*(k+l1)] = cr2 - ci3
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			tr2 := cc[i-1+ido*(2+cdim*k)] + cc[ic-1+ido*(1+cdim*k)]
			ti2 := cc[i+ido*(2+cdim*k)] - cc[ic+ido*(1+cdim*k)]
			cr2 := cc[i-1+ido*cdim*k] + taur*tr2
			ci2 := cc[i+ido*cdim*k] + taur*ti2
			ch[i-1+ido*k] = cc[i-1+ido*cdim*k] + tr2
			ch[i+ido*k] = cc[i+ido*cdim*k] + ti2
			cr3 := taui * (cc[i-1+ido*(2+cdim*k)] - cc[ic-1+ido*(1+cdim*k)])
			ci3 := taui * (cc[i+ido*(2+cdim*k)] + cc[ic+ido*(1+cdim*k)])
			dr3 := cr2 + ci3
			dr2 := cr2 - ci3
			di2 := ci2 + cr3
			di3 := ci2 - cr3
			w1r, w1i := wa[i-2], wa[i-1]
			w2r, w2i := wa[i-2+(ido-1)], wa[i-1+(ido-1)]
			ch[i+ido*(k+l1)] = w1r*di2 + w1i*dr2
			ch[i-1+ido*(k+l1)] = w1r*dr2 - w1i*di2
			ch[i+ido*(k+2*l1)] = w2r*di3 + w2i*dr3
			ch[i-1+ido*(k+2*l1)] = w2r*dr3 - w2i*di3
		}
	}
}

func radb4[T fftypes.Float](ido, l1 int, cc, ch, wa []T) {
	const cdim = 4

	sqrt2 := T(1.41421356237309504880)

	for k := 0; k < l1; k++ {
		tr2 := cc[ido*cdim*k] + cc[ido-1+ido*(3+cdim*k)]
		tr1 := cc[ido*cdim*k] - cc[ido-1+ido*(3+cdim*k)]
		tr3 := 2 * cc[ido-1+ido*(1+cdim*k)]
		tr4 := 2 * cc[ido*(2+cdim*k)]
		ch[ido*k] = tr2 + tr3
		ch[ido*(k+2*l1)] = tr2 - tr3
		ch[ido*(k+3*l1)] = tr1 + tr4
		ch[ido*(k+l1)] = tr1 - tr4
	}

	if ido&1 == 0 {
		for k := 0; k < l1; k++ {
			ti1 := cc[ido*(3+cdim*k)] + cc[ido*(1+cdim*k)]
			ti2 := cc[ido*(3+cdim*k)] - cc[ido*(1+cdim*k)]
			tr2 := cc[ido-1+ido*cdim*k] + cc[ido-1+ido*(2+cdim*k)]
			tr1 := cc[ido-1+ido*cdim*k] - cc[ido-1+ido*(2+cdim*k)]
			ch[ido-1+ido*k] = tr2 + tr2
			ch[ido-1+ido*(k+l1)] = sqrt2 * (tr1 - ti1)
			ch[ido-1+ido*(k+2*l1)] = ti2 + ti2
			ch[ido-1+ido*(k+3*l1)] = -sqrt2 * (tr1 + ti1)
		}
	}

	if ido <= 2 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			tr2 := cc[i-1+ido*cdim*k] + cc[ic-1+ido*(3+cdim*k)]
			tr1 := cc[i-1+ido*cdim*k] - cc[ic-1+ido*(3+cdim*k)]
			ti1 := cc[i+ido*cdim*k] + cc[ic+ido*(3+cdim*k)]
			ti2 := cc[i+ido*cdim*k] - cc[ic+ido*(3+cdim*k)]
			tr4 := cc[i+ido*(2+cdim*k)] + cc[ic+ido*(1+cdim*k)]
			ti3 := cc[i+ido*(2+cdim*k)] - cc[ic+ido*(1+cdim*k)]
			tr3 := cc[i-1+ido*(2+cdim*k)] + cc[ic-1+ido*(1+cdim*k)]
			ti4 := cc[i-1+ido*(2+cdim*k)] - cc[ic-1+ido*(1+cdim*k)]
			ch[i-1+ido*k] = tr2 + tr3
			cr3 := tr2 - tr3
			ch[i+ido*k] = ti2 + ti3
			ci3 := ti2 - ti3
			cr4 := tr1 + tr4
			cr2 := tr1 - tr4
			ci2 := ti1 + ti4
			ci4 := ti1 - ti4
			w1r, w1i := wa[i-2], wa[i-1]
			w2r, w2i := wa[i-2+(ido-1)], wa[i-1+(ido-1)]
			w3r, w3i := wa[i-2+2*(ido-1)], wa[i-1+2*(ido-1)]
			ch[i+ido*(k+l1)] = w1r*ci2 + w1i*cr2
			ch[i-1+ido*(k+l1)] = w1r*cr2 - w1i*ci2
			ch[i+ido*(k+2*l1)] = w2r*ci3 + w2i*cr3
			ch[i-1+ido*(k+2*l1)] = w2r*cr3 - w2i*ci3
			ch[i+ido*(k+3*l1)] = w3r*ci4 + w3i*cr4
			ch[i-1+ido*(k+3*l1)] = w3r*cr4 - w3i*ci4
		}
	}
}

func radb5[T fftypes.Float](ido, l1 int, cc, ch, wa []T) {
	const cdim = 5

	tr11 := T(0.3090169943749474241)
	ti11 := T(0.95105651629515357212)
	tr12 := T(-0.8090169943749474241)
	ti12 := T(0.58778525229247312917)

	for k := 0; k < l1; k++ {
		ti5 := cc[ido*(2+cdim*k)] + cc[ido*(2+cdim*k)]
		ti4 := cc[ido*(4+cdim*k)] + cc[ido*(4+cdim*k)]
		tr2 := cc[ido-1+ido*(1+cdim*k)] + cc[ido-1+ido*(1+cdim*k)]
		tr3 := cc[ido-1+ido*(3+cdim*k)] + cc[ido-1+ido*(3+cdim*k)]
		ch[ido*k] = cc[ido*cdim*k] + tr2 + tr3
		cr2 := cc[ido*cdim*k] + tr11*tr2 + tr12*tr3
		cr3 := cc[ido*cdim*k] + tr12*tr2 + tr11*tr3
		ci5 := ti5*ti11 + ti4*ti12
		ci4 := ti5*ti12 - ti4*ti11
		ch[ido*(k+4*l1)] = cr2 + ci5
		ch[ido*(k+l1)] = cr2 - ci5
		ch[ido*(k+3*l1)] = cr3 + ci4
		ch[ido*(k+2*l1)] = cr3 - ci4
	}

	if ido == 1 {
		return
	}

	for k := 0; k < l1; k++ {
		for i := 2; i < ido; i += 2 {
			ic := ido - i
			tr2 := cc[i-1+ido*(2+cdim*k)] + cc[ic-1+ido*(1+cdim*k)]
			tr5 := cc[i-1+ido*(2+cdim*k)] - cc[ic-1+ido*(1+cdim*k)]
			ti5 := cc[i+ido*(2+cdim*k)] + cc[ic+ido*(1+cdim*k)]
			ti2 := cc[i+ido*(2+cdim*k)] - cc[ic+ido*(1+cdim*k)]
			tr3 := cc[i-1+ido*(4+cdim*k)] + cc[ic-1+ido*(3+cdim*k)]
			tr4 := cc[i-1+ido*(4+cdim*k)] - cc[ic-1+ido*(3+cdim*k)]
			ti4 := cc[i+ido*(4+cdim*k)] + cc[ic+ido*(3+cdim*k)]
			ti3 := cc[i+ido*(4+cdim*k)] - cc[ic+ido*(3+cdim*k)]
			ch[i-1+ido*k] = cc[i-1+ido*cdim*k] + tr2 + tr3
			ch[i+ido*k] = cc[i+ido*cdim*k] + ti2 + ti3
			cr2 := cc[i-1+ido*cdim*k] + tr11*tr2 + tr12*tr3
			ci2 := cc[i+ido*cdim*k] + tr11*ti2 + tr12*ti3
			cr3 := cc[i-1+ido*cdim*k] + tr12*tr2 + tr11*tr3
			ci3 := cc[i+ido*cdim*k] + tr12*ti2 + tr11*ti3
			cr5 := tr5*ti11 + tr4*ti12
			cr4 := tr5*ti12 - tr4*ti11
			ci5 := ti5*ti11 + ti4*ti12
			ci4 := ti5*ti12 - ti4*ti11
			dr4 := cr3 + ci4
			dr3 := cr3 - ci4
			di3 := ci3 + cr4
			di4 := ci3 - cr4
			dr5 := cr2 + ci5
			dr2 := cr2 - ci5
			di2 := ci2 + cr5
			di5 := ci2 - cr5
			w1r, w1i := wa[i-2], wa[i-1]
			w2r, w2i := wa[i-2+(ido-1)], wa[i-1+(ido-1)]
			w3r, w3i := wa[i-2+2*(ido-1)], wa[i-1+2*(ido-1)]
			w4r, w4i := wa[i-2+3*(ido-1)], wa[i-1+3*(ido-1)]
			ch[i+ido*(k+l1)] = w1r*di2 + w1i*dr2
			ch[i-1+ido*(k+l1)] = w1r*dr2 - w1i*di2
			ch[i+ido*(k+2*l1)] = w2r*di3 + w2i*dr3
			ch[i-1+ido*(k+2*l1)] = w2r*dr3 - w2i*di3
			ch[i+ido*(k+3*l1)] = w3r*di4 + w3i*dr4
			ch[i-1+ido*(k+3*l1)] = w3r*dr4 - w3i*di4
			ch[i+ido*(k+4*l1)] = w4r*di5 + w4i*dr5
			ch[i-1+ido*(k+4*l1)] = w4r*dr5 - w4i*di5
		}
	}
}

// radbg is the generic backward kernel; its result lands in ch like the
// hardcoded backward kernels.
func radbg[T fftypes.Float](ido, ip, l1 int, cc, ch, wa, csarr []T) {
	cdim := ip
	ipph := (ip + 1) / 2
	idl1 := ido * l1

	for k := 0; k < l1; k++ {
		for i := 0; i < ido; i++ {
			ch[i+ido*k] = cc[i+ido*cdim*k]
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		j2 := 2*j - 1

		for k := 0; k < l1; k++ {
			ch[ido*(k+l1*j)] = 2 * cc[ido-1+ido*(j2+cdim*k)]
			ch[ido*(k+l1*jc)] = 2 * cc[ido*(j2+1+cdim*k)]
		}
	}

	if ido != 1 {
		for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
			j2 := 2*j - 1

			for k := 0; k < l1; k++ {
				for i, ic := 1, ido-3; i <= ido-2; i, ic = i+2, ic-2 {
					ch[i+ido*(k+l1*j)] = cc[i+ido*(j2+1+cdim*k)] + cc[ic+ido*(j2+cdim*k)]
					ch[i+ido*(k+l1*jc)] = cc[i+ido*(j2+1+cdim*k)] - cc[ic+ido*(j2+cdim*k)]
					ch[i+1+ido*(k+l1*j)] = cc[i+1+ido*(j2+1+cdim*k)] - cc[ic+1+ido*(j2+cdim*k)]
					ch[i+1+ido*(k+l1*jc)] = cc[i+1+ido*(j2+1+cdim*k)] + cc[ic+1+ido*(j2+cdim*k)]
				}
			}
		}
	}

	for l, lc := 1, ip-1; l < ipph; l, lc = l+1, lc-1 {
		for ik := 0; ik < idl1; ik++ {
			cc[ik+idl1*l] = ch[ik] + csarr[2*l]*ch[ik+idl1] + csarr[4*l]*ch[ik+2*idl1]
			cc[ik+idl1*lc] = csarr[2*l+1]*ch[ik+idl1*(ip-1)] + csarr[4*l+1]*ch[ik+idl1*(ip-2)]
		}

		iang := 2 * l
		j, jc := 3, ip-3

		for ; j < ipph-3; j, jc = j+4, jc-4 {
			iang += l
			if iang > ip {
				iang -= ip
			}

			ar1, ai1 := csarr[2*iang], csarr[2*iang+1]

			iang += l
			if iang > ip {
				iang -= ip
			}

			ar2, ai2 := csarr[2*iang], csarr[2*iang+1]

			iang += l
			if iang > ip {
				iang -= ip
			}

			ar3, ai3 := csarr[2*iang], csarr[2*iang+1]

			iang += l
			if iang > ip {
				iang -= ip
			}

			ar4, ai4 := csarr[2*iang], csarr[2*iang+1]

			for ik := 0; ik < idl1; ik++ {
				cc[ik+idl1*l] += ar1*ch[ik+idl1*j] + ar2*ch[ik+idl1*(j+1)] +
					ar3*ch[ik+idl1*(j+2)] + ar4*ch[ik+idl1*(j+3)]
				cc[ik+idl1*lc] += ai1*ch[ik+idl1*jc] + ai2*ch[ik+idl1*(jc-1)] +
					ai3*ch[ik+idl1*(jc-2)] + ai4*ch[ik+idl1*(jc-3)]
			}
		}

		for ; j < ipph-1; j, jc = j+2, jc-2 {
			iang += l
			if iang > ip {
				iang -= ip
			}

			ar1, ai1 := csarr[2*iang], csarr[2*iang+1]

			iang += l
			if iang > ip {
				iang -= ip
			}

			ar2, ai2 := csarr[2*iang], csarr[2*iang+1]

			for ik := 0; ik < idl1; ik++ {
				cc[ik+idl1*l] += ar1*ch[ik+idl1*j] + ar2*ch[ik+idl1*(j+1)]
				cc[ik+idl1*lc] += ai1*ch[ik+idl1*jc] + ai2*ch[ik+idl1*(jc-1)]
			}
		}

		for ; j < ipph; j, jc = j+1, jc-1 {
			iang += l
			if iang > ip {
				iang -= ip
			}

			war, wai := csarr[2*iang], csarr[2*iang+1]

			for ik := 0; ik < idl1; ik++ {
				cc[ik+idl1*l] += war * ch[ik+idl1*j]
				cc[ik+idl1*lc] += wai * ch[ik+idl1*jc]
			}
		}
	}

	for j := 1; j < ipph; j++ {
		for ik := 0; ik < idl1; ik++ {
			ch[ik] += ch[ik+idl1*j]
		}
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			ch[ido*(k+l1*j)] = cc[ido*(k+l1*j)] - cc[ido*(k+l1*jc)]
			ch[ido*(k+l1*jc)] = cc[ido*(k+l1*j)] + cc[ido*(k+l1*jc)]
		}
	}

	if ido == 1 {
		return
	}

	for j, jc := 1, ip-1; j < ipph; j, jc = j+1, jc-1 {
		for k := 0; k < l1; k++ {
			for i := 1; i <= ido-2; i += 2 {
				ch[i+ido*(k+l1*j)] = cc[i+ido*(k+l1*j)] - cc[i+1+ido*(k+l1*jc)]
				ch[i+ido*(k+l1*jc)] = cc[i+ido*(k+l1*j)] + cc[i+1+ido*(k+l1*jc)]
				ch[i+1+ido*(k+l1*j)] = cc[i+1+ido*(k+l1*j)] + cc[i+ido*(k+l1*jc)]
				ch[i+1+ido*(k+l1*jc)] = cc[i+1+ido*(k+l1*j)] - cc[i+ido*(k+l1*jc)]
			}
		}
	}

	// apply the stage twiddles in place
	for j := 1; j < ip; j++ {
		is := (j - 1) * (ido - 1)

		for k := 0; k < l1; k++ {
			idij := is

			for i := 1; i <= ido-2; i += 2 {
				t1 := ch[i+ido*(k+l1*j)]
				t2 := ch[i+1+ido*(k+l1*j)]
				ch[i+ido*(k+l1*j)] = wa[idij]*t1 - wa[idij+1]*t2
				ch[i+1+ido*(k+l1*j)] = wa[idij]*t2 + wa[idij+1]*t1
				idij += 2
			}
		}
	}
}
