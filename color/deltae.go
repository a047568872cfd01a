package color

import "github.com/t28hub/auto-palette-sub000/numeric"

// DeltaE76 is the Euclidean distance between two Lab colors.
func DeltaE76[T numeric.Float](ref, sample Color[T]) T {
	ops := numeric.OpsFor[T]()
	dl := ref.L - sample.L
	da := ref.A - sample.A
	db := ref.B - sample.B
	return ops.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE94 uses the graphic-arts application constants (kL=1, K1=0.045,
// K2=0.015).
func DeltaE94[T numeric.Float](ref, sample Color[T]) T {
	var (
		kl = T(1)
		k1 = T(0.045)
		k2 = T(0.015)
	)
	ops := numeric.OpsFor[T]()
	c1 := ops.Sqrt(ref.A*ref.A + ref.B*ref.B)
	c2 := ops.Sqrt(sample.A*sample.A + sample.B*sample.B)
	dl := ref.L - sample.L
	dc := c1 - c2
	da := ref.A - sample.A
	db := ref.B - sample.B
	dhSq := da*da + db*db - dc*dc
	var dh T
	if dhSq > 0 {
		dh = ops.Sqrt(dhSq)
	}
	sl := T(1)
	sc := 1 + k1*c1
	sh := 1 + k2*c1
	ldl := dl / (kl * sl)
	ldc := dc / sc
	ldh := dh / sh
	return ops.Sqrt(ldl*ldl + ldc*ldc + ldh*ldh)
}

// DeltaE2000 implements CIEDE2000, including the h-bar-prime averaging rule
// and the rotation term R_T. Zero chroma short-circuits the hue delta to
// zero to avoid NaN from atan2(0,0)-derived terms.
func DeltaE2000[T numeric.Float](ref, sample Color[T]) T {
	ops := numeric.OpsFor[T]()
	var (
		kl, kc, kh = T(1), T(1), T(1)
		deg2rad    = T(3.14159265358979323846) / 180
		rad2deg    = 180 / T(3.14159265358979323846)
	)

	c1 := ops.Sqrt(ref.A*ref.A + ref.B*ref.B)
	c2 := ops.Sqrt(sample.A*sample.A + sample.B*sample.B)
	cbar := (c1 + c2) / 2

	pow7 := func(v T) T {
		v2 := v * v
		v7 := v2 * v2 * v2 * v
		return v7
	}
	g := 0.5 * (1 - ops.Sqrt(pow7(cbar)/(pow7(cbar)+pow7(T(25)))))

	a1p := ref.A * (1 + g)
	a2p := sample.A * (1 + g)

	c1p := ops.Sqrt(a1p*a1p + ref.B*ref.B)
	c2p := ops.Sqrt(a2p*a2p + sample.B*sample.B)

	hp := func(a, b T) T {
		if a == 0 && b == 0 {
			return 0
		}
		h := ops.Atan2(b, a) * rad2deg
		if h < 0 {
			h += 360
		}
		return h
	}
	h1p := hp(a1p, ref.B)
	h2p := hp(a2p, sample.B)

	dlp := sample.L - ref.L
	dcp := c2p - c1p

	var dhp T
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case ops.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dHp := 2 * ops.Sqrt(c1p*c2p) * ops.Sin(dhp*deg2rad/2)

	lbarp := (ref.L + sample.L) / 2
	cbarp := (c1p + c2p) / 2

	var hbarp T
	switch {
	case c1p*c2p == 0:
		hbarp = h1p + h2p
	case ops.Abs(h1p-h2p) <= 180:
		hbarp = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hbarp = (h1p+h2p+360)/2
	default:
		hbarp = (h1p+h2p-360)/2
	}

	t := T(1) - T(0.17)*ops.Cos((hbarp-T(30))*deg2rad) +
		T(0.24)*ops.Cos(2*hbarp*deg2rad) +
		T(0.32)*ops.Cos((3*hbarp+T(6))*deg2rad) -
		T(0.20)*ops.Cos((4*hbarp-T(63))*deg2rad)

	deltaTheta := T(30) * expNeg(ops, ((hbarp-T(275))/T(25)))
	rc := 2 * ops.Sqrt(pow7(cbarp)/(pow7(cbarp)+pow7(T(25))))

	sl := T(1) + (T(0.015)*(lbarp-T(50))*(lbarp-T(50)))/ops.Sqrt(T(20)+(lbarp-T(50))*(lbarp-T(50)))
	sc := 1 + T(0.045)*cbarp
	sh := 1 + T(0.015)*cbarp*t

	rt := -ops.Sin(2*deltaTheta*deg2rad) * rc

	ldl := dlp / (kl * sl)
	ldc := dcp / (kc * sc)
	ldh := dHp / (kh * sh)

	return ops.Sqrt(ldl*ldl + ldc*ldc + ldh*ldh + rt*ldc*ldh)
}

// expNeg computes exp(-x^2) via ops.Pow(e, -x^2), avoiding a dependency on a
// generic exp function that numeric.Ops does not expose.
func expNeg[T numeric.Float](ops numeric.Ops[T], x T) T {
	e := T(2.718281828459045)
	return ops.Pow(e, -(x * x))
}
