package fixed

import (
	xfixed "golang.org/x/image/math/fixed"
)

// Fixed32[U6] and Fixed64[U12] share their layout with the 26.6 and 52.12
// types of golang.org/x/image/math/fixed, so values convert without
// rescaling. Note that x/image rounds products to nearest while Mul here
// truncates toward zero.

func FromInt26_6(v xfixed.Int26_6) Fixed32[U6] {
	return Fixed32[U6]{int32(v)}
}

func ToInt26_6(f Fixed32[U6]) xfixed.Int26_6 {
	return xfixed.Int26_6(f.raw)
}

func FromInt52_12(v xfixed.Int52_12) Fixed64[U12] {
	return Fixed64[U12]{int64(v)}
}

func ToInt52_12(f Fixed64[U12]) xfixed.Int52_12 {
	return xfixed.Int52_12(f.raw)
}
