// Package ack evaluates the three-argument Ackermann variant used by the
// Synacor teleporter confirmation routine.
//
// The classic two-argument Ackermann recurrence substitutes the constant 1
// where this variant substitutes a free third parameter p:
//
//	A(0, n, p) = n + 1
//	A(m, 0, p) = A(m-1, p, p)
//	A(m, n, p) = A(m-1, A(m, n-1, p), p)
//
// with every sum and product reduced modulo 32768.
package ack

import "ackgo/internal/core"

// Evaluate computes A(m, n, p) over the wrapping word domain, memoizing
// per-(m, n) results in cache. The cache is only valid for the p it was
// populated under; callers switching p must Reset it first. m must not
// exceed core.MaxM: the memo table stride assumes it.
//
// m = 0, 1 and 2 collapse to closed forms (the standard Ackermann identities
// with p in place of 1), so only m = 3 and 4 actually recurse. The deepest
// chain is the m=3 ladder of at most Modulus frames; goroutine stacks grow on
// demand, so unlike the fixed-stack environments this routine originated in,
// no stack provisioning is required.
func Evaluate(cache *Cache, m, n, p core.Word) core.Word {
	if res, ok := cache.Lookup(m, n); ok {
		return res
	}

	var res core.Word
	switch {
	case m == 0:
		res = core.AddMod(n, 1)
	case m == 1:
		// A(1, n, p) = n + p + 1.
		res = core.AddMod(n, core.AddMod(p, 1))
	case m == 2:
		// A(2, n, p) = (n+2)*p + (n+1).
		res = core.AddMod(core.MulMod(core.AddMod(n, 2), p), core.AddMod(n, 1))
	case n == 0:
		res = Evaluate(cache, m-1, p, p)
	default:
		res = Evaluate(cache, m-1, Evaluate(cache, m, n-1, p), p)
	}

	cache.Store(m, n, res)
	return res
}
