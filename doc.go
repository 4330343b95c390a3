// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timelock evaluates RSA time-lock puzzles: the value 2^(2^t) mod n for a modulus
// n = p*q of unknown factorization. Without the factors, the only known way to compute it is
// t sequential modular squarings (SequentialSquaring). The holder of the trapdoor
// phi(n) = (p-1)(q-1) computes the same value with two modular exponentiations
// (TrapdoorShortcut), independent of t.
//
// A typical measurement session generates a Modulus, checks with Verify that both
// strategies agree on it, and then invokes the PuzzleSolver implementations for various t.
// See package bench for a harness doing exactly that.
package timelock
