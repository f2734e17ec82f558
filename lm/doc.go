// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lm implements damped sparse nonlinear least squares optimization
using the Levenberg-Marquardt method over a fixed Jacobian sparsity
pattern.

Given a residual function r: Rⁿ → Rᵐ and a Jacobian J with a compile-time
fixed sparse structure, lm seeks x that minimizes F(x) = ½·r(x)ᵀr(x). Unlike
gonum's own optimize/nlls, which assembles a dense JᵀJ every iteration, lm
is built for problems whose Jacobian pattern never changes across solves
(warm-started re-solves of the same structure after small parameter
perturbations): the augmented system [J; √λ·I] is assembled directly from
the fixed pattern instead of forming normal equations, which keeps the
solve well conditioned for arbitrarily small λ.

Initialize allocates a State/Workspace pair once for a Problem's pattern;
Solve may be called repeatedly against that same pair as long as the
pattern is unchanged, performing no dynamic allocation beyond the first
call.
*/
package lm
