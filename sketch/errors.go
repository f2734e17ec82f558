// Copyright ©2026 The Sketchsolve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import "errors"

// ErrDirty signifies Conflicts was called while the Sketch's structure is
// dirty: the cached row spans and Problem do not describe the current
// constraint list, so a conflict report would be meaningless.
var ErrDirty = errors.New("sketch: Conflicts called with structure_dirty set; call Solve first")
