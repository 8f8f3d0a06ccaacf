// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// It couples a shape header to reference-counted storage and provides:
//   - shape and type information via Shape(), DType(), Device()
//   - typed data access via AsFloat32() and AsFloat64()
//   - header cloning over shared storage via Clone()
//   - buffer-ownership queries via IsUnique()
//
// Identity matters: the gradient tape and the optimizers address
// tensors by *RawTensor pointer. Most users should use the high-level
// Tensor[T, B] type instead.
type RawTensor = tensor.RawTensor
