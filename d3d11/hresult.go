// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package d3d11 holds thin ownership handles over the Direct3D 11 and DXGI
// COM interfaces the bootstrap needs, along with the descriptor structures
// and constants to drive them. Handles call straight into d3d11.dll, so
// everything except the error and descriptor types is Windows only.
package d3d11

import "fmt"

// HRESULT is the native status code returned by Direct3D and DXGI calls.
// Zero means success, everything else is a failure.
type HRESULT uint32

// OK is the only status the initialisation path accepts.
const OK HRESULT = 0

func (hr HRESULT) String() string {
	return fmt.Sprintf("0x%08X", uint32(hr))
}

// CallError describes a single failed native call. Op is the call that
// failed, Code the status it returned. The formatted message always
// contains the literal code so logs can be matched against the
// DXGI_ERROR tables.
type CallError struct {
	Op   string
	Code HRESULT
}

func (e *CallError) Error() string {
	return e.Op + "(): error code " + e.Code.String()
}

// NewCallError wraps a non-success status into a CallError.
func NewCallError(op string, code HRESULT) error {
	return &CallError{Op: op, Code: code}
}
