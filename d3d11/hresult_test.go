// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package d3d11_test

import (
	"strings"
	"testing"

	"github.com/devblok/cubed/d3d11"
)

func TestCallErrorCarriesLiteralCode(t *testing.T) {
	codes := []d3d11.HRESULT{
		0x887A0004, // DXGI_ERROR_UNSUPPORTED
		0x887A0005, // DXGI_ERROR_DEVICE_REMOVED
		0x80004002, // E_NOINTERFACE
		0x80070057, // E_INVALIDARG
		0x8007000E, // E_OUTOFMEMORY
	}

	for _, code := range codes {
		err := d3d11.NewCallError("D3D11CreateDevice", code)
		if !strings.Contains(err.Error(), code.String()) {
			t.Errorf("message %q does not contain the literal status code %s", err.Error(), code)
		}
	}
}

func TestCallErrorNamesTheFailingCall(t *testing.T) {
	err := d3d11.NewCallError("IDXGIAdapter.GetParent(IDXGIFactory)", 0x80004002)
	if !strings.Contains(err.Error(), "IDXGIAdapter.GetParent(IDXGIFactory)") {
		t.Errorf("message %q does not identify the failing call", err.Error())
	}
}

func TestCallErrorIsTyped(t *testing.T) {
	err := d3d11.NewCallError("IDXGIFactory.CreateSwapChain", 0x887A0004)

	callErr, ok := err.(*d3d11.CallError)
	if !ok {
		t.Fatalf("expected *d3d11.CallError, got %T", err)
	}
	if callErr.Op != "IDXGIFactory.CreateSwapChain" {
		t.Errorf("unexpected op %q", callErr.Op)
	}
	if callErr.Code != 0x887A0004 {
		t.Errorf("unexpected code %s", callErr.Code)
	}
}

func TestHRESULTString(t *testing.T) {
	cases := map[d3d11.HRESULT]string{
		d3d11.OK:   "0x00000000",
		0x887A0004: "0x887A0004",
		0x8007000E: "0x8007000E",
	}

	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("HRESULT %d formats as %q, want %q", uint32(code), got, want)
		}
	}
}
