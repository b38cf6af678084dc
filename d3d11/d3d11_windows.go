// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package d3d11

import (
	"math"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modd3d11 = windows.NewLazySystemDLL("d3d11.dll")

	procD3D11CreateDevice = modd3d11.NewProc("D3D11CreateDevice")
)

// COM vtable slots for the interfaces below. IUnknown occupies 0-2,
// IDXGIObject 3-6, ID3D11DeviceChild 3-6.
const (
	vtblQueryInterface = 0
	vtblRelease        = 2

	vtblObjectGetParent = 6 // IDXGIObject

	vtblDeviceCreateTexture2D        = 5 // ID3D11Device
	vtblDeviceCreateRenderTargetView = 9
	vtblDeviceCreateDepthStencilView = 10

	vtblContextOMSetRenderTargets    = 33 // ID3D11DeviceContext
	vtblContextRSSetViewports        = 44
	vtblContextClearRenderTargetView = 50
	vtblContextClearDepthStencilView = 53

	vtblSwapChainPresent   = 8 // IDXGISwapChain
	vtblSwapChainGetBuffer = 9
)

// comObject is a raw COM interface pointer with vtable dispatch.
type comObject struct {
	ptr unsafe.Pointer
}

func (o comObject) method(index uintptr) uintptr {
	vtbl := *(*uintptr)(o.ptr)
	return *(*uintptr)(unsafe.Pointer(vtbl + index*unsafe.Sizeof(uintptr(0))))
}

func (o comObject) call(index uintptr, args ...uintptr) HRESULT {
	self := uintptr(o.ptr)
	var ret uintptr
	switch len(args) {
	case 0:
		ret, _, _ = syscall.Syscall(o.method(index), 1, self, 0, 0)
	case 1:
		ret, _, _ = syscall.Syscall(o.method(index), 2, self, args[0], 0)
	case 2:
		ret, _, _ = syscall.Syscall(o.method(index), 3, self, args[0], args[1])
	case 3:
		ret, _, _ = syscall.Syscall6(o.method(index), 4, self, args[0], args[1], args[2], 0, 0)
	case 4:
		ret, _, _ = syscall.Syscall6(o.method(index), 5, self, args[0], args[1], args[2], args[3], 0)
	default:
		ret, _, _ = syscall.Syscall6(o.method(index), 6, self, args[0], args[1], args[2], args[3], args[4])
	}
	return HRESULT(ret)
}

func (o comObject) queryInterface(op string, iid *GUID) (unsafe.Pointer, error) {
	var out unsafe.Pointer
	if hr := o.call(vtblQueryInterface,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)),
	); hr != OK {
		return nil, NewCallError(op, hr)
	}
	return out, nil
}

func (o comObject) getParent(op string, iid *GUID) (unsafe.Pointer, error) {
	var out unsafe.Pointer
	if hr := o.call(vtblObjectGetParent,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)),
	); hr != OK {
		return nil, NewCallError(op, hr)
	}
	return out, nil
}

// Release drops the handle's reference on the underlying COM object.
func (o comObject) Release() {
	if o.ptr != nil {
		o.call(vtblRelease)
	}
}

// Device owns an ID3D11Device: the logical connection to the GPU adapter,
// used to create every other GPU resource.
type Device struct {
	comObject
}

// DeviceContext owns an ID3D11DeviceContext. Single instance, single
// thread, matching the singlethreaded creation flag.
type DeviceContext struct {
	comObject
}

// CreateDevice creates the device and immediate context on the primary
// hardware adapter and reports the granted feature level. There is no
// retry and no fallback driver type.
func CreateDevice(flags uint32) (*Device, *DeviceContext, uint32, error) {
	var (
		device       unsafe.Pointer
		context      unsafe.Pointer
		featureLevel uint32
	)
	ret, _, _ := procD3D11CreateDevice.Call(
		0, // primary display adapter
		DriverTypeHardware,
		0, // no software rasterizer
		uintptr(flags),
		0, 0, // default feature level list
		SDKVersion,
		uintptr(unsafe.Pointer(&device)),
		uintptr(unsafe.Pointer(&featureLevel)),
		uintptr(unsafe.Pointer(&context)),
	)
	if hr := HRESULT(ret); hr != OK {
		return nil, nil, 0, NewCallError("D3D11CreateDevice", hr)
	}
	return &Device{comObject{device}}, &DeviceContext{comObject{context}}, featureLevel, nil
}

// DXGIDevice queries the device's underlying IDXGIDevice, the first step
// of the swap-chain factory discovery chain.
func (d *Device) DXGIDevice() (*DXGIDevice, error) {
	ptr, err := d.queryInterface("ID3D11Device.QueryInterface(IDXGIDevice)", &IIDIDXGIDevice)
	if err != nil {
		return nil, err
	}
	return &DXGIDevice{comObject{ptr}}, nil
}

// CreateTexture2D creates a 2D texture resource from desc.
func (d *Device) CreateTexture2D(desc *Texture2DDesc) (*Texture2D, error) {
	var out unsafe.Pointer
	if hr := d.call(vtblDeviceCreateTexture2D,
		uintptr(unsafe.Pointer(desc)),
		0, // no initial data
		uintptr(unsafe.Pointer(&out)),
	); hr != OK {
		return nil, NewCallError("ID3D11Device.CreateTexture2D", hr)
	}
	return &Texture2D{comObject{out}}, nil
}

// CreateRenderTargetView wraps resource in a render-target view with the
// format inherited from the resource.
func (d *Device) CreateRenderTargetView(resource *Texture2D) (*RenderTargetView, error) {
	var out unsafe.Pointer
	if hr := d.call(vtblDeviceCreateRenderTargetView,
		uintptr(resource.ptr),
		0, // inherit view description
		uintptr(unsafe.Pointer(&out)),
	); hr != OK {
		return nil, NewCallError("ID3D11Device.CreateRenderTargetView", hr)
	}
	return &RenderTargetView{comObject{out}}, nil
}

// CreateDepthStencilView wraps resource in a depth-stencil view with the
// format inherited from the resource.
func (d *Device) CreateDepthStencilView(resource *Texture2D) (*DepthStencilView, error) {
	var out unsafe.Pointer
	if hr := d.call(vtblDeviceCreateDepthStencilView,
		uintptr(resource.ptr),
		0, // inherit view description
		uintptr(unsafe.Pointer(&out)),
	); hr != OK {
		return nil, NewCallError("ID3D11Device.CreateDepthStencilView", hr)
	}
	return &DepthStencilView{comObject{out}}, nil
}

// DXGIDevice owns an IDXGIDevice.
type DXGIDevice struct {
	comObject
}

// Adapter walks up to the adapter the device was created on.
func (d *DXGIDevice) Adapter() (*DXGIAdapter, error) {
	ptr, err := d.getParent("IDXGIDevice.GetParent(IDXGIAdapter)", &IIDIDXGIAdapter)
	if err != nil {
		return nil, err
	}
	return &DXGIAdapter{comObject{ptr}}, nil
}

// DXGIAdapter owns an IDXGIAdapter.
type DXGIAdapter struct {
	comObject
}

// Factory walks up to the factory the adapter came from. Swap chains can
// only be created through this factory.
func (a *DXGIAdapter) Factory() (*DXGIFactory, error) {
	ptr, err := a.getParent("IDXGIAdapter.GetParent(IDXGIFactory)", &IIDIDXGIFactory)
	if err != nil {
		return nil, err
	}
	return &DXGIFactory{comObject{ptr}}, nil
}

// DXGIFactory owns an IDXGIFactory.
type DXGIFactory struct {
	comObject
}

// IDXGIFactory vtable: IDXGIObject 3-6, then EnumAdapters,
// MakeWindowAssociation, GetWindowAssociation, CreateSwapChain.
const vtblFactoryCreateSwapChain = 10

// CreateSwapChain creates the presentation surface described by desc,
// bound to desc.OutputWindow, for device.
func (f *DXGIFactory) CreateSwapChain(device *Device, desc *SwapChainDesc) (*SwapChain, error) {
	var out unsafe.Pointer
	if hr := f.call(vtblFactoryCreateSwapChain,
		uintptr(device.ptr),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&out)),
	); hr != OK {
		return nil, NewCallError("IDXGIFactory.CreateSwapChain", hr)
	}
	return &SwapChain{comObject{out}}, nil
}

// SwapChain owns an IDXGISwapChain: the front/back presentation buffers.
type SwapChain struct {
	comObject
}

// Buffer retrieves a swap-chain buffer as a 2D texture resource.
func (s *SwapChain) Buffer(index uint32) (*Texture2D, error) {
	var out unsafe.Pointer
	if hr := s.call(vtblSwapChainGetBuffer,
		uintptr(index),
		uintptr(unsafe.Pointer(&IIDID3D11Texture2D)),
		uintptr(unsafe.Pointer(&out)),
	); hr != OK {
		return nil, NewCallError("IDXGISwapChain.GetBuffer", hr)
	}
	return &Texture2D{comObject{out}}, nil
}

// Present switches the back and front buffers. The status is returned
// unwrapped: the frame loop does not check it.
func (s *SwapChain) Present(syncInterval, flags uint32) HRESULT {
	return s.call(vtblSwapChainPresent, uintptr(syncInterval), uintptr(flags))
}

// Texture2D owns an ID3D11Texture2D.
type Texture2D struct {
	comObject
}

// RenderTargetView owns an ID3D11RenderTargetView.
type RenderTargetView struct {
	comObject
}

// DepthStencilView owns an ID3D11DepthStencilView.
type DepthStencilView struct {
	comObject
}

// OMSetRenderTargets binds one render target and the depth-stencil view
// to the output-merger stage.
func (c *DeviceContext) OMSetRenderTargets(rtv *RenderTargetView, dsv *DepthStencilView) {
	target := uintptr(rtv.ptr)
	c.call(vtblContextOMSetRenderTargets,
		1,
		uintptr(unsafe.Pointer(&target)),
		uintptr(dsv.ptr),
	)
}

// RSSetViewports sets a single viewport on the rasterizer stage.
func (c *DeviceContext) RSSetViewports(viewport *Viewport) {
	c.call(vtblContextRSSetViewports,
		1,
		uintptr(unsafe.Pointer(viewport)),
	)
}

// ClearRenderTargetView clears the render target to the given RGBA color.
func (c *DeviceContext) ClearRenderTargetView(rtv *RenderTargetView, color *[4]float32) {
	c.call(vtblContextClearRenderTargetView,
		uintptr(rtv.ptr),
		uintptr(unsafe.Pointer(color)),
	)
}

// ClearDepthStencilView clears the depth-stencil buffer. The float depth
// travels through the syscall as its bit pattern.
func (c *DeviceContext) ClearDepthStencilView(dsv *DepthStencilView, flags uint32, depth float32, stencil uint8) {
	c.call(vtblContextClearDepthStencilView,
		uintptr(dsv.ptr),
		uintptr(flags),
		uintptr(math.Float32bits(depth)),
		uintptr(stencil),
	)
}
