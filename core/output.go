package core

import "github.com/devblok/cubed/d3d11"

// The output path of the device is reached through a chain of capability
// queries: device -> DXGI device -> parent adapter -> parent factory.
// There is no direct create-swap-chain-from-device shortcut in the API
// model, so each relationship is queried explicitly and checked on its
// own. The chain is cut into narrow interfaces to keep the ordering
// verifiable without a GPU.

// DisplayQuerier exposes the DXGI side of a Direct3D device.
type DisplayQuerier interface {
	// DisplayDevice queries the underlying display-interface device.
	DisplayDevice() (DisplayDevice, error)
}

// DisplayDevice is the display-interface view of the device. It is only
// needed while the chain is being walked and is released afterwards.
type DisplayDevice interface {
	// Adapter returns the adapter the device was created on.
	Adapter() (DisplayAdapter, error)
	Release()
}

// DisplayAdapter is a display adapter handle.
type DisplayAdapter interface {
	// Factory returns the parent factory of the adapter.
	Factory() (DisplayFactory, error)
	Release()
}

// DisplayFactory creates presentation surfaces.
type DisplayFactory interface {
	// CreateSwapChain creates the swap chain described by desc, bound
	// to desc.OutputWindow.
	CreateSwapChain(desc *d3d11.SwapChainDesc) (SwapChainSurface, error)
	Release()
}

// SwapChainSurface is the created presentation surface.
type SwapChainSurface interface {
	// Buffer retrieves a swap-chain buffer as a texture resource.
	Buffer(index uint32) (Resource, error)
}

// Resource is a GPU resource handle.
type Resource interface {
	Release()
}

// RenderTarget is a bindable color view of a resource.
type RenderTarget interface {
	Release()
}

// DepthStencil is a bindable depth/stencil view of a resource.
type DepthStencil interface {
	Release()
}

// ViewDevice creates resources and typed views on them.
type ViewDevice interface {
	CreateTexture2D(desc *d3d11.Texture2DDesc) (Resource, error)
	CreateRenderTargetView(resource Resource) (RenderTarget, error)
	CreateDepthStencilView(resource Resource) (DepthStencil, error)
}

// OutputBinder binds views to the output-merger stage.
type OutputBinder interface {
	BindRenderTargets(rtv RenderTarget, dsv DepthStencil)
}

// DeviceFlags returns the device creation flags: single-threaded access
// always, the debug layer when requested.
func DeviceFlags(debug bool) uint32 {
	flags := uint32(d3d11.CreateDeviceSinglethreaded)
	if debug {
		flags |= d3d11.CreateDeviceDebug
	}
	return flags
}

// DefaultSwapChainDesc describes the double-buffered windowed
// presentation surface: one 8-bit RGBA back buffer, no multisampling,
// discard swap effect. Zero width and height delegate sizing to the
// output window.
func DefaultSwapChainDesc(windowHandle uintptr) d3d11.SwapChainDesc {
	return d3d11.SwapChainDesc{
		BufferDesc: d3d11.ModeDesc{
			Width:  0,
			Height: 0,
			RefreshRate: d3d11.Rational{
				Numerator:   60,
				Denominator: 1,
			},
			Format: d3d11.FormatR8G8B8A8Unorm,
		},
		SampleDesc: d3d11.SampleDesc{
			Count:   1,
			Quality: 0,
		},
		BufferUsage:  d3d11.UsageRenderTargetOutput,
		BufferCount:  1,
		OutputWindow: windowHandle,
		Windowed:     1,
		SwapEffect:   d3d11.SwapEffectDiscard,
		Flags:        0,
	}
}

// DepthStencilDesc describes the depth-stencil texture matching the
// window: 24-bit depth with 8-bit stencil, one mip level, no
// multisampling, no CPU access.
func DepthStencilDesc(width, height uint32) d3d11.Texture2DDesc {
	return d3d11.Texture2DDesc{
		Width:     width,
		Height:    height,
		MipLevels: 1,
		ArraySize: 1,
		Format:    d3d11.FormatD24UnormS8Uint,
		SampleDesc: d3d11.SampleDesc{
			Count:   1,
			Quality: 0,
		},
		Usage:          d3d11.UsageDefault,
		BindFlags:      d3d11.BindDepthStencil,
		CPUAccessFlags: 0,
		MiscFlags:      0,
	}
}

// DefaultViewport maps the full normalised depth range onto a
// window-sized pixel rectangle at the origin.
func DefaultViewport(width, height uint32) d3d11.Viewport {
	return d3d11.Viewport{
		TopLeftX: 0,
		TopLeftY: 0,
		Width:    float32(width),
		Height:   float32(height),
		MinDepth: 0,
		MaxDepth: 1,
	}
}

// ResolveFactory walks the discovery chain up to the factory. The first
// failing query aborts the walk, later queries are not attempted. The
// intermediate handles are released once the factory is obtained; the
// caller owns the factory.
func ResolveFactory(device DisplayQuerier) (DisplayFactory, error) {
	display, err := device.DisplayDevice()
	if err != nil {
		return nil, err
	}
	defer display.Release()

	adapter, err := display.Adapter()
	if err != nil {
		return nil, err
	}
	defer adapter.Release()

	return adapter.Factory()
}

// CreateOutputViews retrieves buffer 0 of the swap chain, wraps it in a
// render-target view, creates the matching depth-stencil texture and
// view, then binds exactly one render target and the depth-stencil view
// to the output-merger stage. Every native call is checked on its own.
func CreateOutputViews(device ViewDevice, swapchain SwapChainSurface, binder OutputBinder, width, height uint32) (RenderTarget, DepthStencil, error) {
	backBuffer, err := swapchain.Buffer(0)
	if err != nil {
		return nil, nil, err
	}
	defer backBuffer.Release()

	rtv, err := device.CreateRenderTargetView(backBuffer)
	if err != nil {
		return nil, nil, err
	}

	desc := DepthStencilDesc(width, height)
	depthBuffer, err := device.CreateTexture2D(&desc)
	if err != nil {
		return nil, nil, err
	}
	defer depthBuffer.Release()

	dsv, err := device.CreateDepthStencilView(depthBuffer)
	if err != nil {
		return nil, nil, err
	}

	binder.BindRenderTargets(rtv, dsv)
	return rtv, dsv, nil
}
