// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package d3d11

// Driver types for D3D11CreateDevice.
const (
	DriverTypeHardware = 1
)

// SDKVersion is D3D11_SDK_VERSION, always passed as-is.
const SDKVersion = 7

// Device creation flags.
const (
	CreateDeviceSinglethreaded = 0x1
	CreateDeviceDebug          = 0x2
)

// DXGI formats used by the bootstrap.
const (
	FormatR8G8B8A8Unorm  = 28
	FormatD24UnormS8Uint = 45
)

// Buffer usage and swap effect for the swap chain.
const (
	UsageRenderTargetOutput = 0x20
	SwapEffectDiscard       = 0
)

// Texture usage, binding and clear flags.
const (
	UsageDefault     = 0
	BindDepthStencil = 0x40

	ClearDepth   = 0x1
	ClearStencil = 0x2
)

// GUID matches the Windows GUID layout for COM interface queries.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Interface IDs for the capability-discovery chain and buffer retrieval.
var (
	IIDIDXGIDevice     = GUID{0x54ec77fa, 0x1377, 0x44e6, [8]byte{0x8c, 0x32, 0x88, 0xfd, 0x5f, 0x44, 0xc8, 0x4c}}
	IIDIDXGIAdapter    = GUID{0x2411e7e1, 0x12ac, 0x4ccf, [8]byte{0xbd, 0x14, 0x97, 0x98, 0xe8, 0x53, 0x4d, 0xc0}}
	IIDIDXGIFactory    = GUID{0x7b7166ec, 0x21c7, 0x44ae, [8]byte{0xb2, 0x1a, 0xc9, 0xae, 0x32, 0x1a, 0xe3, 0x69}}
	IIDID3D11Texture2D = GUID{0x6f15aaf2, 0xd208, 0x4e89, [8]byte{0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}}
)

// Rational matches DXGI_RATIONAL.
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// ModeDesc matches DXGI_MODE_DESC and describes the back buffer.
// Zero width and height delegate sizing to the output window.
type ModeDesc struct {
	Width            uint32
	Height           uint32
	RefreshRate      Rational
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

// SampleDesc matches DXGI_SAMPLE_DESC. Count 1 and quality 0 disable
// multisampling.
type SampleDesc struct {
	Count   uint32
	Quality uint32
}

// SwapChainDesc matches DXGI_SWAP_CHAIN_DESC. It is handed to the native
// call verbatim, so the field layout must not change.
type SwapChainDesc struct {
	BufferDesc   ModeDesc
	SampleDesc   SampleDesc
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow uintptr
	Windowed     int32
	SwapEffect   uint32
	Flags        uint32
}

// Texture2DDesc matches D3D11_TEXTURE2D_DESC.
type Texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleDesc     SampleDesc
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// Viewport matches D3D11_VIEWPORT: the pixel rectangle and depth range
// the normalised rendering volume is mapped onto.
type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}
