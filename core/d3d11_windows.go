package core

import (
	log "github.com/sirupsen/logrus"

	"github.com/devblok/cubed/d3d11"
)

// NewDirect3DRenderer creates a not yet initialised Direct3D 11 renderer
// targeting the given native window handle.
func NewDirect3DRenderer(windowHandle uintptr, cfg RendererConfiguration) (Renderer, error) {
	return &Direct3DRenderer{
		configuration: cfg,
		windowHandle:  windowHandle,
	}, nil
}

// Direct3DRenderer is a Direct3D 11 API renderer. All handles are owned
// exclusively for the renderer's lifetime and used from a single thread,
// matching the single-threaded device creation flag.
type Direct3DRenderer struct {
	configuration RendererConfiguration
	windowHandle  uintptr

	device  *d3d11.Device
	context *d3d11.DeviceContext

	swapchain        *d3d11.SwapChain
	renderTargetView *d3d11.RenderTargetView
	depthStencilView *d3d11.DepthStencilView

	featureLevel uint32
}

// Initialise implements interface. The sequence is fixed: device,
// swap chain, output views, viewport. The first failing native call
// aborts it; partially created handles are left for Destroy.
func (r *Direct3DRenderer) Initialise() error {
	if err := r.createDevice(); err != nil {
		return err
	}

	if err := r.createSwapchain(); err != nil {
		return err
	}

	if err := r.createOutputViews(); err != nil {
		return err
	}

	r.setViewport()
	return nil
}

func (r *Direct3DRenderer) createDevice() error {
	log.Info("initializing Direct3D device and device context")

	device, context, featureLevel, err := d3d11.CreateDevice(DeviceFlags(r.configuration.Debug))
	if err != nil {
		return err
	}

	r.device = device
	r.context = context
	r.featureLevel = featureLevel

	log.WithField("featureLevel", d3d11.HRESULT(featureLevel).String()).Info("Direct3D device created")
	return nil
}

func (r *Direct3DRenderer) createSwapchain() error {
	log.Info("initializing Direct3D swapchain")

	factory, err := ResolveFactory(displayQuerier{device: r.device})
	if err != nil {
		return err
	}
	defer factory.Release()

	desc := DefaultSwapChainDesc(r.windowHandle)
	surface, err := factory.CreateSwapChain(&desc)
	if err != nil {
		return err
	}

	r.swapchain = surface.(swapChainSurface).swapchain
	return nil
}

func (r *Direct3DRenderer) createOutputViews() error {
	log.Info("initializing back buffer and depth-stencil views")

	rtv, dsv, err := CreateOutputViews(
		viewDevice{device: r.device},
		swapChainSurface{swapchain: r.swapchain},
		outputBinder{context: r.context},
		r.configuration.ScreenWidth,
		r.configuration.ScreenHeight,
	)
	if err != nil {
		return err
	}

	r.renderTargetView = rtv.(*d3d11.RenderTargetView)
	r.depthStencilView = dsv.(*d3d11.DepthStencilView)
	return nil
}

func (r *Direct3DRenderer) setViewport() {
	viewport := DefaultViewport(r.configuration.ScreenWidth, r.configuration.ScreenHeight)
	r.context.RSSetViewports(&viewport)
}

// DrawFrame implements interface. Present statuses are not checked, the
// running loop has no error path.
func (r *Direct3DRenderer) DrawFrame() {
	r.context.ClearRenderTargetView(r.renderTargetView, &r.configuration.ClearColor)
	r.context.ClearDepthStencilView(r.depthStencilView, d3d11.ClearDepth|d3d11.ClearStencil, 1.0, 0)

	// Render stuff here!

	r.swapchain.Present(0, 0)
}

// FeatureLevel returns the feature level granted at device creation.
func (r *Direct3DRenderer) FeatureLevel() uint32 {
	return r.featureLevel
}

// Destroy implements interface. Handles are released in reverse creation
// order; handles a failed Initialise never reached are skipped.
func (r *Direct3DRenderer) Destroy() {
	if r.depthStencilView != nil {
		r.depthStencilView.Release()
	}
	if r.renderTargetView != nil {
		r.renderTargetView.Release()
	}
	if r.swapchain != nil {
		r.swapchain.Release()
	}
	if r.context != nil {
		r.context.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
}

// The adapters below bind the concrete d3d11 handles to the narrow
// initialisation interfaces in output.go.

type displayQuerier struct {
	device *d3d11.Device
}

func (q displayQuerier) DisplayDevice() (DisplayDevice, error) {
	display, err := q.device.DXGIDevice()
	if err != nil {
		return nil, err
	}
	return displayDevice{device: q.device, display: display}, nil
}

type displayDevice struct {
	device  *d3d11.Device
	display *d3d11.DXGIDevice
}

func (d displayDevice) Adapter() (DisplayAdapter, error) {
	adapter, err := d.display.Adapter()
	if err != nil {
		return nil, err
	}
	return displayAdapter{device: d.device, adapter: adapter}, nil
}

func (d displayDevice) Release() {
	d.display.Release()
}

type displayAdapter struct {
	device  *d3d11.Device
	adapter *d3d11.DXGIAdapter
}

func (a displayAdapter) Factory() (DisplayFactory, error) {
	factory, err := a.adapter.Factory()
	if err != nil {
		return nil, err
	}
	return displayFactory{device: a.device, factory: factory}, nil
}

func (a displayAdapter) Release() {
	a.adapter.Release()
}

type displayFactory struct {
	device  *d3d11.Device
	factory *d3d11.DXGIFactory
}

func (f displayFactory) CreateSwapChain(desc *d3d11.SwapChainDesc) (SwapChainSurface, error) {
	swapchain, err := f.factory.CreateSwapChain(f.device, desc)
	if err != nil {
		return nil, err
	}
	return swapChainSurface{swapchain: swapchain}, nil
}

func (f displayFactory) Release() {
	f.factory.Release()
}

type swapChainSurface struct {
	swapchain *d3d11.SwapChain
}

func (s swapChainSurface) Buffer(index uint32) (Resource, error) {
	return s.swapchain.Buffer(index)
}

type viewDevice struct {
	device *d3d11.Device
}

func (v viewDevice) CreateTexture2D(desc *d3d11.Texture2DDesc) (Resource, error) {
	return v.device.CreateTexture2D(desc)
}

func (v viewDevice) CreateRenderTargetView(resource Resource) (RenderTarget, error) {
	return v.device.CreateRenderTargetView(resource.(*d3d11.Texture2D))
}

func (v viewDevice) CreateDepthStencilView(resource Resource) (DepthStencil, error) {
	return v.device.CreateDepthStencilView(resource.(*d3d11.Texture2D))
}

type outputBinder struct {
	context *d3d11.DeviceContext
}

func (b outputBinder) BindRenderTargets(rtv RenderTarget, dsv DepthStencil) {
	b.context.OMSetRenderTargets(rtv.(*d3d11.RenderTargetView), dsv.(*d3d11.DepthStencilView))
}
