package copt

import (
	"runtime"
	"sort"
	"sync"
	"unsafe"

	"github.com/bartolsthoorn/gocopt/internal/log"
	"github.com/bartolsthoorn/gocopt/internal/native"
)

// EnvConfig is the configuration of a new environment.
type EnvConfig struct {
	// LicenseDir is the directory holding the license files. Empty uses the
	// default search path.
	LicenseDir string
	// Settings are client configuration values (for example for a compute
	// cluster or floating token server) passed through a native env config.
	// They cannot be combined with LicenseDir.
	Settings map[string]string
	// Logger receives diagnostic messages. Defaults to log.Noop.
	Logger log.Logger
	// Backend is the native implementation. Nil selects the library the
	// package was built against.
	Backend native.API
}

func (c *EnvConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "copt.Env"})

	if c.Backend == nil {
		api, err := defaultAPI()
		if err != nil {
			return err
		}
		c.Backend = api
	}

	if c.LicenseDir != "" && len(c.Settings) > 0 {
		return newErrorMsg("NewEnv", "LicenseDir and Settings are mutually exclusive")
	}
	if err := checkName("NewEnv", c.LicenseDir); err != nil {
		return err
	}
	for k, v := range c.Settings {
		if err := checkName("NewEnv", k); err != nil {
			return err
		}
		if err := checkName("NewEnv", v); err != nil {
			return err
		}
	}
	return nil
}

// envHandle is the native environment shared by an owning Env, its views and
// every model created from them. The owner and each live model hold one
// reference; the native handle is deleted when the last one is dropped.
type envHandle struct {
	mu     sync.Mutex
	ptr    unsafe.Pointer
	api    native.API
	refs   int
	logger log.Logger
}

// acquire takes a reference for a new model.
func (h *envHandle) acquire() (unsafe.Pointer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ptr == nil {
		return nil, wrapError("NewModel", native.OK, ErrClosed)
	}
	h.refs++
	return h.ptr, nil
}

func (h *envHandle) release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.refs == 0 {
		return nil
	}
	h.refs--
	if h.refs > 0 {
		return nil
	}

	code := h.api.DeleteEnv(h.ptr)
	h.ptr = nil
	h.logger.Debugf("environment deleted")
	return newError("DeleteEnv", code)
}

func (h *envHandle) pointer(op string) (unsafe.Pointer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ptr == nil {
		return nil, wrapError(op, native.OK, ErrClosed)
	}
	return h.ptr, nil
}

// Env is a solver environment, the license and session scope models are
// created in.
//
// The Env returned by NewEnv owns the native handle. Views returned by
// ShallowCopy share it without owning it. The native environment stays alive
// until the owner is closed and every model created from it is closed too, so
// closing the owner before its models is safe.
type Env struct {
	h      *envHandle
	owner  bool
	parent *Env // keeps the owner reachable from its views

	mu     sync.Mutex
	closed bool
}

// NewEnv creates an environment with the default configuration.
func NewEnv() (*Env, error) {
	return NewEnvWithConfig(EnvConfig{})
}

// NewEnvWithConfig creates an environment.
//
// The environment must be closed with Close() when no longer needed.
func NewEnvWithConfig(cfg EnvConfig) (*Env, error) {
	if err := cfg.defaults(); err != nil {
		return nil, err
	}
	api := cfg.Backend

	var (
		ptr  unsafe.Pointer
		code native.Retcode
	)
	switch {
	case len(cfg.Settings) > 0:
		var err error
		ptr, err = createWithSettings(api, cfg.Settings)
		if err != nil {
			return nil, err
		}
	case cfg.LicenseDir != "":
		ptr, code = api.CreateEnvWithPath(cfg.LicenseDir)
	default:
		ptr, code = api.CreateEnv()
	}
	if err := newError("NewEnv", code); err != nil {
		cfg.Logger.Errorf("could not create environment: %s", err)
		return nil, err
	}

	e := &Env{
		h:     &envHandle{ptr: ptr, api: api, refs: 1, logger: cfg.Logger},
		owner: true,
	}
	runtime.SetFinalizer(e, (*Env).Close)
	cfg.Logger.Debugf("environment created")
	return e, nil
}

func createWithSettings(api native.API, settings map[string]string) (unsafe.Pointer, error) {
	cfg, code := api.CreateEnvConfig()
	if err := newError("CreateEnvConfig", code); err != nil {
		return nil, err
	}
	defer api.DeleteEnvConfig(cfg)

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := newError("SetEnvConfig", api.SetEnvConfig(cfg, k, settings[k])); err != nil {
			return nil, err
		}
	}

	ptr, code := api.CreateEnvWithConfig(cfg)
	if err := newError("NewEnv", code); err != nil {
		return nil, err
	}
	return ptr, nil
}

// ShallowCopy returns a non-owning view of the same native environment.
// Closing the view is a no-op. Once the owner is closed the view is closed
// too, even while models created earlier keep the native environment alive.
func (e *Env) ShallowCopy() *Env {
	parent := e
	if !e.owner {
		parent = e.parent
	}
	return &Env{h: e.h, parent: parent}
}

// IsOwner reports whether e owns the native handle.
func (e *Env) IsOwner() bool { return e.owner }

// Close releases the owner's reference to the native environment. It is a
// no-op for views. It is safe to call Close multiple times.
func (e *Env) Close() error {
	if !e.owner {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	runtime.SetFinalizer(e, nil)
	return e.h.release()
}

func (e *Env) pointer(op string) (unsafe.Pointer, error) {
	if e.isClosed() {
		return nil, wrapError(op, native.OK, ErrClosed)
	}
	return e.h.pointer(op)
}

// isClosed reports whether the owner of e has been closed. A view is closed
// once its owner is.
func (e *Env) isClosed() bool {
	if !e.owner && e.parent != nil {
		return e.parent.isClosed()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// LicenseMessage returns the license information of the environment.
func (e *Env) LicenseMessage() (string, error) {
	ptr, err := e.pointer("LicenseMessage")
	if err != nil {
		return "", err
	}
	msg, code := e.h.api.GetLicenseMsg(ptr)
	if err := newError("LicenseMessage", code); err != nil {
		return "", err
	}
	return msg, nil
}

// Banner returns the solver banner with version information.
func (e *Env) Banner() (string, error) {
	return banner(e.h.api)
}

// RetcodeMessage describes a native return code, as found in Error.Code.
func (e *Env) RetcodeMessage(code int) (string, error) {
	return retcodeMessage(e.h.api, code)
}

func banner(api native.API) (string, error) {
	s, code := api.GetBanner()
	if err := newError("Banner", code); err != nil {
		return "", err
	}
	return s, nil
}

func retcodeMessage(api native.API, code int) (string, error) {
	s, ret := api.GetRetcodeMsg(native.Retcode(code))
	if err := newError("RetcodeMessage", ret); err != nil {
		return "", err
	}
	return s, nil
}
