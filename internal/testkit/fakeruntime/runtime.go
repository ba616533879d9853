// Package fakeruntime serves the bundle management API from memory so
// clients and commands can be tested without a real runtime.
package fakeruntime

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/bnema/bundle-deploy-cli/internal/adapters/archive"
	"github.com/gorilla/mux"
)

const (
	stateInstalled = 2
	overrideHeader = "X-Bundle-Override"
)

type Call string

const (
	CallInstall   Call = "install"
	CallUninstall Call = "uninstall"
	CallActivate  Call = "activate"
	CallList      Call = "list"
)

type Bundle struct {
	ID           int64  `json:"id"`
	SymbolicName string `json:"symbolicName"`
	Version      string `json:"version"`
	Location     string `json:"location"`
	State        int    `json:"state"`
}

type statusRequest struct {
	State   *int `json:"state"`
	Options int  `json:"options"`
}

type failureKey struct {
	call         Call
	symbolicName string
}

type Runtime struct {
	mu       sync.Mutex
	nextID   int64
	bundles  map[int64]*Bundle
	failures map[failureKey]int
	requests []string

	username string
	password string
	useTLS   bool

	server *httptest.Server
}

type Option func(*Runtime)

// WithCredentials makes the runtime reject requests without matching basic
// credentials.
func WithCredentials(username string, password string) Option {
	return func(r *Runtime) {
		r.username = username
		r.password = password
	}
}

// WithTLS serves over HTTPS with a self-signed certificate.
func WithTLS() Option {
	return func(r *Runtime) {
		r.useTLS = true
	}
}

// Start serves a fresh runtime until the test ends. Bundle ids start above
// the framework bundle id 0.
func Start(t testing.TB, opts ...Option) *Runtime {
	t.Helper()

	r := &Runtime{
		nextID:   1,
		bundles:  map[int64]*Bundle{},
		failures: map[failureKey]int{},
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.useTLS {
		r.server = httptest.NewTLSServer(r.Router())
	} else {
		r.server = httptest.NewServer(r.Router())
	}
	t.Cleanup(r.server.Close)

	return r
}

func (r *Runtime) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(r.record, r.authenticate)
	router.HandleFunc("/framework/bundles/representations", r.listBundles).Methods(http.MethodGet)
	router.HandleFunc("/framework/bundles", r.installBundle).Methods(http.MethodPost)
	router.HandleFunc("/framework/bundle/{id:[0-9]+}", r.uninstallBundle).Methods(http.MethodDelete)
	router.HandleFunc("/framework/bundle/{id:[0-9]+}/state", r.setState).Methods(http.MethodPut)
	return router
}

func (r *Runtime) URL() string {
	return r.server.URL
}

func (r *Runtime) Server() *httptest.Server {
	return r.server
}

// HostPort splits the listener address for target configuration.
func (r *Runtime) HostPort() (string, int) {
	host, portRaw, err := net.SplitHostPort(r.server.Listener.Addr().String())
	if err != nil {
		panic(fmt.Sprintf("split listener address: %v", err))
	}
	port, err := strconv.Atoi(portRaw)
	if err != nil {
		panic(fmt.Sprintf("parse listener port: %v", err))
	}
	return host, port
}

// Fail answers every matching call with status until Recover is called. An
// empty symbolicName matches any bundle.
func (r *Runtime) Fail(call Call, symbolicName string, status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[failureKey{call: call, symbolicName: symbolicName}] = status
}

func (r *Runtime) Recover(call Call, symbolicName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.failures, failureKey{call: call, symbolicName: symbolicName})
}

// Seed installs a bundle without going through the API.
func (r *Runtime) Seed(symbolicName string, version string) Bundle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.add(symbolicName, version)
}

// Bundles returns installed bundles ordered by id.
func (r *Runtime) Bundles() []Bundle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Requests returns "METHOD /path" for every request received, in order.
func (r *Runtime) Requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requests...)
}

func (r *Runtime) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		r.requests = append(r.requests, req.Method+" "+req.URL.Path)
		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}

func (r *Runtime) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if r.username != "" {
			username, password, ok := req.BasicAuth()
			if !ok || username != r.username || password != r.password {
				w.Header().Set("WWW-Authenticate", `Basic realm="runtime"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, req)
	})
}

func (r *Runtime) listBundles(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	status, failed := r.failureFor(CallList, "")
	bundles := r.snapshot()
	r.mu.Unlock()

	if failed {
		http.Error(w, "listing failed", status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(bundles)
}

func (r *Runtime) installBundle(w http.ResponseWriter, req *http.Request) {
	data, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "read bundle", http.StatusBadRequest)
		return
	}
	manifest, err := archive.ManifestFromBytes(data)
	if err != nil {
		http.Error(w, "invalid bundle: "+err.Error(), http.StatusBadRequest)
		return
	}
	name, err := archive.SymbolicNameFromBytes(data)
	if err != nil {
		http.Error(w, "invalid bundle: "+err.Error(), http.StatusBadRequest)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if status, failed := r.failureFor(CallInstall, name); failed {
		http.Error(w, "installation failed", status)
		return
	}

	if existing := r.findByName(name); existing != nil {
		if req.Header.Get(overrideHeader) != "true" {
			http.Error(w, "bundle "+name+" is already installed", http.StatusConflict)
			return
		}
		delete(r.bundles, existing.ID)
	}

	bundle := r.add(name, manifest.Get("Bundle-Version"))
	w.Header().Set("Content-Type", "text/plain")
	_, _ = io.WriteString(w, bundle.Location+"\n")
}

func (r *Runtime) uninstallBundle(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)

	r.mu.Lock()
	defer r.mu.Unlock()

	bundle, ok := r.bundles[id]
	if !ok {
		http.Error(w, "bundle not found", http.StatusNotFound)
		return
	}
	if status, failed := r.failureFor(CallUninstall, bundle.SymbolicName); failed {
		http.Error(w, "uninstall failed", status)
		return
	}

	delete(r.bundles, id)
	w.WriteHeader(http.StatusOK)
}

func (r *Runtime) setState(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)

	var payload statusRequest
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil || payload.State == nil {
		http.Error(w, "invalid status request", http.StatusBadRequest)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bundle, ok := r.bundles[id]
	if !ok {
		http.Error(w, "bundle not found", http.StatusNotFound)
		return
	}
	if status, failed := r.failureFor(CallActivate, bundle.SymbolicName); failed {
		http.Error(w, "bundle could not be started", status)
		return
	}

	bundle.State = *payload.State
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"state": bundle.State})
}

// caller holds r.mu
func (r *Runtime) failureFor(call Call, symbolicName string) (int, bool) {
	if status, ok := r.failures[failureKey{call: call, symbolicName: symbolicName}]; ok {
		return status, true
	}
	status, ok := r.failures[failureKey{call: call}]
	return status, ok
}

// caller holds r.mu
func (r *Runtime) findByName(symbolicName string) *Bundle {
	for _, bundle := range r.bundles {
		if bundle.SymbolicName == symbolicName {
			return bundle
		}
	}
	return nil
}

// caller holds r.mu
func (r *Runtime) add(symbolicName string, version string) *Bundle {
	id := r.nextID
	r.nextID++

	bundle := &Bundle{
		ID:           id,
		SymbolicName: symbolicName,
		Version:      version,
		Location:     fmt.Sprintf("/framework/bundle/%d", id),
		State:        stateInstalled,
	}
	r.bundles[id] = bundle
	return bundle
}

// caller holds r.mu
func (r *Runtime) snapshot() []Bundle {
	bundles := make([]Bundle, 0, len(r.bundles))
	for _, bundle := range r.bundles {
		bundles = append(bundles, *bundle)
	}
	sort.Slice(bundles, func(i, j int) bool { return bundles[i].ID < bundles[j].ID })
	return bundles
}
