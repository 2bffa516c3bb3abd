// Package monitoring turns a run into a server that allows external
// inspection of the live values and their recent lifecycle transitions.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/sarchlab/lifeline/owning"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// transitionHistoryLimit bounds the in-memory transition history.
const transitionHistoryLimit = 1024

// Monitor can turn a run into a server and allows external inspection of the
// values in it. It implements owning.TransitionRecorder so it can be attached
// to values as an observer; the most recent transitions are kept in memory
// and served over HTTP.
type Monitor struct {
	portNumber int
	actualPort int

	valuesLock sync.Mutex
	values     []*owning.Value

	transitionsLock sync.Mutex
	transitions     []owning.Transition
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterValue registers a value to be monitored.
func (m *Monitor) RegisterValue(v *owning.Value) {
	m.valuesLock.Lock()
	defer m.valuesLock.Unlock()

	m.values = append(m.values, v)
}

// RecordTransition keeps the transition in the in-memory history.
func (m *Monitor) RecordTransition(t owning.Transition) {
	m.transitionsLock.Lock()
	defer m.transitionsLock.Unlock()

	m.transitions = append(m.transitions, t)
	if len(m.transitions) > transitionHistoryLimit {
		m.transitions = m.transitions[len(m.transitions)-transitionHistoryLimit:]
	}
}

// Port returns the port the server listens on. It is only valid after
// StartServer returns.
func (m *Monitor) Port() int {
	return m.actualPort
}

// StartServer starts the monitor as a web server with a custom port if
// wanted.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/list_objects", m.listObjects)
	r.HandleFunc("/api/object/{name}", m.listObjectDetails)
	r.HandleFunc("/api/transitions", m.listTransitions)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.actualPort = listener.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(
		os.Stderr,
		"Monitoring run with http://localhost:%d\n",
		m.actualPort)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) listObjects(w http.ResponseWriter, _ *http.Request) {
	m.valuesLock.Lock()
	names := make([]string, 0, len(m.values))
	for _, v := range m.values {
		names = append(names, v.Name())
	}
	m.valuesLock.Unlock()

	bytes, err := json.Marshal(names)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listObjectDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	value := m.findValueOr404(w, name)
	if value == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(value)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) listTransitions(w http.ResponseWriter, _ *http.Request) {
	m.transitionsLock.Lock()
	bytes, err := json.Marshal(m.transitions)
	m.transitionsLock.Unlock()
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) findValueOr404(
	w http.ResponseWriter,
	name string,
) *owning.Value {
	m.valuesLock.Lock()
	defer m.valuesLock.Unlock()

	var value *owning.Value
	for _, v := range m.values {
		if v.Name() == name {
			value = v
		}
	}

	if value == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Object not found"))
		dieOnErr(err)
	}

	return value
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
