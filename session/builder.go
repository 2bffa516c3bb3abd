package session

import (
	"log"
	"os"

	"github.com/rs/xid"
	"github.com/sarchlab/lifeline/journal"
	"github.com/sarchlab/lifeline/monitoring"
	"github.com/sarchlab/lifeline/owning"
)

// Builder can be used to build a session.
type Builder struct {
	journalOn      bool
	monitorOn      bool
	monitorPort    int
	outputFileName string
	logger         *log.Logger
	dataRecorder   journal.DataRecorder
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		journalOn: true,
		monitorOn: true,
	}
}

// WithoutJournal sets the session to not record transitions.
func (b Builder) WithoutJournal() Builder {
	b.journalOn = false
	return b
}

// WithoutMonitoring sets the session to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the journal.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithLogger sets the logger that the lifecycle log lines are written to.
// The default logger writes to standard output.
func (b Builder) WithLogger(logger *log.Logger) Builder {
	b.logger = logger
	return b
}

// WithDataRecorder sets a custom journal backend.
func (b Builder) WithDataRecorder(recorder journal.DataRecorder) Builder {
	b.dataRecorder = recorder
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.journalOn && b.outputFileName != "" {
		panic("output file name cannot be set when the journal is disabled")
	}
}

// Build builds the session.
func (b Builder) Build() *Session {
	b.parametersMustBeValid()

	s := &Session{
		valueNameIndex: make(map[string]int),
	}

	s.id = xid.New().String()

	logger := b.logger
	if logger == nil {
		logger = log.New(os.Stdout, "", 0)
	}
	s.logger = logger
	s.lifecycleLogger = owning.NewLifecycleLogger(logger)
	s.hooks = append(s.hooks, s.lifecycleLogger)

	if b.journalOn {
		s.dataRecorder = b.dataRecorder
		if s.dataRecorder == nil {
			outputPath := b.outputFileName
			if outputPath == "" {
				outputPath = "lifeline_" + s.id
			}
			s.dataRecorder = journal.New(outputPath)
		}

		s.recorder = journal.NewRecorder(s.dataRecorder)
		s.hooks = append(s.hooks, owning.NewRecordHook(s.recorder))
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.StartServer()

		s.hooks = append(s.hooks, owning.NewRecordHook(s.monitor))
	}

	return s
}
