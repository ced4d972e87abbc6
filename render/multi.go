package render

import "github.com/evscope-org/evscope/report"

// MultiSink fans report output out to several sinks. The first write
// error stops the fan-out and propagates.
type MultiSink struct {
	sinks []report.Sink
}

// Multi combines sinks into one.
func Multi(sinks ...report.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Text(markdown string) error {
	for _, s := range m.sinks {
		if err := s.Text(markdown); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) Chart(cfg *report.ChartConfig) error {
	for _, s := range m.sinks {
		if err := s.Chart(cfg); err != nil {
			return err
		}
	}
	return nil
}
