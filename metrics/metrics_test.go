package metrics

import "testing"

func TestMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"RecordsTotal", RecordsTotal},
		{"SinkErrors", SinkErrors},
		{"ProblemsTotal", ProblemsTotal},
		{"ProblemState", ProblemState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestInitializeMetrics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("InitializeMetrics panicked: %v", r)
		}
	}()

	InitializeMetrics("main_logger", "worker")
	// Repeated initialization must be harmless.
	InitializeMetrics("main_logger")
	InitializeMetrics()
}
