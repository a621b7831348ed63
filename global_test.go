package applog

import "testing"

func TestDefaultIsSingleton(t *testing.T) {
	l1 := Default()
	l2 := Default()
	if l1 == nil {
		t.Fatal("Default() returned nil")
	}
	if l1 != l2 {
		t.Error("Default() returned two different instances")
	}
}

// TestPackageLevelFunctions tests that the default-logger helpers
// don't panic.
func TestPackageLevelFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Critical", func() { Critical("test message") }},
		{"Error", func() { Error("test message") }},
		{"Warning", func() { Warning("test message") }},
		{"Info", func() { Info("test message") }},
		{"Debug", func() { Debug("test message") }},
		{"With args", func() { Info("test %s %d", "message", 123) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Function panicked: %v", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestPackageLevelProblemFlow(t *testing.T) {
	Warning("raise the flag")
	if !ProblemOccurred() {
		t.Error("ProblemOccurred() = false after package-level Warning")
	}

	if err := Reset(); err != nil {
		t.Fatalf("Reset() returned error: %v", err)
	}
	if ProblemOccurred() {
		t.Error("ProblemOccurred() = true after Reset")
	}
}
