package service

import (
	"testing"
)

func TestNewProgressManager_Disabled(t *testing.T) {
	pm := NewProgressManager(false)

	if _, ok := pm.(*NoOpProgressManager); !ok {
		t.Errorf("Disabled progress manager should be no-op, got %T", pm)
	}
	if pm.IsInteractive() {
		t.Error("No-op manager should not be interactive")
	}
}

func TestNewProgressManager_CIEnvironment(t *testing.T) {
	t.Setenv("CI", "true")

	pm := NewProgressManager(true)

	if _, ok := pm.(*NoOpProgressManager); !ok {
		t.Errorf("CI environment should get no-op manager, got %T", pm)
	}
}

func TestNoOpProgressManager(t *testing.T) {
	pm := &NoOpProgressManager{}

	task := pm.StartTask("testing", 10)
	if task == nil {
		t.Fatal("StartTask should not return nil")
	}

	// All methods are safe no-ops
	task.Increment(5)
	task.Describe("halfway")
	task.Complete()
	pm.Close()
}

func TestNoOpTaskProgress(t *testing.T) {
	task := &NoOpTaskProgress{}

	task.Increment(1)
	task.Describe("anything")
	task.Complete()
}
