package core

import (
	"context"
	"errors"
	"slices"
	"testing"
)

// lifecycleModule records Start/Stop/Reload calls into a shared log.
type lifecycleModule struct {
	id        ModuleID
	log       *[]string
	startErr  error
	reloadErr error
}

func (m *lifecycleModule) ModuleInfo() ModuleInfo {
	cp := *m
	return ModuleInfo{ID: m.id, New: func() Module { c := cp; return &c }}
}

func (m *lifecycleModule) Start() error {
	*m.log = append(*m.log, "start "+string(m.id))
	return m.startErr
}

func (m *lifecycleModule) Stop(context.Context) error {
	*m.log = append(*m.log, "stop "+string(m.id))
	return nil
}

func (m *lifecycleModule) Reload(*AppContext) error {
	*m.log = append(*m.log, "reload "+string(m.id))
	return m.reloadErr
}

func TestApp_StartStopOrder(t *testing.T) {
	t.Cleanup(resetRegistry)

	var log []string
	RegisterModule(&lifecycleModule{id: "test.a", log: &log})
	RegisterModule(&lifecycleModule{id: "test.b", log: &log})

	app := NewApp(NewAppContext(nil))
	if err := app.LoadModules([]string{"test.a", "test.b"}); err != nil {
		t.Fatalf("LoadModules: %v", err)
	}
	if err := app.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	app.Stop()

	want := []string{"start test.a", "start test.b", "stop test.b", "stop test.a"}
	if !slices.Equal(log, want) {
		t.Errorf("lifecycle = %v, want %v", log, want)
	}
}

func TestApp_StartFailureStopsStarted(t *testing.T) {
	t.Cleanup(resetRegistry)

	var log []string
	RegisterModule(&lifecycleModule{id: "test.ok", log: &log})
	RegisterModule(&lifecycleModule{id: "test.bad", log: &log, startErr: errors.New("boom")})

	app := NewApp(NewAppContext(nil))
	if err := app.LoadModules([]string{"test.ok", "test.bad"}); err != nil {
		t.Fatalf("LoadModules: %v", err)
	}
	if err := app.Start(); err == nil {
		t.Fatal("Start should fail")
	}

	want := []string{"start test.ok", "start test.bad", "stop test.ok"}
	if !slices.Equal(log, want) {
		t.Errorf("lifecycle = %v, want %v", log, want)
	}
}

func TestApp_ReloadModulesJoinsErrors(t *testing.T) {
	t.Cleanup(resetRegistry)

	var log []string
	RegisterModule(&lifecycleModule{id: "test.r1", log: &log, reloadErr: errors.New("bad config")})
	RegisterModule(&lifecycleModule{id: "test.r2", log: &log})

	ctx := NewAppContext(nil)
	app := NewApp(ctx)
	if err := app.LoadModules([]string{"test.r1", "test.r2"}); err != nil {
		t.Fatalf("LoadModules: %v", err)
	}

	err := app.ReloadModules(ctx)
	if err == nil {
		t.Fatal("ReloadModules should report the failing module")
	}
	if !slices.Contains(log, "reload test.r2") {
		t.Error("a failing module should not stop later reloads")
	}
}

func TestApp_Module(t *testing.T) {
	t.Cleanup(resetRegistry)

	var log []string
	RegisterModule(&lifecycleModule{id: "test.find", log: &log})

	app := NewApp(NewAppContext(nil))
	if err := app.LoadModules([]string{"test.find"}); err != nil {
		t.Fatalf("LoadModules: %v", err)
	}

	if _, ok := app.Module("test.find"); !ok {
		t.Error("Module(test.find) not found")
	}
	if _, ok := app.Module("test.missing"); ok {
		t.Error("Module(test.missing) should not be found")
	}
	if ids := app.ModuleIDs(); !slices.Equal(ids, []string{"test.find"}) {
		t.Errorf("ModuleIDs() = %v", ids)
	}
}
