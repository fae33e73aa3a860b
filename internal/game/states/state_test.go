package states

import (
	"errors"
	"reflect"
	"testing"
)

type recorder struct {
	name     string
	log      *[]string
	enterErr error
}

func (r *recorder) Enter() error {
	*r.log = append(*r.log, r.name+".enter")
	return r.enterErr
}

func (r *recorder) Exit() error {
	*r.log = append(*r.log, r.name+".exit")
	return nil
}

func (r *recorder) Update(dt float32) error {
	*r.log = append(*r.log, r.name+".update")
	return nil
}

func TestManager_Transitions(t *testing.T) {
	var log []string
	walk := &recorder{name: "walk", log: &log}
	tour := &recorder{name: "tour", log: &log}

	m := NewManager()
	if err := m.Update(0.1); err != nil {
		t.Fatalf("Update without a state failed: %v", err)
	}

	m.Change(walk)
	if m.Current() != nil {
		t.Error("expected the change to wait for Update")
	}
	m.Update(0.1)
	m.Toggle(tour, walk)
	m.Update(0.1)
	m.Toggle(tour, walk)
	m.Update(0.1)

	want := []string{
		"walk.enter", "walk.update",
		"walk.exit", "tour.enter", "tour.update",
		"tour.exit", "walk.enter", "walk.update",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("expected %v, got %v", want, log)
	}
	if m.Current() != walk {
		t.Errorf("expected walk to be current, got %v", m.Current())
	}
}

func TestManager_EnterError(t *testing.T) {
	var log []string
	broken := &recorder{name: "broken", log: &log, enterErr: errors.New("no deck")}

	m := NewManager()
	m.Change(broken)
	if err := m.Update(0); err == nil {
		t.Error("expected the Enter error to be returned")
	}
	if len(log) != 1 {
		t.Errorf("expected Update to be skipped after a failed Enter, got %v", log)
	}
}
