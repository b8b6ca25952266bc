package sim

import "testing"

func TestServer_StartAndFinish(t *testing.T) {
	srv := &Server{}
	if !srv.Free() || srv.Occupancy() != 0 {
		t.Fatal("new server should be free with occupancy 0")
	}

	c := &Customer{ID: 1, ServiceTime: 2.5, ServiceStart: 10, ServiceStartSet: true}
	srv.Start(c)

	if srv.Free() {
		t.Error("server should be occupied after Start")
	}
	if srv.Occupancy() != 1 {
		t.Errorf("Occupancy() = %d, want 1", srv.Occupancy())
	}
	if srv.Current() != c {
		t.Errorf("Current() = %v, want customer 1", srv.Current())
	}
	if srv.NextCompletion() != 12.5 {
		t.Errorf("NextCompletion() = %v, want 12.5", srv.NextCompletion())
	}

	got := srv.Finish()
	if got != c {
		t.Errorf("Finish() = %v, want customer 1", got)
	}
	if !srv.Free() {
		t.Error("server should be free after Finish")
	}
}

func TestServer_Start_Occupied_Panics(t *testing.T) {
	srv := &Server{}
	srv.Start(&Customer{ID: 1, ServiceTime: 1, ServiceStartSet: true})

	defer func() {
		if recover() == nil {
			t.Error("Start on an occupied server should panic")
		}
	}()
	srv.Start(&Customer{ID: 2, ServiceTime: 1, ServiceStartSet: true})
}

func TestServer_Start_UnstampedCustomer_Panics(t *testing.T) {
	srv := &Server{}
	defer func() {
		if recover() == nil {
			t.Error("Start without a service start time should panic")
		}
	}()
	srv.Start(&Customer{ID: 1, ServiceTime: 1})
}
