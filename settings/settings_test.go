package settings

import (
	"errors"
	"testing"
)

type fakeItemStore struct {
	items   map[string][]byte
	loadErr error
}

func (f *fakeItemStore) LoadItem(name string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.items[name], nil
}

func (f *fakeItemStore) SaveItem(name string, data []byte) error {
	if f.items == nil {
		f.items = map[string][]byte{}
	}
	f.items[name] = append([]byte(nil), data...)
	return nil
}

func TestSettingsRoundTrip(t *testing.T) {
	store := &Store{manager: &fakeItemStore{}}
	in := &Settings{MasterVolume: 0.4, Muted: true, Fullscreen: true}

	store.Save(in)
	out := store.Load()

	if out.MasterVolume != 0.4 || !out.Muted || !out.Fullscreen {
		t.Fatalf("load should return what save wrote, got %+v", out)
	}
}

func TestLoadCorruptPayloadFallsBackToDefaults(t *testing.T) {
	store := &Store{manager: &fakeItemStore{
		items: map[string][]byte{itemName: []byte("{not json")},
	}}

	out := store.Load()
	want := Defaults()
	if *out != *want {
		t.Fatalf("corrupt payload should load defaults, got %+v", out)
	}
}

func TestLoadMissingOrFailingReturnsDefaults(t *testing.T) {
	cases := []struct {
		name    string
		manager itemStore
	}{
		{"empty store", &fakeItemStore{}},
		{"load error", &fakeItemStore{loadErr: errors.New("backend gone")}},
		{"nil manager", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &Store{manager: tc.manager}
			out := store.Load()
			if *out != *Defaults() {
				t.Fatalf("expected defaults, got %+v", out)
			}
		})
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store
	if out := store.Load(); *out != *Defaults() {
		t.Fatalf("nil store should load defaults, got %+v", out)
	}
	store.Save(&Settings{}) // must not panic
}
