package resource

import (
	"errors"
	"testing"
	"time"
)

// fakeStore serves reference lookups from a fixed set of rows. Codec tests
// never write, so every mutating method fails the test if called.
type fakeStore struct {
	t    *testing.T
	rows map[string]map[uint]Entity
}

func newFakeStore(t *testing.T) *fakeStore {
	return &fakeStore{t: t, rows: make(map[string]map[uint]Entity)}
}

func (f *fakeStore) add(tag string, id uint) {
	if f.rows[tag] == nil {
		f.rows[tag] = make(map[uint]Entity)
	}
	f.rows[tag][id] = Entity{ID: id, Type: tag, Attrs: map[string]any{}}
}

func (f *fakeStore) Get(tag string, id uint) (Entity, error) {
	if e, ok := f.rows[tag][id]; ok {
		return e, nil
	}
	return Entity{}, ErrNotFound
}

func (f *fakeStore) SelectAll(tag string) ([]Entity, error) { return nil, nil }

func (f *fakeStore) Create(tag string, attrs map[string]any) (Entity, error) {
	f.t.Fatal("decode must not create")
	return Entity{}, nil
}

func (f *fakeStore) Update(e Entity, attrs map[string]any) (Entity, error) {
	f.t.Fatal("decode must not update")
	return Entity{}, nil
}

func (f *fakeStore) Delete(tag string, id uint) error {
	f.t.Fatal("decode must not delete")
	return nil
}

func (f *fakeStore) Related(e Entity, relation string) ([]Entity, error) { return nil, nil }

func (f *fakeStore) AddRelated(e Entity, relation string, other Entity) error {
	f.t.Fatal("decode must not mutate relationships")
	return nil
}

func (f *fakeStore) Transaction(fn func(Store) error) error { return fn(f) }

func decodeKind(t *testing.T, err error) Kind {
	t.Helper()
	re, ok := AsError(err)
	if !ok {
		t.Fatalf("expected a structured error, got %v", err)
	}
	return re.Kind
}

func TestDecodeCreatePlayer(t *testing.T) {
	raw := []byte(`{
		"type": "player",
		"attributes": {
			"name": "Alice",
			"handle": "ali",
			"email": "alice@example.com",
			"avatar-url": "https://example.com/a.png"
		}
	}`)

	attrs, err := Decode(raw, PlayerSchema, newFakeStore(t), ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if attrs["name"] != "Alice" || attrs["avatarUrl"] != "https://example.com/a.png" {
		t.Errorf("unexpected attrs: %v", attrs)
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[1, 2]`, `"player"`, `42`} {
		_, err := Decode([]byte(raw), PlayerSchema, newFakeStore(t), ModeCreate, 0)
		if decodeKind(t, err) != KindMalformedPayload {
			t.Errorf("%s: want malformed payload, got %v", raw, err)
		}
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	for _, raw := range []string{
		`{"type": "game", "attributes": {}}`,
		`{"attributes": {}}`,
	} {
		_, err := Decode([]byte(raw), PlayerSchema, newFakeStore(t), ModeCreate, 0)
		if decodeKind(t, err) != KindTypeMismatch {
			t.Errorf("%s: want type mismatch, got %v", raw, err)
		}
	}
}

func TestDecodeIdentityMismatch(t *testing.T) {
	for _, raw := range []string{
		`{"id": 2, "type": "player", "attributes": {}}`,
		`{"type": "player", "attributes": {}}`,
	} {
		_, err := Decode([]byte(raw), PlayerSchema, newFakeStore(t), ModeUpdate, 1)
		if decodeKind(t, err) != KindIdentityMismatch {
			t.Errorf("%s: want identity mismatch, got %v", raw, err)
		}
	}
}

func TestDecodeUpdateWithMatchingID(t *testing.T) {
	raw := []byte(`{"id": 7, "type": "player", "attributes": {"name": "Bob"}}`)
	attrs, err := Decode(raw, PlayerSchema, newFakeStore(t), ModeUpdate, 7)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if attrs["name"] != "Bob" {
		t.Errorf("unexpected attrs: %v", attrs)
	}
}

func TestDecodeMissingAttributes(t *testing.T) {
	_, err := Decode([]byte(`{"type": "player"}`), PlayerSchema, newFakeStore(t), ModeCreate, 0)
	if decodeKind(t, err) != KindMissingAttributes {
		t.Errorf("want missing attributes, got %v", err)
	}
}

func TestDecodeEmptyAttributes(t *testing.T) {
	attrs, err := Decode([]byte(`{"type": "player", "attributes": {}}`), PlayerSchema, newFakeStore(t), ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(attrs) != 0 {
		t.Errorf("want empty attrs, got %v", attrs)
	}
}

func TestDecodeIgnoresUndeclaredAttributes(t *testing.T) {
	raw := []byte(`{"type": "player", "attributes": {"name": "Ann", "shoe-size": 43}}`)
	attrs, err := Decode(raw, PlayerSchema, newFakeStore(t), ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := attrs["shoeSize"]; ok {
		t.Error("undeclared attribute should have been dropped")
	}
	if attrs["name"] != "Ann" {
		t.Errorf("declared attribute lost: %v", attrs)
	}
}

func TestDecodeTimestampFormats(t *testing.T) {
	st := newFakeStore(t)

	raw := []byte(`{"type": "game", "attributes": {"started-at": "2016-03-01 18:30:00", "active": true, "game-type": "ffa"}}`)
	attrs, err := Decode(raw, GameSchema, st, ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := time.Date(2016, 3, 1, 18, 30, 0, 0, time.UTC)
	if !attrs["startedAt"].(time.Time).Equal(want) {
		t.Errorf("startedAt = %v, want %v", attrs["startedAt"], want)
	}

	raw = []byte(`{"type": "game", "attributes": {"started-at": "2016-03-01 18:30:00.250000", "active": true, "game-type": "ffa"}}`)
	attrs, err = Decode(raw, GameSchema, st, ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want = time.Date(2016, 3, 1, 18, 30, 0, 250000000, time.UTC)
	if !attrs["startedAt"].(time.Time).Equal(want) {
		t.Errorf("startedAt = %v, want %v", attrs["startedAt"], want)
	}
}

func TestDecodeInvalidTimestamp(t *testing.T) {
	for _, val := range []string{`"2016-03-01T18:30:00Z"`, `"yesterday"`, `12345`} {
		raw := []byte(`{"type": "game", "attributes": {"started-at": ` + val + `}}`)
		_, err := Decode(raw, GameSchema, newFakeStore(t), ModeCreate, 0)
		if decodeKind(t, err) != KindInvalidTimestamp {
			t.Errorf("%s: want invalid timestamp, got %v", val, err)
		}
		if re, _ := AsError(err); re.Attr != "started-at" {
			t.Errorf("error should name started-at, named %q", re.Attr)
		}
	}
}

func TestDecodeNullableTimestamp(t *testing.T) {
	raw := []byte(`{"type": "game", "attributes": {"ended-at": null}}`)
	attrs, err := Decode(raw, GameSchema, newFakeStore(t), ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v, present := attrs["endedAt"]; !present || v != nil {
		t.Errorf("endedAt = %v, want explicit nil", v)
	}
}

func TestDecodeEnum(t *testing.T) {
	raw := []byte(`{"type": "game", "attributes": {"game-type": "duel"}}`)
	attrs, err := Decode(raw, GameSchema, newFakeStore(t), ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if attrs["gameType"] != "duel" {
		t.Errorf("gameType = %v", attrs["gameType"])
	}

	raw = []byte(`{"type": "game", "attributes": {"game-type": "tictactoe"}}`)
	_, err = Decode(raw, GameSchema, newFakeStore(t), ModeCreate, 0)
	if decodeKind(t, err) != KindInvalidEnumValue {
		t.Errorf("want invalid enum value, got %v", err)
	}
}

func TestDecodeReference(t *testing.T) {
	st := newFakeStore(t)
	st.add(TypePlayer, 3)

	raw := []byte(`{"type": "game", "attributes": {"winner-id": 3}}`)
	attrs, err := Decode(raw, GameSchema, st, ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if attrs["winnerID"] != uint(3) {
		t.Errorf("winnerID = %v", attrs["winnerID"])
	}

	raw = []byte(`{"type": "game", "attributes": {"winner-id": null}}`)
	attrs, err = Decode(raw, GameSchema, st, ModeCreate, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if attrs["winnerID"] != nil {
		t.Errorf("winnerID = %v, want nil", attrs["winnerID"])
	}
}

func TestDecodeDanglingReference(t *testing.T) {
	raw := []byte(`{"type": "game", "attributes": {"winner-id": 99}}`)
	_, err := Decode(raw, GameSchema, newFakeStore(t), ModeCreate, 0)
	if decodeKind(t, err) != KindDanglingReference {
		t.Errorf("want dangling reference, got %v", err)
	}
	if re, _ := AsError(err); re.Attr != "winner-id" {
		t.Errorf("error should name winner-id, named %q", re.Attr)
	}
}

func TestDecodeInvalidReference(t *testing.T) {
	for _, val := range []string{`"three"`, `3.5`, `true`, `-1`} {
		raw := []byte(`{"type": "game", "attributes": {"winner-id": ` + val + `}}`)
		_, err := Decode(raw, GameSchema, newFakeStore(t), ModeCreate, 0)
		if decodeKind(t, err) != KindInvalidReference {
			t.Errorf("%s: want invalid reference, got %v", val, err)
		}
	}
}

func TestDecodeStoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection lost")
	st := &errStore{fakeStore: newFakeStore(t), err: boom}

	raw := []byte(`{"type": "game", "attributes": {"winner-id": 3}}`)
	_, err := Decode(raw, GameSchema, st, ModeCreate, 0)
	if !errors.Is(err, boom) {
		t.Errorf("store failure should propagate, got %v", err)
	}
}

type errStore struct {
	*fakeStore
	err error
}

func (s *errStore) Get(tag string, id uint) (Entity, error) {
	return Entity{}, s.err
}
