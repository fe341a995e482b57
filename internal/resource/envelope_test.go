package resource

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEncodeAttributeOrderIsStable(t *testing.T) {
	winner := uint(2)
	ended := time.Date(2016, 3, 1, 20, 0, 0, 0, time.UTC)
	e := Entity{
		ID:   5,
		Type: TypeGame,
		Attrs: map[string]any{
			"active":    false,
			"endedAt":   &ended,
			"gameType":  "ctf",
			"startedAt": time.Date(2016, 3, 1, 18, 30, 0, 0, time.UTC),
			"winnerID":  &winner,
		},
	}

	got, err := json.Marshal(Encode(GameSchema, e))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"id":5,"type":"game","attributes":{` +
		`"active":false,` +
		`"ended-at":"2016-03-01 20:00:00",` +
		`"game-type":"ctf",` +
		`"started-at":"2016-03-01 18:30:00",` +
		`"winner-id":2}}`
	if string(got) != want {
		t.Errorf("envelope = %s\nwant       %s", got, want)
	}
}

func TestEncodeNullValues(t *testing.T) {
	e := Entity{
		ID:   1,
		Type: TypeGame,
		Attrs: map[string]any{
			"active":    true,
			"endedAt":   (*time.Time)(nil),
			"gameType":  "ffa",
			"startedAt": time.Date(2016, 3, 1, 18, 30, 0, 0, time.UTC),
			"winnerID":  (*uint)(nil),
		},
	}

	got, err := json.Marshal(Encode(GameSchema, e))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"id":1,"type":"game","attributes":{` +
		`"active":true,` +
		`"ended-at":null,` +
		`"game-type":"ffa",` +
		`"started-at":"2016-03-01 18:30:00",` +
		`"winner-id":null}}`
	if string(got) != want {
		t.Errorf("envelope = %s\nwant       %s", got, want)
	}
}

func TestEncodeTimestampEchoesFraction(t *testing.T) {
	withFraction := time.Date(2016, 3, 1, 18, 30, 0, 250000000, time.UTC)
	if got := formatTimestamp(withFraction); got != "2016-03-01 18:30:00.250000" {
		t.Errorf("formatTimestamp = %q", got)
	}
	whole := time.Date(2016, 3, 1, 18, 30, 0, 0, time.UTC)
	if got := formatTimestamp(whole); got != "2016-03-01 18:30:00" {
		t.Errorf("formatTimestamp = %q", got)
	}
}

func TestEncodeAllEmptyIsArray(t *testing.T) {
	got, err := json.Marshal(EncodeAll(PlayerSchema, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("empty collection = %s, want []", got)
	}
}
