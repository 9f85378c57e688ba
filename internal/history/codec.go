package history

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/robalobadob/pintordle/internal/game"
)

// header is the part of a stored entry every format version shares.
type header struct {
	Format     string `json:"format"`
	GameNumber *int   `json:"gameNumber"`
}

// entry is one element of the stored array. raw is kept so entries this
// version cannot read are written back unchanged.
type entry struct {
	raw    json.RawMessage
	number int
	keyed  bool         // number was readable
	rec    *game.Record // nil when the entry could not be decoded
	err    error        // why rec is nil
}

// decodeHistory splits the blob into entries. Only a blob that is not a
// JSON array (or null) is an error; bad elements become undecoded entries.
func decodeHistory(blob []byte) ([]entry, error) {
	if len(bytes.TrimSpace(blob)) == 0 {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(blob, &raws); err != nil {
		return nil, err
	}
	out := make([]entry, 0, len(raws))
	for _, raw := range raws {
		out = append(out, decodeEntry(raw))
	}
	return out, nil
}

func decodeEntry(raw json.RawMessage) entry {
	e := entry{raw: raw}

	var h header
	if err := json.Unmarshal(raw, &h); err != nil {
		e.err = fmt.Errorf("%w: %v", ErrUnreadable, err)
		return e
	}
	if h.GameNumber != nil {
		e.number, e.keyed = *h.GameNumber, true
	}

	switch h.Format {
	case game.FormatV1, "":
		rec, err := decodeV1(raw)
		if err != nil {
			e.err = err
			return e
		}
		e.rec = &rec
	default:
		e.err = fmt.Errorf("%w: unknown format %q", ErrUnreadable, h.Format)
	}
	return e
}

// decodeV1 reads the layout the browser build has always written:
// {"format":"v1","gameNumber":n,"board":[[...]],"gameState":"..."}.
func decodeV1(raw json.RawMessage) (game.Record, error) {
	var r game.Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return game.Record{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !r.GameState.Valid() {
		return game.Record{}, fmt.Errorf("%w: game state %q", ErrUnreadable, r.GameState)
	}
	if r.Board == nil {
		r.Board = game.Board{}
	}
	r.Format = game.FormatV1
	return r, nil
}

// encodeHistory joins the raw entries back into one array. Entries are
// already valid JSON, so they are copied as-is.
func encodeHistory(entries []entry) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(e.raw)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func encodeRecord(r game.Record) (entry, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return entry{}, err
	}
	return entry{raw: raw, number: r.GameNumber, keyed: true, rec: &r}, nil
}
