package mailcheck

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// MessagePack encoding of Report. The shape is small and fixed, so the
// codec is written directly against the msgp runtime rather than
// generated: a 3-entry map keyed "id", "checked_at", "results", with
// each result a 2-entry map keyed "address", "outcome".

// ToMessagePack serializes the report to MessagePack bytes.
func (r *Report) ToMessagePack() ([]byte, error) {
	// id + checked_at + results headers, then two small strings per
	// result; 32 bytes each is a comfortable overestimate.
	b := make([]byte, 0, 64+32*len(r.Results))

	b = msgp.AppendMapHeader(b, 3)
	b = msgp.AppendString(b, "id")
	b = msgp.AppendString(b, r.ID)
	b = msgp.AppendString(b, "checked_at")
	b = msgp.AppendTime(b, r.CheckedAt)
	b = msgp.AppendString(b, "results")
	b = msgp.AppendArrayHeader(b, uint32(len(r.Results)))
	for _, res := range r.Results {
		b = msgp.AppendMapHeader(b, 2)
		b = msgp.AppendString(b, "address")
		b = msgp.AppendString(b, res.Address)
		b = msgp.AppendString(b, "outcome")
		b = msgp.AppendString(b, string(res.Outcome))
	}
	return b, nil
}

// FromMessagePack deserializes a report from MessagePack bytes
// produced by ToMessagePack.
func FromMessagePack(data []byte) (*Report, error) {
	var r Report

	sz, data, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return nil, fmt.Errorf("report map header: %w", err)
	}
	for i := uint32(0); i < sz; i++ {
		var key string
		key, data, err = msgp.ReadStringBytes(data)
		if err != nil {
			return nil, fmt.Errorf("report key: %w", err)
		}
		switch key {
		case "id":
			r.ID, data, err = msgp.ReadStringBytes(data)
		case "checked_at":
			r.CheckedAt, data, err = msgp.ReadTimeBytes(data)
		case "results":
			var n uint32
			n, data, err = msgp.ReadArrayHeaderBytes(data)
			if err != nil {
				break
			}
			r.Results = make([]Result, 0, n)
			for i := uint32(0); i < n; i++ {
				var res Result
				res, data, err = readResultBytes(data)
				if err != nil {
					break
				}
				r.Results = append(r.Results, res)
			}
		default:
			data, err = msgp.Skip(data)
		}
		if err != nil {
			return nil, fmt.Errorf("report field %q: %w", key, err)
		}
	}
	return &r, nil
}

func readResultBytes(data []byte) (Result, []byte, error) {
	var res Result

	sz, data, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return res, data, err
	}
	for i := uint32(0); i < sz; i++ {
		var key string
		key, data, err = msgp.ReadStringBytes(data)
		if err != nil {
			return res, data, err
		}
		switch key {
		case "address":
			res.Address, data, err = msgp.ReadStringBytes(data)
		case "outcome":
			var s string
			s, data, err = msgp.ReadStringBytes(data)
			res.Outcome = Outcome(s)
		default:
			data, err = msgp.Skip(data)
		}
		if err != nil {
			return res, data, err
		}
	}
	return res, data, nil
}
