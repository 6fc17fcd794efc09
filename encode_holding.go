package marketrisk

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Holdings are exchanged as JSONL, one holding per line:
//
//	{"id":1,"symbol":"TCS","quantity":10,"buy_price":3500}

// DecodeHoldings reads holdings from a JSONL stream.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	var holdings []Holding
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var h Holding
		if err := json.Unmarshal(line, &h); err != nil {
			return nil, fmt.Errorf("parse error line %d: %w", i, err)
		}
		if err := h.validate(); err != nil {
			return nil, fmt.Errorf("parse error line %d: %w", i, err)
		}
		holdings = append(holdings, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read holdings: %w", err)
	}
	return holdings, nil
}

// EncodeHolding writes a single holding as a JSONL line.
func EncodeHolding(w io.Writer, h Holding) error {
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
