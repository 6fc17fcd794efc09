package marketrisk

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/marketrisk/date"
	"github.com/rs/zerolog/log"
)

const attrOn = "on"

// maxLineSize is the longest JSONL line accepted by the decoders.
const maxLineSize = 16 << 20

// Price tables come in two formats:
//
//	CSV:   a header line with at least the columns "date", "symbol" and "close",
//	       then one line per (date, symbol).
//	JSONL: one JSON object per day, the date in the "on" property and one
//	       property per symbol with its close: {"on":"2025-01-02","NIFTY":22010.5}
//
// Lines can come in any order: prices are collected per symbol into a sorted
// history, then frozen into PriceSeries. A second close for the same (date,
// symbol) overwrites the first one.

// marketBuilder collects closes per symbol before building the Market.
type marketBuilder struct {
	histories map[string]*date.History[float64]
}

func newMarketBuilder() *marketBuilder {
	return &marketBuilder{histories: make(map[string]*date.History[float64])}
}

// add records a close. where is only used for error messages.
func (b *marketBuilder) add(where string, on date.Date, symbol string, price float64) error {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return fmt.Errorf("parse error %s: empty symbol: %w", where, ErrInvalidInput)
	}
	if !finite(price) || price < 0 {
		return fmt.Errorf("parse error %s: close %v for %s must be a finite non-negative number: %w", where, price, symbol, ErrInvalidInput)
	}
	h, ok := b.histories[symbol]
	if !ok {
		h = new(date.History[float64])
		b.histories[symbol] = h
	}
	if h.Append(on, price) {
		log.Warn().Str("at", where).Str("symbol", symbol).Stringer("on", on).Msg("duplicate close, keeping the last one")
	}
	return nil
}

func (b *marketBuilder) market() (*Market, error) {
	series := make([]PriceSeries, 0, len(b.histories))
	for symbol, h := range b.histories {
		points := make([]PricePoint, 0, h.Len())
		for on, price := range h.Values() {
			points = append(points, PricePoint{Date: on, Symbol: symbol, Close: price})
		}
		s, err := NewPriceSeries(symbol, points...)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return NewMarket(series...)
}

// DecodeMarketCSV decodes a CSV price table.
func DecodeMarketCSV(r io.Reader) (*Market, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}
	col := make(map[string]int)
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range []string{"date", "symbol", "close"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("csv header %q has no %q column: %w", header, name, ErrInvalidInput)
		}
	}

	b := newMarketBuilder()
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv format error: %w", err)
		}
		line, _ := cr.FieldPos(0)
		where := "line " + strconv.Itoa(line)

		on, err := date.Parse(record[col["date"]])
		if err != nil {
			return nil, fmt.Errorf("parse error %s: %w", where, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[col["close"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse error %s: invalid close: %w", where, err)
		}
		if err := b.add(where, on, record[col["symbol"]], price); err != nil {
			return nil, err
		}
	}
	return b.market()
}

// DecodeMarketJSONL decodes a JSONL price table.
func DecodeMarketJSONL(r io.Reader) (*Market, error) {
	b := newMarketBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	i := 0
	for scanner.Scan() {
		i++
		txt := scanner.Bytes()
		// Start simply ignoring empty lines.
		if len(strings.TrimSpace(string(txt))) == 0 {
			continue
		}
		where := "line " + strconv.Itoa(i)

		jobj := make(map[string]any)
		if err := json.Unmarshal(txt, &jobj); err != nil {
			return nil, fmt.Errorf("parse error %s: not a correct json: %w", where, err)
		}

		// Read the timestamp
		jvalue, ok := jobj[attrOn]
		if !ok {
			return nil, fmt.Errorf("parse error %s: missing the property %q with a date", where, attrOn)
		}
		jstring, ok := jvalue.(string)
		if !ok {
			return nil, fmt.Errorf("parse error %s: property %q must be of type 'string'", where, attrOn)
		}
		on, err := date.Parse(jstring)
		if err != nil {
			return nil, fmt.Errorf("parse error %s: property %q must be a valid date: %w", where, attrOn, err)
		}

		// Read all other attributes as (symbol, close) pairs.
		for symbol, price := range jobj {
			if symbol == attrOn {
				continue
			}
			p, ok := price.(float64)
			if !ok {
				return nil, fmt.Errorf("parse error %s: property %q must be of type 'number'", where, symbol)
			}
			if err := b.add(where, on, symbol, p); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read jsonl: %w", err)
	}
	return b.market()
}

// DecodeMarketFile decodes a price table file, by extension: .csv or .jsonl.
func DecodeMarketFile(filename string) (*Market, error) {
	var decode func(io.Reader) (*Market, error)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		decode = DecodeMarketCSV
	case ".jsonl":
		decode = DecodeMarketJSONL
	default:
		return nil, fmt.Errorf("unsupported price file extension %q, want .csv or .jsonl", ext)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()
	m, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// EncodeMarketJSONL writes m in the canonical JSONL form: one line per day in
// chronological order, symbols in alphabetical order.
func EncodeMarketJSONL(w io.Writer, m *Market) error {
	var days []date.Date
	for _, symbol := range m.symbols {
		for _, p := range m.index[symbol].points {
			days = append(days, p.Date)
		}
	}
	slices.SortFunc(days, date.Date.Compare)
	days = slices.Compact(days)

	// cursor of the next point to write per symbol.
	next := make([]int, len(m.symbols))
	for _, on := range days {
		var line jsonObjectWriter
		line.Append(attrOn, on)
		for i, symbol := range m.symbols {
			points := m.index[symbol].points
			if next[i] < len(points) && points[next[i]].Date == on {
				line.Float(symbol, points[next[i]].Close)
				next[i]++
			}
		}
		b, err := line.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}
