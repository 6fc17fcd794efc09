// Package marketrisk computes risk and performance analytics over a daily
// price series, and values a set of holdings against a market price.
//
// The core functionalities include:
//   - Price Series: an immutable, strictly chronological sequence of closes
//     for a single symbol, and the simple returns derived from it.
//   - Risk Statistics: annualized volatility, maximum drawdown and historical
//     value-at-risk, each a pure reduction over a price or return series.
//   - Equity Curve: the growth of a starting notional compounded by the
//     daily returns.
//   - Portfolio Valuation: invested capital, current value and profit and
//     loss of a set of holdings, computed with exact decimal arithmetic.
//   - Market Snapshot: the latest close compared to the previous one.
//   - Data Exchange: decoding price tables (CSV or JSONL) into a Market, and
//     holdings to and from JSONL.
//
// Every computation is stateless: it reads the inputs it is given and never
// mutates them, so concurrent callers can share the same series freely.
//
// This package serves as the foundational logic for the `mrk` command-line
// tool.
package marketrisk
