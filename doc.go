// Package roitrack provides the types and functions to track realized
// trades (closed buy/sell round-trips) and their return on investment.
//
// The core functionalities include:
//   - Trade Records: an immutable record of one closed round-trip, with
//     derived analytics (invested capital, proceeds, profit, percentage
//     return, holding period, annualized return).
//   - Statement Ingestion: a parser that converts loosely-structured
//     brokerage CSV exports into validated trade records, tolerating
//     inconsistent headers, multi-section reports, summary rows and
//     carried-forward ticker context.
//   - Portfolio Book: the in-memory ordered list of trades with filtering
//     and aggregate summaries.
//   - Data Persistence: encoding and decoding of the trade book to and
//     from a human-readable JSONL file.
//
// This package serves as the foundational logic for the `roi` command-line
// tool.
package roitrack
