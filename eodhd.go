package investments

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/eladshoshani/Investments/date"
)

// This file fetches historical closing prices from the EODHD API.

const eodhdBase = "https://eodhd.com/api/eod"

// FetchPrices downloads the end-of-day closing prices for an EODHD ticker
// (e.g. "GSPC.INDX" for the S&P 500) between from and to, inclusive.
//
// Responses are cached on disk with a daily expiry; historical data is never
// retried within the same day.
func FetchPrices(ticker, apiToken string, from, to date.Date) (*PriceSeries, error) {
	return fetchPrices(newDailyCachingClient(), ticker, apiToken, from, to)
}

func fetchPrices(client *http.Client, ticker, apiToken string, from, to date.Date) (*PriceSeries, error) {
	// https://eodhd.com/api/eod/GSPC.INDX?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		...
	//		"close": 668.445,
	//	},
	addr := fmt.Sprintf("%s/%s?fmt=json&api_token=%s&from=%s&to=%s", eodhdBase, ticker, apiToken, from, to)

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	return parsePrices(ticker, jobj)
}

// parsePrices extracts the (date, close) pairs from the provider's JSON
// payload.
func parsePrices(ticker string, jobj any) (*PriceSeries, error) {
	jdates, err := jsonpath.Get("$[*].date", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q dates: %w", ticker, err)
	}
	jcloses, err := jsonpath.Get("$[*].close", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q closes: %w", ticker, err)
	}

	dates, ok := jdates.([]interface{})
	if !ok {
		return nil, fmt.Errorf("error parsing %q: dates are not a list", ticker)
	}
	closes, ok := jcloses.([]interface{})
	if !ok {
		return nil, fmt.Errorf("error parsing %q: closes are not a list", ticker)
	}
	if len(dates) != len(closes) {
		return nil, fmt.Errorf("error parsing %q: %d dates for %d closes", ticker, len(dates), len(closes))
	}

	series := &PriceSeries{}
	for i := range dates {
		str, ok := dates[i].(string)
		if !ok {
			return nil, fmt.Errorf("error parsing %q: date %v is not a string", ticker, dates[i])
		}
		day, err := date.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", ticker, err)
		}
		val, ok := closes[i].(float64)
		if !ok {
			return nil, fmt.Errorf("error parsing %q: close %v on %s is not a number", ticker, closes[i], day)
		}
		series.Append(day, val)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("no prices returned for %q", ticker)
	}
	return series, nil
}
