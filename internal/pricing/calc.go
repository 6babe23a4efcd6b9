// Package pricing holds the commission estimate formula: a base price per
// size tier multiplied by detail, background, medium and rush factors.
// Calculate is pure; enum validation belongs to the intake boundary.
package pricing

import (
	"fmt"
	"math"
)

type Input struct {
	Medium          Medium          `json:"medium"`
	SizeTier        SizeTier        `json:"sizeTier"`
	DetailLevel     DetailLevel     `json:"detailLevel"`
	BackgroundLevel BackgroundLevel `json:"backgroundLevel"`
	Rush            bool            `json:"rush"`
}

// Estimate is the snapshot stored on a request at submission time.
// When ReviewRequired is set all numeric fields are zero and must not be
// treated as real amounts.
type Estimate struct {
	ReviewRequired bool    `json:"reviewRequired"`
	Base           int64   `json:"base"`
	Total          int64   `json:"total"`
	Low            int64   `json:"low"`
	High           int64   `json:"high"`
	DepositPct     float64 `json:"depositPct"`
	DepositLow     int64   `json:"depositLow"`
	DepositHigh    int64   `json:"depositHigh"`
}

// Calculate maps wizard answers to a price estimate. XXL and review-only
// mediums short-circuit to the review-required result. Unknown enum values
// are a caller bug and panic rather than masquerade as a review outcome.
func Calculate(in Input) Estimate {
	if in.SizeTier == SizeXXL || reviewOnlyMediums[in.Medium] {
		return Estimate{ReviewRequired: true}
	}

	base, ok := sizeBase[in.SizeTier]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown size tier %q", in.SizeTier))
	}
	dm, ok := detailMult[in.DetailLevel]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown detail level %q", in.DetailLevel))
	}
	bm, ok := backgroundMult[in.BackgroundLevel]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown background level %q", in.BackgroundLevel))
	}
	mm, ok := mediumMult[in.Medium]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown medium %q", in.Medium))
	}

	total := base * dm * bm * mm
	if in.Rush {
		total *= rushMult
	}

	// Display range is a fixed ±20% band; each bound rounds independently.
	low := math.Round(total * 0.8)
	high := math.Round(total * 1.2)

	// Deposit percentage comes from the unrounded total, then applies to the
	// already-rounded bounds. Rounding each deposit bound independently means
	// depositLow/High are not exactly pct×low/high — accepted.
	pct := DepositPctFor(total)

	return Estimate{
		Base:        int64(base),
		Total:       int64(math.Round(total)),
		Low:         int64(low),
		High:        int64(high),
		DepositPct:  pct,
		DepositLow:  int64(math.Round(low * pct)),
		DepositHigh: int64(math.Round(high * pct)),
	}
}
