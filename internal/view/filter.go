package view

import (
	"regexp"
	"strconv"
)

// FilterAll shows every card regardless of price.
const FilterAll = "all"

// priceFilterOptions is the fixed, ordered set of selectable price ceilings.
var priceFilterOptions = []string{"10", "50", "100", FilterAll}

// FilterOptions returns the selectable price ceilings, in display order.
func FilterOptions() []string {
	return append([]string(nil), priceFilterOptions...)
}

// firstNumber matches the first numeric token in a card's price text.
var firstNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ApplyPriceFilter toggles card visibility against the selected ceiling.
// It operates on the rendered price text, not the underlying data: a card
// stays visible when the ceiling is "all" or its extracted price is at
// most the ceiling. Cards whose price text has no numeric token are left
// untouched (fail-open). A value outside the option set is a contract
// violation and returns a RenderError.
func ApplyPriceFilter(cards []Card, maxPrice string) error {
	if !validFilterValue(maxPrice) {
		return &RenderError{Reason: "unknown price filter value " + strconv.Quote(maxPrice)}
	}

	if maxPrice == FilterAll {
		for i := range cards {
			cards[i].Hidden = false
		}
		return nil
	}

	// validFilterValue guarantees this parses.
	ceiling, err := strconv.ParseFloat(maxPrice, 64)
	if err != nil {
		return &RenderError{Reason: "unparseable price filter value " + strconv.Quote(maxPrice)}
	}

	for i := range cards {
		match := firstNumber.FindString(cards[i].PriceText)
		if match == "" {
			continue
		}
		price, err := strconv.ParseFloat(match, 64)
		if err != nil {
			continue
		}
		cards[i].Hidden = price > ceiling
	}

	return nil
}

func validFilterValue(v string) bool {
	for _, opt := range priceFilterOptions {
		if v == opt {
			return true
		}
	}
	return false
}
