package deck

// CardStats tracks review performance for a single card.
type CardStats struct {
	CardID        string
	TimesReviewed int
	TimesCorrect  int // Score == 100, every blank right
	TotalScore    int
	LatestScore   int
	Mastery       int // 0-100
}

// CalculateMastery weights the latest review against the earlier average:
// mastery = latest*0.6 + historical_avg*0.4
func (cs *CardStats) CalculateMastery() int {
	if cs.TimesReviewed == 0 {
		return 0
	}
	if cs.TimesReviewed == 1 {
		return cs.LatestScore
	}

	historicalAvg := float64(cs.TotalScore-cs.LatestScore) / float64(cs.TimesReviewed-1)

	mastery := int(float64(cs.LatestScore)*0.6 + historicalAvg*0.4)
	return min(max(mastery, 0), 100)
}

// DeckStats aggregates card mastery for a deck.
type DeckStats struct {
	DeckID     string
	TotalCards int
	Reviewed   int
	Mastery    int // average across reviewed and unreviewed cards
}

// Summarize folds per-card stats into deck totals.
func Summarize(deckID string, stats []CardStats) DeckStats {
	ds := DeckStats{DeckID: deckID, TotalCards: len(stats)}
	if len(stats) == 0 {
		return ds
	}

	total := 0
	for _, cs := range stats {
		if cs.TimesReviewed > 0 {
			ds.Reviewed++
		}
		total += cs.Mastery
	}
	ds.Mastery = total / len(stats)
	return ds
}
