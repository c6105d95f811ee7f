package usecase

import (
	"math"
	"time"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// periodWindows resolves a named period into its half-open [From, To) window
// and the immediately preceding window of equal calendar length
func periodWindows(period constants.StatsPeriod, now time.Time) (cur, prev models.PeriodWindow, err error) {
	y, m, _ := now.Date()
	loc := now.Location()

	switch period {
	case constants.PeriodThisMonth:
		cur.From = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		cur.To = cur.From.AddDate(0, 1, 0)
	case constants.PeriodLastMonth:
		cur.To = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		cur.From = cur.To.AddDate(0, -1, 0)
	case constants.PeriodThisYear:
		cur.From = time.Date(y, 1, 1, 0, 0, 0, 0, loc)
		cur.To = cur.From.AddDate(1, 0, 0)
	case constants.PeriodLastYear:
		cur.To = time.Date(y, 1, 1, 0, 0, 0, 0, loc)
		cur.From = cur.To.AddDate(-1, 0, 0)
	default:
		err = apperrors.NewValidationError(map[string]string{
			"period": "unknown period",
		})
		return
	}

	switch period {
	case constants.PeriodThisMonth, constants.PeriodLastMonth:
		prev.To = cur.From
		prev.From = cur.From.AddDate(0, -1, 0)
	default:
		prev.To = cur.From
		prev.From = cur.From.AddDate(-1, 0, 0)
	}

	return
}

// round1 rounds half away from zero to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// changeRate computes the percentage change of cur against prev, rounded to
// one decimal. Both empty means no change (0); growth from an empty previous
// period has no meaningful percentage, so the rate is nil.
func changeRate(prev, cur int64) *float64 {
	if prev == 0 {
		if cur == 0 {
			zero := 0.0
			return &zero
		}
		return nil
	}

	rate := round1(float64(cur-prev) / float64(prev) * 100)
	return &rate
}
