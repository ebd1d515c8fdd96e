package model

import "fmt"

// Series holds one simulated revenue value per day of the fiscal year,
// indexed by day-of-year.
type Series []float64

// Interval is a half-open range of calendar days [Start, End).
type Interval struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Len is negative when End precedes Start.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Contains reports whether day falls inside the interval.
func (iv Interval) Contains(day int) bool { return day >= iv.Start && day < iv.End }

func (iv Interval) String() string {
	return fmt.Sprintf("%s[%d,%d)", iv.Name, iv.Start, iv.End)
}

// Layout is the calendar decomposition of a fiscal year into five
// consecutive intervals.
type Layout struct {
	OffA   Interval `json:"off_a"`
	Spring Interval `json:"spring"`
	OffB   Interval `json:"off_b"`
	Fall   Interval `json:"fall"`
	OffC   Interval `json:"off_c"`
}

// NewLayout places both seasons at their fixed anchors. Gaps are derived and
// may come out negative if the season lengths do not fit the anchors.
func NewLayout(p Params) Layout {
	spring := p.Spring().Interval()
	fall := p.Fall().Interval()
	return Layout{
		OffA:   Interval{Name: "off_a", Start: 0, End: spring.Start},
		Spring: spring,
		OffB:   Interval{Name: "off_b", Start: spring.End, End: fall.Start},
		Fall:   fall,
		OffC:   Interval{Name: "off_c", Start: fall.End, End: DaysInYear},
	}
}

// Intervals returns the five intervals in calendar order.
func (l Layout) Intervals() []Interval {
	return []Interval{l.OffA, l.Spring, l.OffB, l.Fall, l.OffC}
}

// Seasons returns the two in-season intervals.
func (l Layout) Seasons() []Interval {
	return []Interval{l.Spring, l.Fall}
}

// Validate checks that the intervals tile [0, DaysInYear) without gap or
// overlap.
func (l Layout) Validate() error {
	next := 0
	for _, iv := range l.Intervals() {
		if iv.Len() < 0 {
			return invalid(iv.Name, "overlaps its neighbour: %s", iv)
		}
		if iv.Start != next {
			return invalid(iv.Name, "starts at day %d, want %d", iv.Start, next)
		}
		next = iv.End
	}
	if next != DaysInYear {
		return invalid("layout", "ends at day %d, want %d", next, DaysInYear)
	}
	return nil
}
