package ipo

// ColumnStats describes the processing of one column.
type ColumnStats struct {
	Column       int // parameter index
	Requirements int // |T_i| before horizontal growth
	Horizontal   int // combinations covered by horizontal growth
	Leftover     int // combinations handed to the merge pool
	Evicted      int // rows moved to the pool by the eviction knob
	Merged       int // leftovers merged into an existing partial row
	Created      int // leftovers that started a new partial row
	Promoted     int // pool rows that joined the main rows
	Pool         int // pool size after promotion
}

// Stats summarizes a whole construction.
type Stats struct {
	Rows         int // final row count
	Seeded       int // rows produced by the seed
	Columns      int // columns processed after the seed
	Requirements int // Σ|T_i|
	Horizontal   int
	Leftover     int
	Evicted      int
	Merged       int
	Created      int
	Promoted     int
	Flushed      int // pool rows appended at the end
}

// add folds a column into the totals.
func (s *Stats) add(c ColumnStats) {
	s.Columns++
	s.Requirements += c.Requirements
	s.Horizontal += c.Horizontal
	s.Leftover += c.Leftover
	s.Evicted += c.Evicted
	s.Merged += c.Merged
	s.Created += c.Created
	s.Promoted += c.Promoted
}
