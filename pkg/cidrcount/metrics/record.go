package metrics

// contains all run metric data updates

// RecordRows records the number of CSV rows accepted and skipped.
func RecordRows(accepted, skipped int) {
	metricRows.WithLabelValues(RowsAccepted).Add(float64(accepted))
	metricRows.WithLabelValues(RowsSkipped).Add(float64(skipped))
}

// RecordAreaCount records the number of areas.
func RecordAreaCount(count int) {
	metricAreas.Set(float64(count))
}

// RecordArea records the address, run and block counts of one area.
func RecordArea(area string, addresses, runs, blocks int) {
	metricAreaAddresses.WithLabelValues(area).Set(float64(addresses))
	metricAreaRuns.WithLabelValues(area).Set(float64(runs))
	metricAreaBlocks.WithLabelValues(area).Set(float64(blocks))
}
