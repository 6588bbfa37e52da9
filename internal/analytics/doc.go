// Package analytics derives the business figures shown for warehouse layout optimization scenarios.
//
// Live measurements are normalized into BaseMetrics, expanded into layout and seasonal tables, and reduced
// into ROI and rollout figures. Every function in the package is pure; the Engine wires the stages together
// and returns a Report.
package analytics
