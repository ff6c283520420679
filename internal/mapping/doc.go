// Package mapping provides the YAML field-mapping table that tells the
// projector which spreadsheet column feeds which Question field.
//
// The table is data, not code: the built-in default reproduces the
// original column layout, and a mapping file can describe a differently
// shaped sheet without touching the projector.
//
// # Schema Overview
//
// The mapping file has the following structure:
//
//	version: "1"
//	# Simplified column -> target mappings (highest priority)
//	121:
//	  編號: id
//	  類別: category
//	  選項A: options.A
//	# Full field mappings with all options
//	fields:
//	  - target: explanation
//	    source: [解析, 說明]   # first present column wins
//	    default: ""           # used when no source column has a value
//	# Columns that are known and deliberately unused
//	ignore:
//	  - 備註
//
// # Targets
//
// Targets are canonical Question paths: id, category, difficulty,
// question, answer, explanation and options.<LETTER>. Every scalar target
// must be mapped exactly once and at least two options are required.
//
// # Priority Order
//
// A target mapped both in "121" and "fields" is a duplicate and rejected;
// "121" entries are listed first after normalization so diagnostics report
// them before explicit fields.
package mapping
