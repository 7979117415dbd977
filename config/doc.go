// Package config holds the runner configuration.
//
// Every analysis takes its tunables as functional options; config is the
// one place the CLI reads them from. A YAML file only needs the keys it
// changes:
//
//	barrier: 9        # basin barrier height
//	top_basins: 3
//	threshold: 9      # cascade trigger level
//	steps: 100
//	sync_limit: 10000
//	min_overlap: 2
//	render:
//	  on: "#"
//	  off: "."
//	log_level: info
package config
