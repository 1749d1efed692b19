package scaffold

import "bytes"

// IsScraperPlaceholder reports whether data is still the shipped placeholder
// rather than the delivered scraper.
func IsScraperPlaceholder(data []byte) bool {
	return bytes.Equal(data, scraperPlaceholder)
}

// scraperPlaceholder stands in for the scraper program, which is delivered
// separately and copied over this file by the operator.
var scraperPlaceholder = []byte(`#!/usr/bin/env python3
"""AI Hardware Sales Lead Generator.

Placeholder only. Copy the complete lead_scraper.py delivered with the
pipeline over this file, then start it with ./run.sh.
"""

import sys

print("lead_scraper.py is a placeholder - copy the real script here first.")
sys.exit(1)
`)

// runScript is the convenience wrapper invoked directly or from cron. It
// changes into the project directory, uses the project venv's interpreter,
// and invokes the scraper with no arguments, appending output to logs/run.log.
func runScript() []byte {
	return []byte(`#!/bin/bash
# Convenience wrapper for the lead scraper. Safe to call from cron:
#   0 9 * * * $HOME/ai-hardware-leads/run.sh
set -euo pipefail

cd "$(dirname "$0")"
exec .venv/bin/python3 lead_scraper.py >> logs/run.log 2>&1
`)
}
