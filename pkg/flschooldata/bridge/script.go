// Package bridge runs R expressions against the flschooldata package and
// decodes their output.
package bridge

import (
	"fmt"
	"strconv"
	"strings"
)

// emitFrame serializes a data.frame as a column-ordered envelope on stdout:
// {"columns": [...], "data": [[col 1 values], [col 2 values], ...]}.
// jsonlite's default data.frame encoding does not preserve column order on
// the Go side, so the envelope carries the order explicitly.
const emitFrame = `emit <- function(df) {
  out <- list(columns = names(df), data = unname(as.list(df)))
  cat(jsonlite::toJSON(out, na = "null", auto_unbox = FALSE, digits = NA))
}`

// readFrame reconstructs a data.frame from an envelope read on stdin.
// simplifyVector must stay FALSE: with simplification on, jsonlite turns a
// homogeneous data array into a matrix and the lapply below would iterate
// over cells instead of columns. The NULL->NA unlist expects list columns.
const readFrame = `readin <- function() {
  env <- jsonlite::fromJSON(file("stdin"), simplifyVector = FALSE)
  cols <- lapply(env$data, function(col) unlist(lapply(col, function(v) if (is.null(v)) NA else v)))
  as.data.frame(stats::setNames(cols, env$columns), stringsAsFactors = FALSE, check.names = FALSE)
}`

func attach(quiet bool) string {
	if quiet {
		return "suppressPackageStartupMessages(library(flschooldata))"
	}
	return "library(flschooldata)"
}

func intLiteral(n int) string {
	return strconv.Itoa(n) + "L"
}

func intVector(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = intLiteral(n)
	}
	return "c(" + strings.Join(parts, ", ") + ")"
}

// FetchScript builds the R expression for a single-year fetch_enr call.
func FetchScript(year int, quiet bool) string {
	return strings.Join([]string{
		attach(quiet),
		emitFrame,
		fmt.Sprintf("emit(fetch_enr(%s))", intLiteral(year)),
	}, "\n")
}

// FetchMultiScript builds the R expression for a fetch_enr_multi call.
func FetchMultiScript(years []int, quiet bool) string {
	return strings.Join([]string{
		attach(quiet),
		emitFrame,
		fmt.Sprintf("emit(fetch_enr_multi(%s))", intVector(years)),
	}, "\n")
}

// TidyScript builds the R expression for a tidy_enr call. The input frame
// arrives as an envelope on stdin.
func TidyScript(quiet bool) string {
	return strings.Join([]string{
		attach(quiet),
		emitFrame,
		readFrame,
		"emit(tidy_enr(readin()))",
	}, "\n")
}

// YearsScript builds the R expression for a get_available_years call.
func YearsScript(quiet bool) string {
	return strings.Join([]string{
		attach(quiet),
		"cat(jsonlite::toJSON(get_available_years(), auto_unbox = FALSE))",
	}, "\n")
}
